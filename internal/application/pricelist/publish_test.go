package pricelist_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/listas-precios/internal/application/pricelist"
	"github.com/jhoicas/listas-precios/internal/domain"
	"github.com/jhoicas/listas-precios/internal/domain/entity"
	"github.com/jhoicas/listas-precios/internal/domain/pricing"
)

const caller = "user-1"

func ingestSheet(t *testing.T, store *memStore, name string, defaults pricelist.ListDefaults, sheet *pricing.Sheet) string {
	t.Helper()
	out, err := newIngest(store, &stubReader{sheet: sheet}).Ingest(context.Background(), pricelist.IngestInput{
		SourceName: name,
		Defaults:   defaults,
	})
	require.NoError(t, err)
	return out.ListID
}

func newPublish(store *memStore) *pricelist.PublishUseCase {
	return pricelist.NewPublishUseCase(store, memStoreOffers{store}, 500, zerolog.Nop())
}

func TestPublish_Precondiciones(t *testing.T) {
	store := newMemStore()
	uc := newPublish(store)

	_, err := uc.Publish(context.Background(), "", "x")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = uc.Publish(context.Background(), caller, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Publish(context.Background(), caller, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPublish_IngestaIncompletaPublicaLoConfirmado(t *testing.T) {
	store := newMemStore()
	store.failItemsOnCall = 2
	_, err := newIngest(store, &stubReader{sheet: bigSheet(1200)}).Ingest(context.Background(), pricelist.IngestInput{
		SourceName: "acme_20250101.csv",
		Defaults:   defaultsBOB,
	})
	require.ErrorIs(t, err, errStore)

	var listID string
	for id, l := range store.lists {
		listID = id
		require.Equal(t, entity.PriceListUploaded, l.Status)
	}
	require.Len(t, store.items[listID], 500)

	out, err := newPublish(store).Publish(context.Background(), caller, listID)
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, 500, out.Items)
	assert.Len(t, store.offers, 500)

	list, _ := store.GetByID(context.Background(), listID)
	assert.Equal(t, entity.PriceListPublished, list.Status)
}

func TestPublish_IVAIncluido(t *testing.T) {
	store := newMemStore()
	inclusive := pricelist.ListDefaults{Currency: "BOB", TaxInclusive: true, TaxRate: decimal.RequireFromString("0.13")}
	listID := ingestSheet(t, store, "acme_20250115.xlsx", inclusive, sheetOf(
		[]string{"SKU", "Nombre", "Precio", "EAN"},
		[]string{"X 1", "Caja", "11,3", "779123"},
		[]string{"X2", "Bolsa", "2", ""},
	))

	out, err := newPublish(store).Publish(context.Background(), caller, listID)
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, 2, out.Items)

	offer := store.offer("acme_x1")
	require.NotNil(t, offer)
	assert.Equal(t, "acme", offer.SupplierID)
	assert.Equal(t, "X 1", offer.SupplierSKU)
	assert.Nil(t, offer.ProductID)
	assert.Equal(t, "Caja", offer.Name)
	require.NotNil(t, offer.Barcode)
	assert.Equal(t, "779123", *offer.Barcode)
	assert.Equal(t, "u", offer.Unit)
	assert.True(t, offer.NetCost.Equal(decimal.RequireFromString("10")), "neto = %s", offer.NetCost)
	assert.True(t, offer.GrossCost.Equal(decimal.RequireFromString("11.3")))
	assert.True(t, offer.TaxInclusive)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), offer.EffectiveFrom)
	assert.True(t, offer.Active)
	assert.Equal(t, listID, offer.SourceListID)

	assert.Nil(t, store.offer("acme_x2").Barcode, "barcode vacío se publica como nulo")

	list, _ := store.GetByID(context.Background(), listID)
	assert.Equal(t, entity.PriceListPublished, list.Status)
}

func TestPublish_RepublicarEsIdempotente(t *testing.T) {
	store := newMemStore()
	listID := ingestSheet(t, store, "acme_20250115.xlsx", defaultsBOB, bigSheet(3))
	uc := newPublish(store)

	t1 := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	pricelist.SetPublishClock(uc, func() time.Time { return t1 })
	first, err := uc.Publish(context.Background(), caller, listID)
	require.NoError(t, err)
	before := *store.offer("acme_sku-0001")

	pricelist.SetPublishClock(uc, func() time.Time { return t1.Add(time.Hour) })
	second, err := uc.Publish(context.Background(), caller, listID)
	require.NoError(t, err)
	after := *store.offer("acme_sku-0001")

	assert.Equal(t, first.Items, second.Items)
	assert.Equal(t, 3, second.Items)
	assert.True(t, before.NetCost.Equal(after.NetCost))
	assert.True(t, before.GrossCost.Equal(after.GrossCost))
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.Unit, after.Unit)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestPublish_UltimaListaPublicadaGana(t *testing.T) {
	store := newMemStore()
	headers := []string{"SKU", "Nombre", "Precio"}
	older := ingestSheet(t, store, "acme_20250101.xlsx", defaultsBOB, sheetOf(headers, []string{"A", "Uno", "10"}, []string{"B", "Dos", "20"}))
	newer := ingestSheet(t, store, "acme_20250201.xlsx", defaultsBOB, sheetOf(headers, []string{"A", "Uno", "12"}))
	uc := newPublish(store)

	_, err := uc.Publish(context.Background(), caller, older)
	require.NoError(t, err)
	_, err = uc.Publish(context.Background(), caller, newer)
	require.NoError(t, err)

	a := store.offer("acme_a")
	assert.True(t, a.NetCost.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, newer, a.SourceListID)
	assert.Equal(t, older, store.offer("acme_b").SourceListID, "SKU no repetido conserva su oferta")
}

func TestPublish_MergeConservaProductoConciliado(t *testing.T) {
	store := newMemStore()
	listID := ingestSheet(t, store, "acme_20250101.xlsx", defaultsBOB, sheetOf([]string{"SKU", "Nombre", "Precio"}, []string{"A", "Uno", "10"}))
	uc := newPublish(store)
	_, err := uc.Publish(context.Background(), caller, listID)
	require.NoError(t, err)

	productID := "prod-77"
	store.offer("acme_a").ProductID = &productID

	_, err = uc.Publish(context.Background(), caller, listID)
	require.NoError(t, err)
	require.NotNil(t, store.offer("acme_a").ProductID)
	assert.Equal(t, productID, *store.offer("acme_a").ProductID)
}

func TestPublish_SinItemsPasaAPublicada(t *testing.T) {
	store := newMemStore()
	listID := ingestSheet(t, store, "acme_20250101.xlsx", defaultsBOB, sheetOf([]string{"SKU", "Nombre", "Precio"}, []string{"A", "", "0"}))

	out, err := newPublish(store).Publish(context.Background(), caller, listID)
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, 0, out.Items)
	assert.Empty(t, store.offerBatch)

	list, _ := store.GetByID(context.Background(), listID)
	assert.Equal(t, entity.PriceListPublished, list.Status)
}

func TestPublish_FalloDeLoteNoAvanzaEstado(t *testing.T) {
	store := newMemStore()
	listID := ingestSheet(t, store, "acme_20250101.xlsx", defaultsBOB, bigSheet(1200))
	store.failOffersOnCall = 2

	_, err := newPublish(store).Publish(context.Background(), caller, listID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errStore)
	assert.Equal(t, []int{500, 500}, store.offerBatch)
	assert.Len(t, store.offers, 500)

	list, _ := store.GetByID(context.Background(), listID)
	assert.Equal(t, entity.PriceListProcessed, list.Status)

	// reintento: la publicación es segura de repetir
	store.failOffersOnCall = 0
	out, err := newPublish(store).Publish(context.Background(), caller, listID)
	require.NoError(t, err)
	assert.Equal(t, 1200, out.Items)
	assert.Len(t, store.offers, 1200)
}
