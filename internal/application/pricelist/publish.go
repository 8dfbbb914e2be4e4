package pricelist

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/listas-precios/internal/application/dto"
	"github.com/jhoicas/listas-precios/internal/domain"
	"github.com/jhoicas/listas-precios/internal/domain/entity"
	"github.com/jhoicas/listas-precios/internal/domain/pricing"
	"github.com/jhoicas/listas-precios/internal/domain/repository"
)

// PublishUseCase publica los ítems de una lista como ofertas de proveedor (merge por
// proveedor+SKU) y marca la lista como published. Se puede republicar.
type PublishUseCase struct {
	lists     repository.PriceListRepository
	offers    repository.SupplierOfferRepository
	batchSize int
	log       zerolog.Logger
	now       func() time.Time
}

// NewPublishUseCase construye el caso de uso.
func NewPublishUseCase(
	lists repository.PriceListRepository,
	offers repository.SupplierOfferRepository,
	batchSize int,
	log zerolog.Logger,
) *PublishUseCase {
	return &PublishUseCase{
		lists:     lists,
		offers:    offers,
		batchSize: ClampBatchSize(batchSize),
		log:       log,
		now:       time.Now,
	}
}

// Publish requiere identidad del llamador y el ID de la lista.
// Errores: domain.ErrUnauthenticated, domain.ErrInvalidInput, domain.ErrNotFound.
// Una lista en uploaded (ingesta incompleta) publica los ítems ya confirmados.
// Una lista sin ítems no escribe ofertas pero igual pasa a published.
func (uc *PublishUseCase) Publish(ctx context.Context, callerID, listID string) (*dto.PublishResponse, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if listID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("obtener lista %s: %w", listID, err)
	}
	if list == nil {
		return nil, domain.ErrNotFound
	}

	items, err := uc.lists.ListItems(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("obtener ítems de la lista %s: %w", listID, err)
	}

	now := uc.now()
	offers := make([]*entity.SupplierOffer, 0, len(items))
	for _, it := range items {
		offers = append(offers, BuildOffer(list, it, now))
	}

	err = writeInBatches(ctx, offers, uc.batchSize, uc.offers.UpsertBatch)
	if err != nil {
		uc.log.Error().Err(err).Str("list_id", listID).Msg("publicación incompleta")
		return nil, fmt.Errorf("publicar ofertas de la lista %s: %w", listID, err)
	}
	if err := uc.lists.UpdateStatus(ctx, listID, entity.PriceListPublished); err != nil {
		return nil, fmt.Errorf("marcar lista %s como publicada: %w", listID, err)
	}

	uc.log.Info().
		Str("list_id", listID).
		Str("supplier_id", list.SupplierID).
		Str("caller", callerID).
		Int("offers", len(offers)).
		Msg("lista de precios publicada")
	return &dto.PublishResponse{OK: true, Items: len(offers)}, nil
}

// BuildOffer arma la oferta publicada de un ítem. ProductID queda nil: el merge no lo toca.
func BuildOffer(list *entity.PriceList, it *entity.PriceListItem, now time.Time) *entity.SupplierOffer {
	split := pricing.SplitCost(it.Cost, it.TaxInclusive, it.TaxRate)
	var barcode *string
	if it.Barcode != "" {
		b := it.Barcode
		barcode = &b
	}
	unit := it.Unit
	if unit == "" {
		unit = pricing.DefaultUnit
	}
	return &entity.SupplierOffer{
		ID:            pricing.OfferID(list.SupplierID, it.SupplierSKU),
		SupplierID:    list.SupplierID,
		SupplierSKU:   it.SupplierSKU,
		Name:          it.SupplierName,
		Barcode:       barcode,
		Unit:          unit,
		NetCost:       split.Net.Round(pricing.StoragePlaces),
		GrossCost:     split.Gross.Round(pricing.StoragePlaces),
		TaxInclusive:  it.TaxInclusive,
		TaxRate:       it.TaxRate,
		EffectiveFrom: list.CutoffDate,
		Active:        true,
		SourceListID:  list.ID,
		UpdatedAt:     now,
	}
}
