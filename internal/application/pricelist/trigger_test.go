package pricelist_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/listas-precios/internal/application/pricelist"
	"github.com/jhoicas/listas-precios/internal/domain"
)

func TestUploadTrigger(t *testing.T) {
	const path = "uploads/listas-precios/acme_20250301.xlsx"

	newTrigger := func(store *memStore, reader *stubReader, storage *stubStorage) *pricelist.UploadTrigger {
		return pricelist.NewUploadTrigger(newIngest(store, reader), storage, "", "", defaultsBOB, zerolog.Nop())
	}

	t.Run("fuera del prefijo se ignora", func(t *testing.T) {
		store := newMemStore()
		reader := &stubReader{sheet: bigSheet(2)}
		out, err := newTrigger(store, reader, &stubStorage{}).
			HandleObjectFinalized(context.Background(), "bucket", "otros/acme_20250301.xlsx")
		require.NoError(t, err)
		assert.Nil(t, out)
		assert.Empty(t, reader.names)
		assert.Empty(t, store.lists)
	})

	t.Run("descarga e ingesta con referencia gs", func(t *testing.T) {
		store := newMemStore()
		reader := &stubReader{sheet: bigSheet(2)}
		storage := &stubStorage{objects: map[string][]byte{"bucket/" + path: []byte("xlsx")}}

		out, err := newTrigger(store, reader, storage).HandleObjectFinalized(context.Background(), "bucket", path)
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, 2, out.Accepted)
		assert.Equal(t, []string{path}, reader.names)

		list, _ := store.GetByID(context.Background(), out.ListID)
		assert.Equal(t, "gs://bucket/"+path, list.SourceFile)
		assert.Equal(t, "acme", list.SupplierID)
		assert.Equal(t, "BOB", list.Currency)
	})

	t.Run("objeto inexistente", func(t *testing.T) {
		store := newMemStore()
		_, err := newTrigger(store, &stubReader{}, &stubStorage{}).
			HandleObjectFinalized(context.Background(), "bucket", path)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
