package repository

import (
	"context"

	"github.com/jhoicas/listas-precios/internal/domain/entity"
)

// SupplierOfferRepository puerto de persistencia para ofertas de proveedor.
type SupplierOfferRepository interface {
	// UpsertBatch hace merge de un lote atómico (máximo MaxBatchWrites ofertas).
	// Los campos que no forman parte de la oferta publicada (ej. ProductID) se conservan.
	UpsertBatch(ctx context.Context, offers []*entity.SupplierOffer) error
	// GetByID devuelve nil, nil si la oferta no existe.
	GetByID(ctx context.Context, id string) (*entity.SupplierOffer, error)
	ListBySupplier(ctx context.Context, supplierID string, limit, offset int) ([]*entity.SupplierOffer, error)
}
