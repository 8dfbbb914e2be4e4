package repository

import (
	"context"

	"github.com/jhoicas/listas-precios/internal/domain/entity"
)

// MaxBatchWrites límite de operaciones por lote atómico del almacén de documentos.
const MaxBatchWrites = 500

// PriceListRepository puerto de persistencia para listas de precios y sus ítems (DIP).
type PriceListRepository interface {
	Create(ctx context.Context, list *entity.PriceList) error
	// GetByID devuelve nil, nil si la lista no existe.
	GetByID(ctx context.Context, id string) (*entity.PriceList, error)
	List(ctx context.Context, supplierID string, limit, offset int) ([]*entity.PriceList, error)
	// UpdateStatus solo avanza el estado; si la transición no es válida devuelve domain.ErrConflict.
	UpdateStatus(ctx context.Context, id string, status entity.PriceListStatus) error
	// CreateItems escribe un lote atómico (máximo MaxBatchWrites ítems) bajo la lista.
	CreateItems(ctx context.Context, listID string, items []*entity.PriceListItem) error
	ListItems(ctx context.Context, listID string) ([]*entity.PriceListItem, error)
}
