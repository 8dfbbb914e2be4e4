package pricelist

import (
	"context"

	"github.com/jhoicas/listas-precios/internal/application/dto"
	"github.com/jhoicas/listas-precios/internal/domain"
	"github.com/jhoicas/listas-precios/internal/domain/entity"
	"github.com/jhoicas/listas-precios/internal/domain/repository"
)

// QueryUseCase consultas de listas, ítems y ofertas.
type QueryUseCase struct {
	lists     repository.PriceListRepository
	offers    repository.SupplierOfferRepository
	generator PriceListPDFGenerator
}

// NewQueryUseCase construye el caso de uso. generator puede ser nil si no se exponen PDFs.
func NewQueryUseCase(lists repository.PriceListRepository, offers repository.SupplierOfferRepository, generator PriceListPDFGenerator) *QueryUseCase {
	return &QueryUseCase{lists: lists, offers: offers, generator: generator}
}

// GetList devuelve nil, nil si no existe.
func (uc *QueryUseCase) GetList(ctx context.Context, id string) (*dto.PriceListResponse, error) {
	list, err := uc.lists.GetByID(ctx, id)
	if err != nil || list == nil {
		return nil, err
	}
	return toPriceListResponse(list), nil
}

// ListLists lista por fecha de corte descendente; supplierID vacío = todos.
func (uc *QueryUseCase) ListLists(ctx context.Context, supplierID string, limit, offset int) (*dto.PriceListListResponse, error) {
	lists, err := uc.lists.List(ctx, supplierID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PriceListResponse, 0, len(lists))
	for _, l := range lists {
		out = append(out, *toPriceListResponse(l))
	}
	return &dto.PriceListListResponse{Items: out, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// ListItems devuelve domain.ErrNotFound si la lista no existe.
func (uc *QueryUseCase) ListItems(ctx context.Context, listID string) (*dto.PriceListItemsResponse, error) {
	list, err := uc.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.lists.ListItems(ctx, listID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PriceListItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.PriceListItemResponse{
			ID:           it.ID,
			SupplierSKU:  it.SupplierSKU,
			SupplierName: it.SupplierName,
			Unit:         it.Unit,
			Barcode:      it.Barcode,
			Cost:         it.Cost,
			TaxInclusive: it.TaxInclusive,
			TaxRate:      it.TaxRate,
			PackUnits:    it.PackUnits,
			Notes:        it.Notes,
		})
	}
	return &dto.PriceListItemsResponse{ListID: listID, Items: out}, nil
}

// ListPDF genera el reporte PDF de la lista. domain.ErrNotFound si no existe.
func (uc *QueryUseCase) ListPDF(ctx context.Context, listID string) ([]byte, error) {
	if uc.generator == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.lists.ListItems(ctx, listID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GeneratePriceListPDF(ctx, list, items)
}

// GetOffer devuelve nil, nil si no existe.
func (uc *QueryUseCase) GetOffer(ctx context.Context, id string) (*dto.SupplierOfferResponse, error) {
	o, err := uc.offers.GetByID(ctx, id)
	if err != nil || o == nil {
		return nil, err
	}
	return toOfferResponse(o), nil
}

// ListOffers ofertas de un proveedor (o todas si supplierID es vacío).
func (uc *QueryUseCase) ListOffers(ctx context.Context, supplierID string, limit, offset int) (*dto.SupplierOfferListResponse, error) {
	offers, err := uc.offers.ListBySupplier(ctx, supplierID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierOfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, *toOfferResponse(o))
	}
	return &dto.SupplierOfferListResponse{Items: out, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func toPriceListResponse(l *entity.PriceList) *dto.PriceListResponse {
	return &dto.PriceListResponse{
		ID:           l.ID,
		SupplierID:   l.SupplierID,
		CutoffDate:   l.CutoffDate,
		CutoffMillis: l.CutoffMillis(),
		Currency:     l.Currency,
		TaxInclusive: l.TaxInclusive,
		TaxRate:      l.TaxRate,
		SourceFile:   l.SourceFile,
		Status:       string(l.Status),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func toOfferResponse(o *entity.SupplierOffer) *dto.SupplierOfferResponse {
	return &dto.SupplierOfferResponse{
		ID:            o.ID,
		SupplierID:    o.SupplierID,
		SupplierSKU:   o.SupplierSKU,
		ProductID:     o.ProductID,
		Name:          o.Name,
		Barcode:       o.Barcode,
		Unit:          o.Unit,
		NetCost:       o.NetCost,
		GrossCost:     o.GrossCost,
		TaxInclusive:  o.TaxInclusive,
		TaxRate:       o.TaxRate,
		EffectiveFrom: o.EffectiveFrom,
		Active:        o.Active,
		SourceListID:  o.SourceListID,
		UpdatedAt:     o.UpdatedAt,
	}
}
