package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/listas-precios/internal/application/dto"
	"github.com/jhoicas/listas-precios/internal/domain"
)

type offerQuerier interface {
	GetOffer(ctx context.Context, id string) (*dto.SupplierOfferResponse, error)
	ListOffers(ctx context.Context, supplierID string, limit, offset int) (*dto.SupplierOfferListResponse, error)
}

// SupplierOfferHandler consulta de ofertas publicadas (protegido).
type SupplierOfferHandler struct {
	query offerQuerier
}

// NewSupplierOfferHandler construye el handler.
func NewSupplierOfferHandler(query offerQuerier) *SupplierOfferHandler {
	return &SupplierOfferHandler{query: query}
}

// GetByID godoc
// @Summary      Obtener oferta de proveedor
// @Tags         supplier-offers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la oferta (<proveedor>_<sku>)"
// @Success      200  {object}  dto.SupplierOfferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supplier-offers/{id} [get]
func (h *SupplierOfferHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.GetOffer(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeError(c, domain.ErrNotFound)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ofertas de proveedor
// @Tags         supplier-offers
// @Security     Bearer
// @Produce      json
// @Param        supplier_id  query  string  false  "Proveedor"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.SupplierOfferListResponse
// @Router       /api/supplier-offers [get]
func (h *SupplierOfferHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.query.ListOffers(c.Context(), c.Query("supplier_id"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
