package http

import (
	"context"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/listas-precios/internal/application/dto"
	"github.com/jhoicas/listas-precios/internal/application/pricelist"
	"github.com/jhoicas/listas-precios/internal/domain"
)

// manualUploadPrefix ruta de los archivos subidos por HTTP. Fuera del prefijo del trigger
// para que no se ingieran dos veces.
const manualUploadPrefix = "manual/listas-precios/"

type listIngester interface {
	Ingest(ctx context.Context, in pricelist.IngestInput) (*dto.IngestResponse, error)
}

type listPublisher interface {
	Publish(ctx context.Context, callerID, listID string) (*dto.PublishResponse, error)
}

type listQuerier interface {
	GetList(ctx context.Context, id string) (*dto.PriceListResponse, error)
	ListLists(ctx context.Context, supplierID string, limit, offset int) (*dto.PriceListListResponse, error)
	ListItems(ctx context.Context, listID string) (*dto.PriceListItemsResponse, error)
	ListPDF(ctx context.Context, listID string) ([]byte, error)
}

type fileArchiver interface {
	Upload(ctx context.Context, bucket, path string, data []byte) error
}

// PriceListHandler maneja subida, consulta y publicación de listas de precios (protegido).
type PriceListHandler struct {
	ingest   listIngester
	publish  listPublisher
	query    listQuerier
	archive  fileArchiver
	bucket   string
	scheme   string
	defaults pricelist.ListDefaults
}

// NewPriceListHandler construye el handler. archive puede ser nil (no se guarda el archivo).
func NewPriceListHandler(ingest listIngester, publish listPublisher, query listQuerier, archive fileArchiver, bucket, scheme string, defaults pricelist.ListDefaults) *PriceListHandler {
	return &PriceListHandler{
		ingest: ingest, publish: publish, query: query, archive: archive,
		bucket: bucket, scheme: scheme, defaults: defaults,
	}
}

// Upload godoc
// @Summary      Subir lista de precios (xlsx o csv)
// @Tags         price-lists
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file           formData  file    true   "Archivo de la lista"
// @Param        supplier_id    formData  string  false  "Proveedor (si no, se deriva del nombre)"
// @Param        cutoff_date    formData  string  false  "Fecha de corte YYYY-MM-DD"
// @Param        tax_inclusive  formData  bool    false  "Los precios incluyen IVA"
// @Param        tax_rate       formData  number  false  "IVA en porcentaje, ej. 13"
// @Param        currency       formData  string  false  "Moneda, ej. BOB"
// @Success      201  {object}  dto.IngestResponse
// @Success      200  {object}  dto.IngestResponse  "hoja vacía, no se creó la lista"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/price-lists [post]
func (h *PriceListHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ARGUMENT", Message: "file es requerido"})
	}
	in, err := h.ingestInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ARGUMENT", Message: err.Error()})
	}

	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, err)
	}

	name := path.Base(strings.ReplaceAll(fh.Filename, "\\", "/"))
	in.Data = data
	in.SourceName = name
	if h.archive != nil {
		objectPath := manualUploadPrefix + uuid.New().String() + "/" + name
		if err := h.archive.Upload(c.Context(), h.bucket, objectPath, data); err != nil {
			return writeError(c, err)
		}
		in.SourceRef = fmt.Sprintf("%s://%s/%s", h.scheme, h.bucket, objectPath)
	}

	out, err := h.ingest.Ingest(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	if out.ListID == "" {
		return c.JSON(out)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ingestInput lee los campos del formulario; lo que falta sale de la configuración.
func (h *PriceListHandler) ingestInput(c *fiber.Ctx) (pricelist.IngestInput, error) {
	in := pricelist.IngestInput{
		SupplierID: strings.TrimSpace(c.FormValue("supplier_id")),
		Defaults:   h.defaults,
	}
	if v := strings.TrimSpace(c.FormValue("cutoff_date")); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return in, fmt.Errorf("cutoff_date debe ser YYYY-MM-DD")
		}
		in.CutoffDate = &d
	}
	if v := strings.TrimSpace(c.FormValue("tax_inclusive")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return in, fmt.Errorf("tax_inclusive debe ser true o false")
		}
		in.Defaults.TaxInclusive = b
	}
	if v := strings.TrimSpace(c.FormValue("tax_rate")); v != "" {
		pct, err := decimal.NewFromString(strings.Replace(v, ",", ".", 1))
		if err != nil || pct.IsNegative() {
			return in, fmt.Errorf("tax_rate debe ser un porcentaje no negativo")
		}
		in.Defaults.TaxRate = pct.Div(decimal.NewFromInt(100))
	}
	if v := strings.TrimSpace(c.FormValue("currency")); v != "" {
		in.Defaults.Currency = v
	}
	return in, nil
}

// Publish godoc
// @Summary      Publicar lista como ofertas de proveedor
// @Tags         price-lists
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la lista"
// @Success      200  {object}  dto.PublishResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/price-lists/{id}/publish [post]
func (h *PriceListHandler) Publish(c *fiber.Ctx) error {
	out, err := h.publish.Publish(c.Context(), GetUserID(c), strings.TrimSpace(c.Params("id")))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener lista de precios
// @Tags         price-lists
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la lista"
// @Success      200  {object}  dto.PriceListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/price-lists/{id} [get]
func (h *PriceListHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.GetList(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeError(c, domain.ErrNotFound)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar listas de precios (más reciente primero)
// @Tags         price-lists
// @Security     Bearer
// @Produce      json
// @Param        supplier_id  query  string  false  "Proveedor"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.PriceListListResponse
// @Router       /api/price-lists [get]
func (h *PriceListHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.query.ListLists(c.Context(), c.Query("supplier_id"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Items godoc
// @Summary      Ítems de una lista
// @Tags         price-lists
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la lista"
// @Success      200  {object}  dto.PriceListItemsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/price-lists/{id}/items [get]
func (h *PriceListHandler) Items(c *fiber.Ctx) error {
	out, err := h.query.ListItems(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Reporte PDF de una lista
// @Tags         price-lists
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la lista"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/price-lists/{id}/pdf [get]
func (h *PriceListHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.query.ListPDF(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="lista-%s.pdf"`, id))
	return c.Send(out)
}
