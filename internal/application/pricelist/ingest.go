package pricelist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/listas-precios/internal/application/dto"
	"github.com/jhoicas/listas-precios/internal/domain"
	"github.com/jhoicas/listas-precios/internal/domain/entity"
	"github.com/jhoicas/listas-precios/internal/domain/pricing"
	"github.com/jhoicas/listas-precios/internal/domain/repository"
)

// ListDefaults valores de la lista que no vienen en el archivo. Son entrada obligatoria
// de la ingesta: cada superficie (trigger, HTTP, CLI) decide de dónde salen.
type ListDefaults struct {
	Currency     string
	TaxInclusive bool
	TaxRate      decimal.Decimal // fracción, ej. 0.13
}

func (d ListDefaults) validate() error {
	if strings.TrimSpace(d.Currency) == "" || d.TaxRate.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// IngestInput entrada de la ingesta de un archivo.
// SupplierID y CutoffDate, si vienen, reemplazan lo derivado del nombre de archivo.
type IngestInput struct {
	Data       []byte
	SourceName string // nombre o ruta del archivo; define proveedor/fecha y formato
	SourceRef  string // referencia persistida (ej. gs://bucket/ruta); si vacío se usa SourceName
	SupplierID string
	CutoffDate *time.Time
	Defaults   ListDefaults
}

// IngestUseCase convierte un archivo subido en una lista de precios y sus ítems.
type IngestUseCase struct {
	lists     repository.PriceListRepository
	reader    SpreadsheetReader
	batchSize int
	log       zerolog.Logger
	now       func() time.Time
}

// NewIngestUseCase construye el caso de uso. batchSize se limita a repository.MaxBatchWrites.
func NewIngestUseCase(lists repository.PriceListRepository, reader SpreadsheetReader, batchSize int, log zerolog.Logger) *IngestUseCase {
	return &IngestUseCase{
		lists:     lists,
		reader:    reader,
		batchSize: ClampBatchSize(batchSize),
		log:       log,
		now:       time.Now,
	}
}

// Ingest lee la hoja, crea la lista en estado uploaded, escribe los ítems aceptados en
// sub-lotes y pasa la lista a processed. Una hoja sin filas no crea nada.
// Si falla un sub-lote, los anteriores quedan confirmados y la lista sigue en uploaded.
func (uc *IngestUseCase) Ingest(ctx context.Context, in IngestInput) (*dto.IngestResponse, error) {
	if err := in.Defaults.validate(); err != nil {
		return nil, err
	}
	sheet, err := uc.reader.ReadFirstSheet(in.SourceName, in.Data)
	if err != nil {
		return nil, fmt.Errorf("leer hoja de cálculo: %w", err)
	}
	if len(sheet.Rows) == 0 {
		uc.log.Info().Str("source", in.SourceName).Msg("lista de precios vacía, no se crea nada")
		return &dto.IngestResponse{}, nil
	}

	now := uc.now()
	supplierID, cutoff := pricing.ParseSourceName(in.SourceName, now)
	if s := pricing.SanitizeSupplierID(in.SupplierID); s != "" {
		supplierID = s
	}
	if in.CutoffDate != nil {
		cutoff = *in.CutoffDate
	}
	sourceRef := in.SourceRef
	if sourceRef == "" {
		sourceRef = in.SourceName
	}

	list := &entity.PriceList{
		ID:           uuid.New().String(),
		SupplierID:   supplierID,
		CutoffDate:   cutoff,
		Currency:     strings.ToUpper(strings.TrimSpace(in.Defaults.Currency)),
		TaxInclusive: in.Defaults.TaxInclusive,
		TaxRate:      in.Defaults.TaxRate,
		SourceFile:   sourceRef,
		Status:       entity.PriceListUploaded,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.lists.Create(ctx, list); err != nil {
		return nil, fmt.Errorf("crear lista de precios: %w", err)
	}

	cols := pricing.DetectColumns(sheet.Headers)
	rowDefaults := pricing.RowDefaults{TaxInclusive: list.TaxInclusive, TaxRate: list.TaxRate}
	items := make([]*entity.PriceListItem, 0, len(sheet.Rows))
	for _, r := range sheet.Rows {
		item, ok := pricing.ParseRow(r, cols, rowDefaults)
		if !ok {
			continue
		}
		item.ID = uuid.New().String()
		item.PriceListID = list.ID
		items = append(items, item)
	}

	err = writeInBatches(ctx, items, uc.batchSize, func(ctx context.Context, chunk []*entity.PriceListItem) error {
		return uc.lists.CreateItems(ctx, list.ID, chunk)
	})
	if err != nil {
		uc.log.Error().Err(err).Str("list_id", list.ID).Msg("ingesta incompleta, la lista queda en uploaded")
		return nil, fmt.Errorf("guardar ítems de la lista %s: %w", list.ID, err)
	}
	if err := uc.lists.UpdateStatus(ctx, list.ID, entity.PriceListProcessed); err != nil {
		return nil, fmt.Errorf("marcar lista %s como procesada: %w", list.ID, err)
	}

	out := &dto.IngestResponse{
		ListID:     list.ID,
		SupplierID: list.SupplierID,
		Rows:       len(sheet.Rows),
		Accepted:   len(items),
		Rejected:   len(sheet.Rows) - len(items),
	}
	uc.log.Info().
		Str("list_id", list.ID).
		Str("supplier_id", list.SupplierID).
		Int("rows", out.Rows).
		Int("accepted", out.Accepted).
		Int("rejected", out.Rejected).
		Msg("lista de precios procesada")
	return out, nil
}
