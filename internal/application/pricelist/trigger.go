package pricelist

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/listas-precios/internal/application/dto"
)

// DefaultUploadPrefix ruta bajo la cual se procesan los archivos subidos.
const DefaultUploadPrefix = "uploads/listas-precios/"

// UploadTrigger procesa un objeto recién finalizado en el almacenamiento de archivos.
type UploadTrigger struct {
	ingest   *IngestUseCase
	storage  FileStorage
	prefix   string
	scheme   string
	defaults ListDefaults
	log      zerolog.Logger
}

// NewUploadTrigger construye el trigger. scheme se usa para la referencia del archivo (ej. "gs").
func NewUploadTrigger(ingest *IngestUseCase, storage FileStorage, prefix, scheme string, defaults ListDefaults, log zerolog.Logger) *UploadTrigger {
	if prefix == "" {
		prefix = DefaultUploadPrefix
	}
	if scheme == "" {
		scheme = "gs"
	}
	return &UploadTrigger{ingest: ingest, storage: storage, prefix: prefix, scheme: scheme, defaults: defaults, log: log}
}

// HandleObjectFinalized ignora objetos fuera del prefijo (nil, nil); si no, descarga el
// archivo y ejecuta la ingesta con los valores por defecto configurados.
func (t *UploadTrigger) HandleObjectFinalized(ctx context.Context, bucket, path string) (*dto.IngestResponse, error) {
	if !strings.HasPrefix(path, t.prefix) {
		t.log.Debug().Str("path", path).Msg("objeto fuera del prefijo de listas, se ignora")
		return nil, nil
	}
	data, err := t.storage.Download(ctx, bucket, path)
	if err != nil {
		return nil, fmt.Errorf("descargar %s/%s: %w", bucket, path, err)
	}
	return t.ingest.Ingest(ctx, IngestInput{
		Data:       data,
		SourceName: path,
		SourceRef:  fmt.Sprintf("%s://%s/%s", t.scheme, bucket, path),
		Defaults:   t.defaults,
	})
}
