// Package events consume notificaciones de objetos finalizados en el bucket de archivos
// y dispara la ingesta de listas de precios.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/listas-precios/internal/application/dto"
	"github.com/jhoicas/listas-precios/pkg/config"
)

// ObjectEvent notificación de objeto finalizado: {"bucket": "...", "name": "..."}.
type ObjectEvent struct {
	Bucket string `json:"bucket"`
	Name   string `json:"name"`
}

// ObjectHandler lo implementa pricelist.UploadTrigger.
type ObjectHandler interface {
	HandleObjectFinalized(ctx context.Context, bucket, path string) (*dto.IngestResponse, error)
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// UploadConsumer lee eventos del tópico y los pasa al trigger. Los errores de ingesta se
// registran y el mensaje se confirma igual: el archivo no se reintenta.
type UploadConsumer struct {
	reader  messageReader
	handler ObjectHandler
	log     zerolog.Logger
	backoff time.Duration
}

// NewUploadConsumer construye el consumidor con un grupo de consumo de kafka-go.
func NewUploadConsumer(cfg config.KafkaConfig, handler ObjectHandler, log zerolog.Logger) *UploadConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  cfg.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
		Dialer:   NewDialer(cfg),
	})
	return newUploadConsumer(reader, handler, log)
}

func newUploadConsumer(reader messageReader, handler ObjectHandler, log zerolog.Logger) *UploadConsumer {
	return &UploadConsumer{reader: reader, handler: handler, log: log, backoff: time.Second}
}

// Run bloquea hasta que ctx se cancele.
func (c *UploadConsumer) Run(ctx context.Context) error {
	c.log.Info().Msg("consumidor de archivos subidos iniciado")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			c.log.Warn().Err(err).Msg("error leyendo evento de almacenamiento")
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.backoff):
			}
			continue
		}

		c.handle(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.log.Error().Err(err).Int64("offset", msg.Offset).Msg("no se pudo confirmar el evento")
		}
	}
}

func (c *UploadConsumer) handle(ctx context.Context, msg kafka.Message) {
	ev, err := ParseObjectEvent(msg.Value)
	if err != nil {
		c.log.Warn().Err(err).Int64("offset", msg.Offset).Msg("evento de almacenamiento inválido")
		return
	}
	res, err := c.handler.HandleObjectFinalized(ctx, ev.Bucket, ev.Name)
	if err != nil {
		c.log.Error().Err(err).Str("bucket", ev.Bucket).Str("path", ev.Name).Msg("falló la ingesta del archivo")
		return
	}
	if res != nil {
		c.log.Info().Str("path", ev.Name).Str("list_id", res.ListID).Int("accepted", res.Accepted).Msg("archivo ingerido")
	}
}

// Close cierra el lector de kafka.
func (c *UploadConsumer) Close() error {
	return c.reader.Close()
}

// ParseObjectEvent decodifica y valida el evento.
func ParseObjectEvent(data []byte) (ObjectEvent, error) {
	var ev ObjectEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return ObjectEvent{}, fmt.Errorf("decodificar evento: %w", err)
	}
	if ev.Bucket == "" || ev.Name == "" {
		return ObjectEvent{}, fmt.Errorf("evento sin bucket o nombre")
	}
	return ev, nil
}
