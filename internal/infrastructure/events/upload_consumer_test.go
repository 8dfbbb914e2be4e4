package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/listas-precios/internal/application/dto"
	"github.com/jhoicas/listas-precios/pkg/config"
)

type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafka.Message
	committed []int64
	cancel    context.CancelFunc
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		r.cancel()
		return kafka.Message{}, context.Canceled
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error { r.closed = true; return nil }

type fakeHandler struct {
	calls []string
	err   error
}

func (h *fakeHandler) HandleObjectFinalized(_ context.Context, bucket, path string) (*dto.IngestResponse, error) {
	h.calls = append(h.calls, bucket+"/"+path)
	if h.err != nil {
		return nil, h.err
	}
	return &dto.IngestResponse{ListID: "l1", Accepted: 1}, nil
}

func TestParseObjectEvent(t *testing.T) {
	ev, err := ParseObjectEvent([]byte(`{"bucket":"b","name":"uploads/listas-precios/a.xlsx","size":"10"}`))
	require.NoError(t, err)
	assert.Equal(t, ObjectEvent{Bucket: "b", Name: "uploads/listas-precios/a.xlsx"}, ev)

	_, err = ParseObjectEvent([]byte(`{"bucket":"b"}`))
	assert.Error(t, err)
	_, err = ParseObjectEvent([]byte(`no-json`))
	assert.Error(t, err)
}

func TestUploadConsumer_ConfirmaSiempre(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &fakeReader{cancel: cancel, msgs: []kafka.Message{
		{Offset: 1, Value: []byte(`{"bucket":"b","name":"uploads/listas-precios/a.xlsx"}`)},
		{Offset: 2, Value: []byte(`basura`)},
		{Offset: 3, Value: []byte(`{"bucket":"b","name":"uploads/listas-precios/c.xlsx"}`)},
	}}
	handler := &fakeHandler{err: errors.New("archivo corrupto")}
	c := newUploadConsumer(reader, handler, zerolog.Nop())
	c.backoff = time.Millisecond

	require.NoError(t, c.Run(ctx))
	assert.Equal(t, []string{"b/uploads/listas-precios/a.xlsx", "b/uploads/listas-precios/c.xlsx"}, handler.calls)
	assert.Equal(t, []int64{1, 2, 3}, reader.committed)

	require.NoError(t, c.Close())
	assert.True(t, reader.closed)
}

func TestNewDialer(t *testing.T) {
	d := NewDialer(config.KafkaConfig{})
	assert.Nil(t, d.SASLMechanism)
	assert.Nil(t, d.TLS)

	d = NewDialer(config.KafkaConfig{Username: "u", Password: "p"})
	require.NotNil(t, d.SASLMechanism)
	assert.Equal(t, "PLAIN", d.SASLMechanism.Name())
	assert.NotNil(t, d.TLS, "SASL siempre va con TLS")

	d = NewDialer(config.KafkaConfig{TLS: true})
	assert.Nil(t, d.SASLMechanism)
	assert.NotNil(t, d.TLS)
}
