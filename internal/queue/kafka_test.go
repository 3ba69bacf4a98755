package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smukkama/crop-advisory/internal/alerting"
	"github.com/smukkama/crop-advisory/internal/protocol"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

type fakeReader struct {
	messages  []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, context.DeadlineExceeded
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

func (r *fakeReader) Stats() kafka.ReaderStats { return kafka.ReaderStats{Messages: int64(len(r.committed))} }

func frostNotification() *protocol.AlertNotification {
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	return protocol.NewAlertNotification(alerting.WeatherAlert{
		Type:     alerting.TypeFrost,
		Title:    "Frost Warning",
		Message:  "Temperature may drop to 3°C on Monday",
		Severity: alerting.SeverityDanger,
	}, day, day)
}

func TestPublishAlert_KeysByAlertType(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w}
	n := frostNotification()

	require.NoError(t, p.PublishAlert(context.Background(), n))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "frost", string(msg.Key))

	decoded, err := protocol.DecodeAlertNotification(msg.Value)
	require.NoError(t, err)
	assert.Equal(t, n.ID, decoded.ID)
	assert.Equal(t, alerting.TypeFrost, decoded.Alert.Type)
	assert.Equal(t, "2026-06-01", decoded.Day)
}

func TestPublish_WrapsWriterError(t *testing.T) {
	p := &Producer{writer: &fakeWriter{err: errors.New("leader not available")}}

	err := p.PublishAlert(context.Background(), frostNotification())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write message")
	assert.Contains(t, err.Error(), "leader not available")
}

func TestConsumer_ConsumeAndCommit(t *testing.T) {
	r := &fakeReader{messages: []kafka.Message{{Offset: 4, Key: []byte("heat")}}}
	c := &Consumer{reader: r}
	ctx := context.Background()

	msg, err := c.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), msg.Offset)

	require.NoError(t, c.Commit(ctx, msg))
	require.Len(t, r.committed, 1)
	assert.Equal(t, int64(4), r.committed[0].Offset)
	assert.Equal(t, int64(1), c.Stats().Messages)

	_, err = c.Consume(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
