package kafka

import (
	"context"
	"log/slog"
	"sort"

	"github.com/couchcryptid/forecast-report/internal/config"
	"github.com/couchcryptid/forecast-report/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces report segments to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic. Segments
// share a key per report, so the hash balancer keeps them ordered on one
// partition.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch publishes report segments in a single WriteMessages call.
func (w *Writer) LoadBatch(ctx context.Context, segments []domain.ReportMessage) error {
	if len(segments) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(segments))
	for i := range segments {
		msgs[i] = serializeToMessage(segments[i])
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return err
	}
	w.logger.Debug("published report segments", "count", len(msgs), "topic", w.writer.Topic)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage converts a report segment into a Kafka message with
// headers in key order.
func serializeToMessage(seg domain.ReportMessage) kafkago.Message {
	keys := make([]string, 0, len(seg.Headers))
	for k := range seg.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	headers := make([]kafkago.Header, 0, len(keys))
	for _, k := range keys {
		headers = append(headers, kafkago.Header{Key: k, Value: []byte(seg.Headers[k])})
	}
	return kafkago.Message{
		Key:     seg.Key,
		Value:   seg.Value,
		Headers: headers,
	}
}
