package domain

import (
	"context"
	"time"
)

// RawMessage represents an unprocessed forecast payload from the source topic
// or the forecast provider.
type RawMessage struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// ReportMessage is one report segment destined for the notification channel.
type ReportMessage struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
