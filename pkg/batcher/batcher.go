// Package batcher provides a generic buffer that flushes items in insertion order once it grows past a size.
package batcher

import (
	"context"

	"go.uber.org/zap"
)

// Batcher buffers items and hands them to the flush callback synchronously.
// It is not safe for concurrent use.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	flushSize     int
	buf           []T
	logger        *zap.Logger
}

// New constructs a Batcher. A non-positive flushSize flushes on every Add.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, flushSize int) *Batcher[T] {
	if flushSize < 1 {
		flushSize = 1
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		flushSize:     flushSize,
		buf:           make([]T, 0, flushSize),
	}
}

// Add buffers items and flushes once the buffer reaches the flush size.
func (b *Batcher[T]) Add(ctx context.Context, items ...T) error {
	b.buf = append(b.buf, items...)
	if len(b.buf) < b.flushSize {
		return nil
	}
	return b.Flush(ctx)
}

// Flush hands buffered items to the callback. Nothing is called when the buffer is empty.
// On error the buffer is kept so the caller may retry.
func (b *Batcher[T]) Flush(ctx context.Context) error {
	if len(b.buf) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := b.flushCallback(ctx, b.buf); err != nil {
		return err
	}
	b.logger.Debug("batch flushed", zap.Int("size", len(b.buf)))
	b.buf = make([]T, 0, b.flushSize)
	return nil
}

// Len reports how many items are buffered.
func (b *Batcher[T]) Len() int {
	return len(b.buf)
}
