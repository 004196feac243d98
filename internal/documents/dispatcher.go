package documents

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

// Sink delivers a rendered invoice artifact to its destination (disk, mail,
// object storage).
type Sink interface {
	Deliver(doc SettlementDocument, artifact []byte) error
}

// FileSink writes invoice artifacts under a directory, one file per invoice.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

func (s *FileSink) Deliver(doc SettlementDocument, artifact []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create invoice dir: %w", err)
	}
	path := filepath.Join(s.dir, doc.InvoiceNumber+".txt")
	if err := os.WriteFile(path, artifact, 0o644); err != nil {
		return fmt.Errorf("failed to write invoice %s: %w", doc.InvoiceNumber, err)
	}
	zap.L().Info("invoice delivered",
		zap.String("invoice", doc.InvoiceNumber), zap.String("path", path))
	return nil
}

// Dispatcher renders and delivers settlement documents asynchronously on a
// worker pool. Dispatch is fire-and-forget: a job failure is retried a
// bounded number of times and then logged; it can never roll back the
// settlement that produced it.
type Dispatcher struct {
	renderer   Renderer
	sink       Sink
	workerPool WorkerPoolI
}

func NewDispatcher(renderer Renderer, sink Sink) *Dispatcher {
	return &Dispatcher{
		renderer:   renderer,
		sink:       sink,
		workerPool: NewWorkerPool(4),
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, doc SettlementDocument) {
	err := d.workerPool.AddTask(ctx, func() error {
		return d.process(doc)
	})
	if err != nil {
		zap.L().Error("failed to enqueue settlement document",
			zap.String("invoice", doc.InvoiceNumber), zap.Error(err))
	}
}

func (d *Dispatcher) process(doc SettlementDocument) error {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		artifact, err := d.renderer.Render(doc)
		if err == nil {
			if err = d.sink.Deliver(doc, artifact); err == nil {
				return nil
			}
		}
		lastErr = err
		zap.L().Warn("settlement document attempt failed",
			zap.String("invoice", doc.InvoiceNumber), zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(retryInterval * time.Duration(attempt))
	}
	return fmt.Errorf("failed to deliver invoice %s after %d attempts: %w",
		doc.InvoiceNumber, maxRetries, lastErr)
}

func (d *Dispatcher) Close() {
	d.workerPool.Close()
}
