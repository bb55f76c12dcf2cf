package worker

import (
	"context"
	"time"

	"github.com/KOFI-GYIMAH/uc-orb/internal/queue"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/logger"
)

type Importer interface {
	Import(ctx context.Context) (int, error)
}

// * ImportWorker keeps the Postgres mirror in step with the catalog document.
// * It imports once at start, then on every tick and on every queued request.
type ImportWorker struct {
	importer Importer
	interval time.Duration
	requests <-chan queue.ImportRequest
}

// * requests may be nil, in which case only the ticker drives imports
func NewImportWorker(importer Importer, interval time.Duration, requests <-chan queue.ImportRequest) *ImportWorker {
	return &ImportWorker{
		importer: importer,
		interval: interval,
		requests: requests,
	}
}

func (w *ImportWorker) Run(ctx context.Context) {
	w.runOnce(ctx, "initial")

	var tick <-chan time.Time
	if w.interval > 0 {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	requests := w.requests
	for {
		select {
		case <-tick:
			w.runOnce(ctx, "scheduled")

		case req, ok := <-requests:
			if !ok {
				// * stop selecting on a closed channel, the ticker keeps going
				requests = nil
				continue
			}
			logger.Info("received import request from %s queued at %s", req.Source, req.RequestedAt.Format(time.RFC3339))
			w.runOnce(ctx, "requested")

		case <-ctx.Done():
			logger.Info("stopping import worker")
			return
		}
	}
}

func (w *ImportWorker) runOnce(ctx context.Context, trigger string) {
	n, err := w.importer.Import(ctx)
	if err != nil {
		logger.Error("%s import failed: %v", trigger, err)
		return
	}
	logger.Info("%s import wrote %d repositories", trigger, n)
}
