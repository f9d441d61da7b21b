package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SettlementFacade exposes the subset of application functionality required by the worker.
type SettlementFacade interface {
	ReconcileLeftovers(ctx context.Context, limit int) (int64, error)
}

// SettlementReconciler periodically re-deletes cart items that a settled
// payment already covers. A crash between the payment insert and the cart
// delete leaves such items behind; the delete is idempotent, so re-issuing
// it is always safe.
type SettlementReconciler struct {
	facade       SettlementFacade
	pollInterval time.Duration
	batchSize    int
	logger       *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSettlementReconciler constructs the background reconciler.
func NewSettlementReconciler(facade SettlementFacade, pollInterval time.Duration, batchSize int, logger *slog.Logger) *SettlementReconciler {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &SettlementReconciler{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		logger:       logger,
	}
}

// Start launches background reconciliation.
func (r *SettlementReconciler) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.run(runCtx)
}

// Stop waits for the reconciliation loop to finish.
func (r *SettlementReconciler) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *SettlementReconciler) run(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.reconcile(ctx)
		}
	}
}

func (r *SettlementReconciler) reconcile(ctx context.Context) {
	deleted, err := r.facade.ReconcileLeftovers(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("settlement reconciliation failed", slog.String("error", err.Error()))
		return
	}
	if deleted > 0 {
		r.logger.Info("settlement leftovers removed", slog.Int64("deleted", deleted))
	}
}
