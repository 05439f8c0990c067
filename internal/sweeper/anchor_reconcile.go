package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/civicstack/token-ledger/internal/adapter"
	"github.com/civicstack/token-ledger/internal/anchor"
	"github.com/civicstack/token-ledger/internal/domain"
	"github.com/civicstack/token-ledger/internal/logger"
	"github.com/civicstack/token-ledger/internal/store"
	"github.com/civicstack/token-ledger/internal/store/schema"
)

const (
	SWEEP_CYCLE_INTERVAL = 1 * time.Minute // Time to sleep between sweep cycles

	maxNotarizeRetries = 3
)

// AnchorReconcileConfig holds configuration for the anchor reconciliation sweeper
type AnchorReconcileConfig struct {
	BatchSize      int           // Entries to reconcile per cycle
	WorkerPoolSize int           // Concurrent notarize calls
	GraceWindow    time.Duration // Skip entries newer than this; the inline anchor attempt may still be running
}

// anchorReconcileSweeper retries notarization for ledger entries whose inline
// anchor attempt failed, patching external_ref on success
type anchorReconcileSweeper struct {
	config    *AnchorReconcileConfig
	store     store.Store
	notary    anchor.Notary
	pool      pond.Pool
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewAnchorReconcileSweeper creates a new anchor reconciliation sweeper
func NewAnchorReconcileSweeper(
	config *AnchorReconcileConfig,
	st store.Store,
	notary anchor.Notary,
	clock adapter.Clock,
) Sweeper {
	return &anchorReconcileSweeper{
		config:    config,
		store:     st,
		notary:    notary,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *anchorReconcileSweeper) Name() string {
	return "anchor-reconcile-sweeper"
}

// Start begins the sweeper's main loop
func (s *anchorReconcileSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting anchor reconciliation sweeper",
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Duration("grace_window", s.config.GraceWindow),
	)

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Anchor reconciliation sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Anchor reconciliation sweeper stop requested")
			s.cleanup()
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (s *anchorReconcileSweeper) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *anchorReconcileSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping anchor reconciliation sweeper")

	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Anchor reconciliation sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Anchor reconciliation sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle runs a single sweep cycle
func (s *anchorReconcileSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	cutoff := startTime.Add(-s.config.GraceWindow)
	entries, err := s.store.ListUnanchoredEntries(ctx, cutoff, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list unanchored entries: %w", err)
	}

	if len(entries) == 0 {
		if !s.sleep(ctx, SWEEP_CYCLE_INTERVAL) {
			return ctx.Err() // Context canceled during sleep
		}
		return nil
	}

	logger.InfoCtx(ctx, "Found unanchored entries", zap.Int("count", len(entries)))

	// Resolve tokens up front so workers don't hit the store per entry
	tokens := make(map[string]*schema.Token)
	for _, entry := range entries {
		if _, ok := tokens[entry.TokenID]; ok {
			continue
		}
		token, err := s.store.GetTokenByID(ctx, entry.TokenID)
		if err != nil {
			return fmt.Errorf("failed to resolve token %s: %w", entry.TokenID, err)
		}
		if token == nil {
			return fmt.Errorf("entry %s references unknown token %s", entry.ID, entry.TokenID)
		}
		tokens[entry.TokenID] = token
	}

	var anchoredCount, failedCount atomic.Int32

	for _, entry := range entries {
		token := tokens[entry.TokenID]
		s.pool.Submit(func() {
			if err := s.reconcileEntry(ctx, token, entry); err != nil {
				failedCount.Add(1)
				logger.WarnCtx(ctx, "entry still unanchored after retries",
					zap.String("entry_id", entry.ID),
					zap.Error(err),
				)
				return
			}
			anchoredCount.Add(1)
		})
	}

	s.pool.StopAndWait()

	// Recreate pool for next cycle
	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	duration := s.clock.Since(startTime)
	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", duration),
		zap.Int("total", len(entries)),
		zap.Int32("anchored", anchoredCount.Load()),
		zap.Int32("failed", failedCount.Load()),
	)

	if !s.sleep(ctx, SWEEP_CYCLE_INTERVAL) {
		return ctx.Err() // Context canceled during sleep
	}

	return nil
}

// reconcileEntry retries notarization for one entry and patches its anchor reference
func (s *anchorReconcileSweeper) reconcileEntry(ctx context.Context, token *schema.Token, entry *schema.LedgerEntry) error {
	event := entryEvent(token, entry)

	var ref domain.TxRef
	operation := func() error {
		var err error
		ref, err = s.notary.Notarize(ctx, event)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 1 * time.Second
	if err := backoff.Retry(operation, backoff.WithMaxRetries(expBackoff, maxNotarizeRetries)); err != nil {
		return fmt.Errorf("notarization failed: %w", err)
	}

	if err := s.store.SetEntryExternalRef(ctx, entry.ID, ref.String()); err != nil {
		return fmt.Errorf("failed to set external ref: %w", err)
	}
	return nil
}

// sleep sleeps for the given duration but can be interrupted by context cancellation
// Returns true if sleep completed normally, false if interrupted by context
func (s *anchorReconcileSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true // Sleep completed
	case <-ctx.Done():
		return false // Interrupted by context cancellation
	}
}

// entryEvent rebuilds the event descriptor for an already persisted entry
func entryEvent(token *schema.Token, entry *schema.LedgerEntry) *domain.LedgerEvent {
	event := &domain.LedgerEvent{
		EntryID:     entry.ID,
		TokenID:     token.ID,
		TokenSymbol: token.Symbol,
		EventType:   domain.EventType(entry.EntryType),
		Amount:      entry.Amount,
		Timestamp:   entry.Timestamp,
	}
	if entry.FromIdentity != nil {
		from := domain.Identity(*entry.FromIdentity)
		event.From = &from
	}
	if entry.ToIdentity != nil {
		to := domain.Identity(*entry.ToIdentity)
		event.To = &to
	}
	return event
}
