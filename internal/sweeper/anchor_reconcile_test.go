package sweeper_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicstack/token-ledger/internal/domain"
	"github.com/civicstack/token-ledger/internal/logger"
	"github.com/civicstack/token-ledger/internal/mocks"
	"github.com/civicstack/token-ledger/internal/store/schema"
	"github.com/civicstack/token-ledger/internal/sweeper"
)

// testSweeperMocks contains all the mocks needed for testing the sweeper
type testSweeperMocks struct {
	ctrl    *gomock.Controller
	store   *mocks.MockStore
	notary  *mocks.MockNotary
	clock   *mocks.MockClock
	sweeper sweeper.Sweeper
}

// setupTestSweeper creates all the mocks and sweeper for testing
func setupTestSweeper(t *testing.T) *testSweeperMocks {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testSweeperMocks{
		ctrl:   ctrl,
		store:  mocks.NewMockStore(ctrl),
		notary: mocks.NewMockNotary(ctrl),
		clock:  mocks.NewMockClock(ctrl),
	}

	config := &sweeper.AnchorReconcileConfig{
		BatchSize:      10,
		WorkerPoolSize: 2,
		GraceWindow:    time.Minute,
	}

	tm.sweeper = sweeper.NewAnchorReconcileSweeper(
		config,
		tm.store,
		tm.notary,
		tm.clock,
	)

	return tm
}

// tearDownTestSweeper cleans up the test mocks
func tearDownTestSweeper(mocks *testSweeperMocks) {
	mocks.ctrl.Finish()
}

// expectClock wires clock expectations with a fast, interruptible sleep
func (tm *testSweeperMocks) expectClock(now time.Time) {
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(now).Return(time.Second).AnyTimes()
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		go func() {
			time.Sleep(50 * time.Millisecond)
			ch <- time.Now()
		}()
		return ch
	}).AnyTimes()
}

func unanchoredEntry(id, tokenID string) *schema.LedgerEntry {
	to := "npub1alice"
	return &schema.LedgerEntry{
		ID:         id,
		TokenID:    tokenID,
		EntryType:  schema.EntryTypeMint,
		ToIdentity: &to,
		Amount:     5,
		Timestamp:  time.Now().UTC(),
	}
}

func TestAnchorReconcileSweeper_Name(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	assert.Equal(t, "anchor-reconcile-sweeper", mocks.sweeper.Name())
}

func TestAnchorReconcileSweeper_AnchorsEntry(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	ctx := context.Background()
	now := time.Now()
	mocks.expectClock(now)

	token := &schema.Token{ID: "tok-1", Symbol: "CRED"}
	entry := unanchoredEntry("entry-1", "tok-1")
	ref := domain.TxRef(strings.Repeat("ab", 32))

	// First cycle returns one entry, later cycles are empty
	gomock.InOrder(
		mocks.store.EXPECT().
			ListUnanchoredEntries(gomock.Any(), now.Add(-time.Minute), 10).
			Return([]*schema.LedgerEntry{entry}, nil).
			Times(1),
		mocks.store.EXPECT().
			ListUnanchoredEntries(gomock.Any(), now.Add(-time.Minute), 10).
			Return([]*schema.LedgerEntry{}, nil).
			MinTimes(1),
	)

	mocks.store.EXPECT().GetTokenByID(gomock.Any(), "tok-1").Return(token, nil)

	mocks.notary.EXPECT().
		Notarize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.LedgerEvent) (domain.TxRef, error) {
			assert.Equal(t, "entry-1", event.EntryID)
			assert.Equal(t, "CRED", event.TokenSymbol)
			return ref, nil
		})

	mocks.store.EXPECT().
		SetEntryExternalRef(gomock.Any(), "entry-1", ref.String()).
		Return(nil)

	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = mocks.sweeper.Stop(ctx)
	}()

	err := mocks.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestAnchorReconcileSweeper_RetriesThenSucceeds(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	ctx := context.Background()
	now := time.Now()
	mocks.expectClock(now)

	token := &schema.Token{ID: "tok-1", Symbol: "CRED"}
	entry := unanchoredEntry("entry-1", "tok-1")
	ref := domain.TxRef(strings.Repeat("cd", 32))

	gomock.InOrder(
		mocks.store.EXPECT().
			ListUnanchoredEntries(gomock.Any(), gomock.Any(), 10).
			Return([]*schema.LedgerEntry{entry}, nil).
			Times(1),
		mocks.store.EXPECT().
			ListUnanchoredEntries(gomock.Any(), gomock.Any(), 10).
			Return([]*schema.LedgerEntry{}, nil).
			MinTimes(1),
	)

	mocks.store.EXPECT().GetTokenByID(gomock.Any(), "tok-1").Return(token, nil)

	// Notary fails once, then succeeds on retry
	gomock.InOrder(
		mocks.notary.EXPECT().
			Notarize(gomock.Any(), gomock.Any()).
			Return(domain.TxRef(""), errors.New("notary unavailable")),
		mocks.notary.EXPECT().
			Notarize(gomock.Any(), gomock.Any()).
			Return(ref, nil),
	)

	mocks.store.EXPECT().
		SetEntryExternalRef(gomock.Any(), "entry-1", ref.String()).
		Return(nil)

	go func() {
		time.Sleep(2500 * time.Millisecond)
		_ = mocks.sweeper.Stop(ctx)
	}()

	err := mocks.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestAnchorReconcileSweeper_LeavesEntryOnPersistentFailure(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	ctx := context.Background()
	now := time.Now()
	mocks.expectClock(now)

	token := &schema.Token{ID: "tok-1", Symbol: "CRED"}
	entry := unanchoredEntry("entry-1", "tok-1")

	gomock.InOrder(
		mocks.store.EXPECT().
			ListUnanchoredEntries(gomock.Any(), gomock.Any(), 10).
			Return([]*schema.LedgerEntry{entry}, nil).
			Times(1),
		mocks.store.EXPECT().
			ListUnanchoredEntries(gomock.Any(), gomock.Any(), 10).
			Return([]*schema.LedgerEntry{}, nil).
			MinTimes(1),
	)

	mocks.store.EXPECT().GetTokenByID(gomock.Any(), "tok-1").Return(token, nil)

	// All attempts fail; entry is left for the next cycle, no ref is written
	mocks.notary.EXPECT().
		Notarize(gomock.Any(), gomock.Any()).
		Return(domain.TxRef(""), errors.New("notary unavailable")).
		Times(4)

	go func() {
		time.Sleep(8 * time.Second)
		_ = mocks.sweeper.Stop(ctx)
	}()

	err := mocks.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestAnchorReconcileSweeper_StartTwice(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	ctx := context.Background()
	now := time.Now()
	mocks.expectClock(now)

	mocks.store.EXPECT().
		ListUnanchoredEntries(gomock.Any(), gomock.Any(), 10).
		Return([]*schema.LedgerEntry{}, nil).
		AnyTimes()

	started := make(chan struct{})
	go func() {
		close(started)
		_ = mocks.sweeper.Start(ctx)
	}()
	<-started
	time.Sleep(50 * time.Millisecond)

	err := mocks.sweeper.Start(ctx)
	assert.Error(t, err)

	_ = mocks.sweeper.Stop(ctx)
}
