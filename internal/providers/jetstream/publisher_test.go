package jetstream

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicstack/token-ledger/internal/domain"
	"github.com/civicstack/token-ledger/internal/logger"
	"github.com/civicstack/token-ledger/internal/messaging"
	"github.com/civicstack/token-ledger/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var testConfig = Config{
	URL:            "nats://localhost:4222",
	StreamName:     "LEDGER_EVENTS",
	MaxReconnects:  3,
	ReconnectWait:  time.Second,
	ConnectionName: "test",
}

func setupTestPublisher(t *testing.T) (*gomock.Controller, *mocks.MockJetStream, *mocks.MockJSON, *mocks.MockNatsConn, func() (messaging.Publisher, error)) {
	t.Helper()
	ctrl := gomock.NewController(t)

	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	jsonAdapter := mocks.NewMockJSON(ctrl)

	natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(nc, js, nil)

	build := func() (messaging.Publisher, error) {
		return NewPublisher(testConfig, natsJS, jsonAdapter)
	}
	return ctrl, js, jsonAdapter, nc, build
}

func TestPublishEvent(t *testing.T) {
	ctx := context.Background()

	event := &domain.LedgerEvent{
		EntryID:     "01JX0000000000000000000000",
		TokenID:     "01JW0000000000000000000000",
		TokenSymbol: "CRED",
		EventType:   domain.EventTypeMint,
		Amount:      10,
	}

	t.Run("publishes on the symbol-scoped subject", func(t *testing.T) {
		ctrl, js, jsonAdapter, _, build := setupTestPublisher(t)
		defer ctrl.Finish()

		pub, err := build()
		require.NoError(t, err)

		payload := []byte(`{"entry_id":"01JX0000000000000000000000"}`)
		jsonAdapter.EXPECT().Marshal(event).Return(payload, nil)
		js.EXPECT().Publish(ctx, "ledger.cred.mint", payload).Return(&jetstream.PubAck{}, nil)

		require.NoError(t, pub.PublishEvent(ctx, event))
	})

	t.Run("propagates publish failures", func(t *testing.T) {
		ctrl, js, jsonAdapter, _, build := setupTestPublisher(t)
		defer ctrl.Finish()

		pub, err := build()
		require.NoError(t, err)

		jsonAdapter.EXPECT().Marshal(event).Return([]byte("{}"), nil)
		js.EXPECT().Publish(ctx, "ledger.cred.mint", gomock.Any()).Return(nil, errors.New("stream not found"))

		err = pub.PublishEvent(ctx, event)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "publish")
	})

	t.Run("unknown symbol falls back", func(t *testing.T) {
		ctrl, js, jsonAdapter, _, build := setupTestPublisher(t)
		defer ctrl.Finish()

		pub, err := build()
		require.NoError(t, err)

		anonymous := &domain.LedgerEvent{EventType: domain.EventTypeBurn}
		jsonAdapter.EXPECT().Marshal(anonymous).Return([]byte("{}"), nil)
		js.EXPECT().Publish(ctx, "ledger.unknown.burn", gomock.Any()).Return(&jetstream.PubAck{}, nil)

		require.NoError(t, pub.PublishEvent(ctx, anonymous))
	})
}

func TestClose(t *testing.T) {
	ctrl, _, _, nc, build := setupTestPublisher(t)
	defer ctrl.Finish()

	pub, err := build()
	require.NoError(t, err)

	nc.EXPECT().Close()
	pub.Close()
}

func TestNewPublisherConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(nil, nil, errors.New("no servers"))

	_, err := NewPublisher(testConfig, natsJS, mocks.NewMockJSON(ctrl))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect")
}
