package anchor_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicstack/token-ledger/internal/anchor"
	"github.com/civicstack/token-ledger/internal/domain"
	"github.com/civicstack/token-ledger/internal/mocks"
)

var testEvent = &domain.LedgerEvent{
	EntryID:     "01JX0000000000000000000000",
	TokenID:     "01JW0000000000000000000000",
	TokenSymbol: "CRED",
	EventType:   domain.EventTypeMint,
	Amount:      100,
	Timestamp:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
}

func TestNotarize(t *testing.T) {
	ctx := context.Background()
	txRef := strings.Repeat("ab", 32)

	t.Run("posts canonical JSON and returns the reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		httpClient := mocks.NewMockHTTPClient(ctrl)
		notary := anchor.NewHTTPNotary("http://anchor.local", httpClient)

		var posted []byte
		httpClient.EXPECT().
			Post(gomock.Any(), "http://anchor.local/v1/notarize", "application/json", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ string, body io.Reader) ([]byte, error) {
				var err error
				posted, err = io.ReadAll(body)
				require.NoError(t, err)
				return []byte(`{"txid":"` + txRef + `"}`), nil
			})

		ref, err := notary.Notarize(ctx, testEvent)
		require.NoError(t, err)
		assert.Equal(t, domain.TxRef(txRef), ref)

		// Canonicalized payload still decodes to the event
		var decoded domain.LedgerEvent
		require.NoError(t, json.Unmarshal(posted, &decoded))
		assert.Equal(t, testEvent.EntryID, decoded.EntryID)
		assert.Equal(t, testEvent.Amount, decoded.Amount)
	})

	t.Run("propagates transport errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		httpClient := mocks.NewMockHTTPClient(ctrl)
		notary := anchor.NewHTTPNotary("http://anchor.local", httpClient)

		httpClient.EXPECT().
			Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := notary.Notarize(ctx, testEvent)
		require.Error(t, err)
		assert.Contains(t, err.Error(), testEvent.EntryID)
	})

	t.Run("rejects malformed reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		httpClient := mocks.NewMockHTTPClient(ctrl)
		notary := anchor.NewHTTPNotary("http://anchor.local", httpClient)

		httpClient.EXPECT().
			Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]byte(`{"txid":"not-hex"}`), nil)

		_, err := notary.Notarize(ctx, testEvent)
		require.ErrorIs(t, err, domain.ErrInvalidTxRef)
	})

	t.Run("rejects undecodable response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		httpClient := mocks.NewMockHTTPClient(ctrl)
		notary := anchor.NewHTTPNotary("http://anchor.local", httpClient)

		httpClient.EXPECT().
			Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]byte("not json"), nil)

		_, err := notary.Notarize(ctx, testEvent)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})
}
