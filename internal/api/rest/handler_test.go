package rest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicstack/token-ledger/internal/api/middleware"
	"github.com/civicstack/token-ledger/internal/api/rest"
	"github.com/civicstack/token-ledger/internal/domain"
	"github.com/civicstack/token-ledger/internal/ledger"
	"github.com/civicstack/token-ledger/internal/logger"
	"github.com/civicstack/token-ledger/internal/mocks"
	"github.com/civicstack/token-ledger/internal/store/schema"
)

const testAPIKey = "test-api-key"

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

func setupRouter(t *testing.T) (*mocks.MockLedgerService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockLedgerService(ctrl)

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(engine), middleware.AuthConfig{
		APIKeys: []string{testAPIKey},
	})
	return engine, router
}

func doRequest(router *gin.Engine, method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "APIKey "+testAPIKey)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetToken(t *testing.T) {
	engine, router := setupRouter(t)

	engine.EXPECT().
		GetToken(gomock.Any(), "CRED").
		Return(&schema.Token{ID: "tok-1", Name: "Community Credit", Symbol: "CRED"}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/tokens/CRED", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tok-1", resp["id"])
	assert.Equal(t, "CRED", resp["symbol"])
}

func TestMintRequiresAuth(t *testing.T) {
	_, router := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/tokens/CRED/mint",
		map[string]interface{}{"holder": "npub1alice", "amount": 10}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMint(t *testing.T) {
	engine, router := setupRouter(t)

	engine.EXPECT().
		Mint(gomock.Any(), "CRED", domain.Identity("npub1alice"), int64(10), "").
		Return(&ledger.MutationOutcome{
			Token:   &schema.Token{ID: "tok-1"},
			EntryID: "entry-1",
			Balance: 10,
		}, nil)

	w := doRequest(router, http.MethodPost, "/api/v1/tokens/CRED/mint",
		map[string]interface{}{"holder": "npub1alice", "amount": 10}, true)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "entry-1", resp["entry_id"])
	assert.Equal(t, float64(10), resp["balance"])
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"token not found", domain.ErrTokenNotFound, http.StatusNotFound},
		{"insufficient balance", &domain.InsufficientBalanceError{Available: 1, Required: 5}, http.StatusUnprocessableEntity},
		{"supply exceeded", &domain.SupplyExceededError{MaxSupply: 10, Requested: 20}, http.StatusUnprocessableEntity},
		{"reference already used", domain.ErrReferenceAlreadyUsed, http.StatusConflict},
		{"symbol taken", domain.ErrSymbolTaken, http.StatusConflict},
		{"storage failure", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, router := setupRouter(t)

			engine.EXPECT().
				Mint(gomock.Any(), "CRED", domain.Identity("npub1alice"), int64(10), "").
				Return(nil, tt.err)

			w := doRequest(router, http.MethodPost, "/api/v1/tokens/CRED/mint",
				map[string]interface{}{"holder": "npub1alice", "amount": 10}, true)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRedeemRequiresAPIKey(t *testing.T) {
	_, router := setupRouter(t)

	// Bearer token (even a syntactically valid one) is rejected on the redeem route
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tokens/CRED/redeem", bytes.NewBufferString("{}"))
	req.Header.Set("Authorization", "Bearer some-jwt")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateTokenValidation(t *testing.T) {
	_, router := setupRouter(t)

	// missing required fields
	w := doRequest(router, http.MethodPost, "/api/v1/tokens",
		map[string]interface{}{"name": "Community Credit"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
