package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/civicstack/token-ledger/internal/api/rest/dto"
	"github.com/civicstack/token-ledger/internal/domain"
	"github.com/civicstack/token-ledger/internal/ledger"
	"github.com/civicstack/token-ledger/internal/store/schema"
)

const defaultEntryLimit = 100

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateToken registers a new token
	// POST /api/v1/tokens
	CreateToken(c *gin.Context)

	// ListTokens retrieves tokens, optionally filtered by creator
	// GET /api/v1/tokens?creator=<identity>
	ListTokens(c *gin.Context)

	// GetToken retrieves a single token by id or symbol
	// GET /api/v1/tokens/:token
	GetToken(c *gin.Context)

	// ListEntries retrieves a token's ledger entries, newest first
	// GET /api/v1/tokens/:token/entries?limit=<limit>
	ListEntries(c *gin.Context)

	// GetBalance retrieves one holder's balance on a token
	// GET /api/v1/tokens/:token/balances/:identity
	GetBalance(c *gin.Context)

	// Mint credits newly issued tokens to a holder
	// POST /api/v1/tokens/:token/mint
	Mint(c *gin.Context)

	// Burn removes tokens from a holder's balance
	// POST /api/v1/tokens/:token/burn
	Burn(c *gin.Context)

	// Transfer moves custodially held balance between two holders
	// POST /api/v1/tokens/:token/transfer
	Transfer(c *gin.Context)

	// PrepareTransfer reserves unspent entries for an externally signed transfer
	// POST /api/v1/tokens/:token/transfers/prepare
	PrepareTransfer(c *gin.Context)

	// ConfirmTransfer applies an externally signed transfer
	// POST /api/v1/tokens/:token/transfers/confirm
	ConfirmTransfer(c *gin.Context)

	// CancelTransfer releases a transfer plan's reservation
	// DELETE /api/v1/transfers/:reservation_id
	CancelTransfer(c *gin.Context)

	// Redeem consumes an external payment reference and mints the granted tokens
	// POST /api/v1/tokens/:token/redeem
	Redeem(c *gin.Context)

	// ListHoldings retrieves a holder's balances across all tokens
	// GET /api/v1/holders/:identity/tokens
	ListHoldings(c *gin.Context)

	// GetReference reports whether an external payment reference was consumed
	// GET /api/v1/references/:ref
	GetReference(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	engine ledger.Service
}

// NewHandler creates a new REST API handler backed by the ledger engine
func NewHandler(engine ledger.Service) Handler {
	return &handler{
		engine: engine,
	}
}

// CreateToken registers a new token
func (h *handler) CreateToken(c *gin.Context) {
	var req dto.CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	creator, err := domain.NewIdentity(req.Creator)
	if err != nil {
		respondBadRequest(c, "Invalid creator identity", err.Error())
		return
	}

	token, err := h.engine.CreateToken(c.Request.Context(), ledger.CreateTokenInput{
		Name:          req.Name,
		Symbol:        req.Symbol,
		Decimals:      req.Decimals,
		MaxSupply:     req.MaxSupply,
		InitialSupply: req.InitialSupply,
		Creator:       creator,
		Metadata:      req.Metadata,
	})
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTokenResponse(token))
}

// ListTokens retrieves tokens, optionally filtered by creator
func (h *handler) ListTokens(c *gin.Context) {
	var (
		tokens []*schema.Token
		err    error
	)
	if creator := c.Query("creator"); creator != "" {
		identity, idErr := domain.NewIdentity(creator)
		if idErr != nil {
			respondBadRequest(c, "Invalid creator identity", idErr.Error())
			return
		}
		tokens, err = h.engine.GetTokensByCreator(c.Request.Context(), identity)
	} else {
		tokens, err = h.engine.GetAllTokens(c.Request.Context())
	}
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	responses := make([]dto.TokenResponse, 0, len(tokens))
	for _, token := range tokens {
		responses = append(responses, dto.NewTokenResponse(token))
	}
	c.JSON(http.StatusOK, gin.H{"tokens": responses})
}

// GetToken retrieves a single token by id or symbol
func (h *handler) GetToken(c *gin.Context) {
	token, err := h.engine.GetToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTokenResponse(token))
}

// ListEntries retrieves a token's ledger entries, newest first
func (h *handler) ListEntries(c *gin.Context) {
	limit := defaultEntryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondBadRequest(c, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	entries, err := h.engine.GetTokenEntries(c.Request.Context(), c.Param("token"), limit)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	responses := make([]dto.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.NewEntryResponse(entry))
	}
	c.JSON(http.StatusOK, gin.H{"entries": responses})
}

// GetBalance retrieves one holder's balance on a token
func (h *handler) GetBalance(c *gin.Context) {
	holder, err := domain.NewIdentity(c.Param("identity"))
	if err != nil {
		respondBadRequest(c, "Invalid holder identity", err.Error())
		return
	}

	tokenParam := c.Param("token")
	token, err := h.engine.GetToken(c.Request.Context(), tokenParam)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	balance, err := h.engine.GetBalance(c.Request.Context(), token.ID, holder)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		TokenID: token.ID,
		Holder:  holder.String(),
		Balance: balance,
	})
}

// Mint credits newly issued tokens to a holder
func (h *handler) Mint(c *gin.Context) {
	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	holder, err := domain.NewIdentity(req.Holder)
	if err != nil {
		respondBadRequest(c, "Invalid holder identity", err.Error())
		return
	}

	outcome, err := h.engine.Mint(c.Request.Context(), c.Param("token"), holder, req.Amount, req.Notes)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MutationResponse{
		TokenID:     outcome.Token.ID,
		EntryID:     outcome.EntryID,
		Balance:     outcome.Balance,
		ExternalRef: outcome.ExternalRef,
	})
}

// Burn removes tokens from a holder's balance
func (h *handler) Burn(c *gin.Context) {
	var req dto.BurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	holder, err := domain.NewIdentity(req.Holder)
	if err != nil {
		respondBadRequest(c, "Invalid holder identity", err.Error())
		return
	}

	outcome, err := h.engine.Burn(c.Request.Context(), c.Param("token"), holder, req.Amount, req.Notes)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MutationResponse{
		TokenID:     outcome.Token.ID,
		EntryID:     outcome.EntryID,
		Balance:     outcome.Balance,
		ExternalRef: outcome.ExternalRef,
	})
}

// Transfer moves custodially held balance between two holders
func (h *handler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	sender, err := domain.NewIdentity(req.From)
	if err != nil {
		respondBadRequest(c, "Invalid sender identity", err.Error())
		return
	}
	recipient, err := domain.NewIdentity(req.To)
	if err != nil {
		respondBadRequest(c, "Invalid recipient identity", err.Error())
		return
	}

	outcome, err := h.engine.ExecuteTransfer(c.Request.Context(), c.Param("token"), sender, recipient, req.Amount, req.Notes)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransferResponse{
		TokenID:          outcome.Token.ID,
		EntryID:          outcome.EntryID,
		SenderBalance:    outcome.SenderBalance,
		RecipientBalance: outcome.RecipientBalance,
		ExternalRef:      outcome.ExternalRef,
	})
}

// PrepareTransfer reserves unspent entries for an externally signed transfer
func (h *handler) PrepareTransfer(c *gin.Context) {
	var req dto.PrepareTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	sender, err := domain.NewIdentity(req.From)
	if err != nil {
		respondBadRequest(c, "Invalid sender identity", err.Error())
		return
	}
	recipient, err := domain.NewIdentity(req.To)
	if err != nil {
		respondBadRequest(c, "Invalid recipient identity", err.Error())
		return
	}

	plan, err := h.engine.PrepareTransfer(c.Request.Context(), c.Param("token"), sender, recipient, req.Amount)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	inputs := make([]dto.EntryResponse, 0, len(plan.Inputs))
	for _, entry := range plan.Inputs {
		inputs = append(inputs, dto.NewEntryResponse(entry))
	}
	c.JSON(http.StatusOK, dto.TransferPlanResponse{
		ReservationID: plan.ReservationID,
		Inputs:        inputs,
		InputTotal:    plan.InputTotal,
		ChangeAmount:  plan.ChangeAmount,
	})
}

// ConfirmTransfer applies an externally signed transfer
func (h *handler) ConfirmTransfer(c *gin.Context) {
	var req dto.ConfirmTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	txRef, err := domain.NewTxRef(req.ExternalTxRef)
	if err != nil {
		respondBadRequest(c, "Invalid external transaction reference", err.Error())
		return
	}

	outputs := make([]ledger.TransferOutput, 0, len(req.Outputs))
	for _, out := range req.Outputs {
		recipient, idErr := domain.NewIdentity(out.Recipient)
		if idErr != nil {
			respondBadRequest(c, "Invalid recipient identity", idErr.Error())
			return
		}
		outputs = append(outputs, ledger.TransferOutput{
			Recipient: recipient,
			Amount:    out.Amount,
		})
	}

	err = h.engine.ConfirmTransfer(c.Request.Context(), c.Param("token"), txRef, req.InputIDs, outputs, req.ReservationID)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "confirmed"})
}

// CancelTransfer releases a transfer plan's reservation
func (h *handler) CancelTransfer(c *gin.Context) {
	reservationID := c.Param("reservation_id")
	if reservationID == "" {
		respondBadRequest(c, "Reservation id is required")
		return
	}

	if err := h.engine.CancelTransfer(c.Request.Context(), reservationID); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// Redeem consumes an external payment reference and mints the granted tokens
func (h *handler) Redeem(c *gin.Context) {
	var req dto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	payer, err := domain.NewIdentity(req.Payer)
	if err != nil {
		respondBadRequest(c, "Invalid payer identity", err.Error())
		return
	}
	externalRef, err := domain.NewTxRef(req.ExternalRef)
	if err != nil {
		respondBadRequest(c, "Invalid external payment reference", err.Error())
		return
	}

	outcome, err := h.engine.RedeemExternalPayment(c.Request.Context(), ledger.RedeemInput{
		TokenIDOrSymbol: c.Param("token"),
		Payer:           payer,
		ExternalRef:     externalRef,
		AmountReceived:  req.AmountReceived,
		TokensGranted:   req.TokensGranted,
		Notes:           req.Notes,
	})
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MutationResponse{
		TokenID:     outcome.Token.ID,
		EntryID:     outcome.EntryID,
		Balance:     outcome.Balance,
		ExternalRef: outcome.ExternalRef,
	})
}

// ListHoldings retrieves a holder's balances across all tokens
func (h *handler) ListHoldings(c *gin.Context) {
	holder, err := domain.NewIdentity(c.Param("identity"))
	if err != nil {
		respondBadRequest(c, "Invalid holder identity", err.Error())
		return
	}

	holdings, err := h.engine.GetHolderTokens(c.Request.Context(), holder)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	responses := make([]dto.HoldingResponse, 0, len(holdings))
	for _, holding := range holdings {
		responses = append(responses, dto.HoldingResponse{
			Token:   dto.NewTokenResponse(holding.Token),
			Balance: holding.Balance,
		})
	}
	c.JSON(http.StatusOK, gin.H{"holdings": responses})
}

// GetReference reports whether an external payment reference was consumed
func (h *handler) GetReference(c *gin.Context) {
	ref, err := domain.NewTxRef(c.Param("ref"))
	if err != nil {
		respondBadRequest(c, "Invalid external payment reference", err.Error())
		return
	}

	used, err := h.engine.IsReferenceUsed(c.Request.Context(), ref)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReferenceResponse{
		ExternalRef: ref.String(),
		Used:        used,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
