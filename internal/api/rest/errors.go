package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/civicstack/token-ledger/internal/api/shared/errors"
	"github.com/civicstack/token-ledger/internal/domain"
	"github.com/civicstack/token-ledger/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondLedgerError translates a ledger error into the matching HTTP response.
// Validation failures map to 400, unknown tokens to 404, business rule
// rejections (overdraw, ceiling) to 422, uniqueness races to 409, and anything
// unrecognized to 500.
func respondLedgerError(c *gin.Context, err error) {
	var insufficientErr *domain.InsufficientBalanceError
	var supplyErr *domain.SupplyExceededError

	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidIdentity),
		errors.Is(err, domain.ErrInvalidTxRef):
		c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError("Invalid request", err.Error()))

	case errors.Is(err, domain.ErrTokenNotFound):
		c.JSON(http.StatusNotFound, apierrors.NewNotFoundError("Token not found", err.Error()))

	case errors.As(err, &insufficientErr), errors.As(err, &supplyErr):
		c.JSON(http.StatusUnprocessableEntity, apierrors.NewUnprocessableError("Ledger rule violated", err.Error()))

	case errors.Is(err, domain.ErrSymbolTaken),
		errors.Is(err, domain.ErrReferenceAlreadyUsed),
		errors.Is(err, domain.ErrEntryAlreadySpent),
		errors.Is(err, domain.ErrEntryReserved):
		c.JSON(http.StatusConflict, apierrors.NewConflictError("Conflict", err.Error()))

	default:
		logger.ErrorCtx(c.Request.Context(), err)
		c.JSON(http.StatusInternalServerError, apierrors.NewInternalError("Internal server error"))
	}
}
