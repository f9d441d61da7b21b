package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dormdine/dormdine/internal/adapter/payment"
	domainErrors "github.com/dormdine/dormdine/internal/domain/errors"
	"github.com/dormdine/dormdine/internal/domain/model"
	"github.com/dormdine/dormdine/internal/server/http/dto"
)

// PaymentHandler manages gateway intents and cart settlement.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// CreateIntent handles POST /api/create-payment-intent.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req dto.IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	secret, err := h.facade.CreateIntent(c.Request.Context(), req.Amount, req.Currency)
	if err != nil {
		var rateLimited payment.TooManyRequestsError
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount), errors.Is(err, payment.ErrGatewayRejected):
			c.Status(http.StatusBadRequest)
		case errors.As(err, &rateLimited):
			c.Header("Retry-After", strconv.Itoa(int(rateLimited.RetryAfter.Seconds())))
			c.Status(http.StatusTooManyRequests)
		default:
			c.Status(http.StatusBadGateway)
		}
		return
	}
	c.JSON(http.StatusOK, dto.IntentResponse{ClientSecret: secret})
}

// Settle handles POST /api/payments. The payment record is written before
// cart items are removed; both outcomes are reported so a partially applied
// settlement is visible to the caller.
func (h *PaymentHandler) Settle(c *gin.Context) {
	var req dto.SettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	ids := make([]model.CartItemID, 0, len(req.CartItemIDs))
	for _, id := range req.CartItemIDs {
		ids = append(ids, model.CartItemID(id))
	}

	result, err := h.facade.Settle(c.Request.Context(), CurrentEmail(c), req.Amount, ids)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation), errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.SettlementResponse{
		PaymentID:    int64(result.PaymentID),
		DeletedCount: result.DeletedCount,
	})
}

// History handles GET /api/payments.
func (h *PaymentHandler) History(c *gin.Context) {
	payments, err := h.facade.Payments(c.Request.Context(), CurrentEmail(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		resp = append(resp, toPaymentResponse(&payments[i]))
	}
	c.JSON(http.StatusOK, resp)
}
