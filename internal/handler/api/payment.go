package api

import (
	"errors"
	"net/http"

	reqdto "venuebook/internal/handler/dto/request"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/handler/httperr"
	"venuebook/internal/handler/middleware"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	cmds     commands.SettlementCommands
	attempts queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.SettlementCommands, attempts queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, attempts: attempts}
}

// @Summary Create payment order
// @Description Open a gateway order for an unpaid reservation. A recent open order is reused.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /payments/create-order [post]
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateOrder(c.Request.Context(), req.BookingID, userID, role.String())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, commands.ErrReservationNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errors.Is(err, commands.ErrReservationPaid):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation is already paid", nil)
		case errors.Is(err, commands.ErrGatewayUnavailable):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Payment gateway failure", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderResult(result))
}

// @Summary Verify payment
// @Description Verify the checkout signature and settle the reservation
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyPaymentRequest true "Checkout confirmation"
// @Success 200 {object} resdto.VerifyResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /payments/verify [post]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req reqdto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request format"})
		return
	}

	result, err := h.cmds.VerifyAndSettle(c.Request.Context(), commands.VerifyPaymentInput{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		// The checkout client keys off the success flag, so verify errors
		// carry it in the body instead of the shared error envelope.
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "payment order not found"})
		case errors.Is(err, commands.ErrSignatureMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "signature verification failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettleResult(result))
}

// @Summary List payment attempts for a reservation
// @Description Ledger of gateway attempts, including transfer outcomes
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {array} resdto.AttemptResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /reservations/{id}/payments [get]
func (h *PaymentHandler) ListReservationAttempts(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	items, err := h.attempts.ListByReservation(c.Request.Context(), reservationID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAttemptList(items))
}
