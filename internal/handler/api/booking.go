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

var errUnauthenticated = errors.New("missing authenticated user")

type BookingHandler struct {
	cmds         commands.BookingCommands
	requests     queries.RequestQueries
	reservations queries.ReservationQueries
}

func NewBookingHandler(cmds commands.BookingCommands, requests queries.RequestQueries, reservations queries.ReservationQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, requests: requests, reservations: reservations}
}

// @Summary Submit booking request
// @Description Submit a request to reserve a space for an inclusive date range
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitRequestRequest true "Booking request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests [post]
func (h *BookingHandler) SubmitRequest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	result, err := h.cmds.SubmitRequest(c.Request.Context(), input, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSpaceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Space not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"requestId": result.RequestID})
}

// @Summary List own booking requests
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RequestResponse
// @Failure 401 {object} map[string]string
// @Router /requests [get]
func (h *BookingHandler) ListOwnRequests(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	items, err := h.requests.ListByRequester(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestList(items))
}

// @Summary List requests for a space
// @Description List pending requests for a space (owner only)
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Success 200 {array} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spaces/{id}/requests [get]
func (h *BookingHandler) ListSpaceRequests(c *gin.Context) {
	spaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid space ID format", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	items, err := h.requests.ListBySpace(c.Request.Context(), spaceID, actorID, role.String())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrNotSpaceOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusNotFound, err, "Space not found", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestList(items))
}

// @Summary Approve booking request
// @Description Convert a pending request into a reservation; overlapping requests are removed
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 201 {object} resdto.ApproveResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/approve [post]
func (h *BookingHandler) ApproveRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID format", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	result, err := h.cmds.ApproveRequest(c.Request.Context(), requestID, actorID, role.String())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking request not found", nil)
		case errors.Is(err, commands.ErrSpaceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Space not found", nil)
		case errors.Is(err, commands.ErrNotSpaceOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errors.Is(err, commands.ErrSlotAlreadyBooked):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot already booked", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, &resdto.ApproveResponse{
		ReservationID:   result.ReservationID,
		TotalAmount:     result.TotalAmount,
		RemovedRequests: result.RemovedRequests,
	})
}

// @Summary Reject booking request
// @Tags requests
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{id}/reject [post]
func (h *BookingHandler) RejectRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID format", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	if err := h.cmds.RejectRequest(c.Request.Context(), requestID, actorID, role.String()); err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking request not found", nil)
		case errors.Is(err, commands.ErrNotSpaceOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *BookingHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	view, err := h.reservations.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *BookingHandler) ListOwnReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	items, err := h.reservations.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationList(items))
}

// @Summary List reservations for a space
// @Description Booked date ranges for a space, ordered by start date
// @Tags reservations
// @Produce json
// @Param id path string true "Space ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Router /spaces/{id}/reservations [get]
func (h *BookingHandler) ListSpaceReservations(c *gin.Context) {
	spaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid space ID format", nil)
		return
	}

	items, err := h.reservations.ListBySpace(c.Request.Context(), spaceID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationList(items))
}
