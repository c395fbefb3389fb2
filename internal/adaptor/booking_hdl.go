package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetBooking handles GET /booking
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	booking, err := h.service.GetBooking(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CreateBooking handles POST /booking
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req, ok := h.decodeBookingRequest(w, r)
	if !ok {
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), userID, req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", response.BookingIDResponse{BookingID: booking.ID})
}

// ChangeBooking handles PUT /booking/{bookingId}
func (h *BookingHandler) ChangeBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID, ok := utils.ParseID(chi.URLParam(r, "bookingId"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	req, ok := h.decodeBookingRequest(w, r)
	if !ok {
		return
	}

	booking, err := h.service.ChangeBooking(r.Context(), userID, bookingID, req)
	if err != nil {
		h.handleServiceError(w, err, "change booking")
		return
	}

	utils.ResponseSuccess(w, "success", response.BookingIDResponse{BookingID: booking.ID})
}

func (h *BookingHandler) decodeBookingRequest(w http.ResponseWriter, r *http.Request) (*request.BookingRequest, bool) {
	var req request.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return nil, false
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Debug("Booking request validation failed",
			zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return nil, false
	}

	return &req, true
}

// handleServiceError maps failure kinds to status codes. The service has
// already logged the failure.
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	kind, ok := usecase.KindOf(err)
	if !ok {
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	switch kind {
	case usecase.KindNotFound,
		usecase.KindEnrollmentNotFound,
		usecase.KindTicketNotFound:
		utils.ResponseNotFound(w, err.Error())

	case usecase.KindInvalidTicket,
		usecase.KindRoomOutOfCapacity,
		usecase.KindUserHasNotBooked,
		usecase.KindUserAlreadyBooked:
		utils.ResponseForbidden(w, err.Error())

	default:
		h.log.Error("Unmapped booking failure",
			zap.String("kind", string(kind)),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
