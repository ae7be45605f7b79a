package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"stayhub/internal/bookings/service"
	httputil "stayhub/pkg/http"
	"stayhub/pkg/logger"
	"stayhub/pkg/middleware"
	"stayhub/pkg/model"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// CreateBookingRequest deliberately has no guest field. The guest is the
// authenticated caller; a guest value in the request body is ignored by
// construction.
type CreateBookingRequest struct {
	Listing          string    `json:"listing"`
	CheckIn          time.Time `json:"check_in"`
	CheckOut         time.Time `json:"check_out"`
	NumberOfAdults   int       `json:"number_of_adults"`
	NumberOfChildren int       `json:"number_of_children"`
	TotalPrice       float64   `json:"total_price"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	booking := model.Booking{
		Listing:          req.Listing,
		CheckIn:          req.CheckIn,
		CheckOut:         req.CheckOut,
		NumberOfAdults:   req.NumberOfAdults,
		NumberOfChildren: req.NumberOfChildren,
		TotalPrice:       req.TotalPrice,
	}

	guestID := middleware.UserIDFrom(r.Context())
	if err := h.service.Create(r.Context(), &booking, guestID); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) GetMine(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	guestID := middleware.UserIDFrom(r.Context())

	bookings, err := h.service.GetForGuest(r.Context(), guestID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetMine", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "GetMine", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	booking, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) GetMineForListing(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	listingID := ps.ByName("id")
	guestID := middleware.UserIDFrom(r.Context())

	bookings, err := h.service.GetForGuestOnListing(r.Context(), guestID, listingID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetMineForListing", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "GetMineForListing", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) GetReservations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ownerID := middleware.UserIDFrom(r.Context())

	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetReservations", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	reservations, err := h.service.GetReservations(r.Context(), ownerID, limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetReservations", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, reservations, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetReservations", "operation", "WritePaginated", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings", h.GetMine)
	router.GET("/api/v1/bookings/id/:id", h.GetByID)
	router.GET("/api/v1/bookings/listing/:id", h.GetMineForListing)
	router.GET("/api/v1/reservations", h.GetReservations)
}
