package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/coworking/internal/domain/model"
	"github.com/polkiloo/coworking/internal/server/http/dto"
)

// BookingHandler manages booking endpoints.
type BookingHandler struct {
	facade BookingFacade
}

// NewBookingHandler constructs BookingHandler.
func NewBookingHandler(facade BookingFacade) *BookingHandler {
	return &BookingHandler{facade: facade}
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	booking, err := h.facade.CreateBooking(c.Request.Context(), CurrentUserID(c), model.BookingRequest{
		UserID:      req.UserID,
		SpaceType:   req.SpaceType,
		SubType:     req.SubType,
		StartDate:   req.StartDate.Time(),
		EndDate:     req.EndDate.Time(),
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(*booking))
}

// ListByUser handles GET /api/bookings/:userId.
func (h *BookingHandler) ListByUser(c *gin.Context) {
	bookings, err := h.facade.Bookings(c.Request.Context(), CurrentUserID(c), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, response)
}

func toBookingResponse(b model.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		SpaceType:   b.SpaceType,
		SubType:     b.SubType,
		StartDate:   dto.Timestamp(b.StartDate),
		EndDate:     dto.Timestamp(b.EndDate),
		TotalAmount: b.TotalAmount,
		CreatedAt:   dto.Timestamp(b.CreatedAt),
	}
}
