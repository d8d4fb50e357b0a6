package handlers

import (
	"errors"
	"fmt"
	"net/http"

	bookingRepo "villamar/database/repository/booking"
	"villamar/models"
	"villamar/services/booking"
	"villamar/services/contract"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bookingFailureMessage is shown for both store and notification failures.
// The client must not be able to tell the two causes apart.
const bookingFailureMessage = "Something went wrong submitting the booking. Please try again."

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking runs the submission workflow for a guest booking form.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "validation failed",
				"fields": vErr.Fields,
			})
			return
		}
		// Store failure and notification failure deliberately collapse into
		// one generic, retryable message.
		h.Logger.Error("booking submission failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": bookingFailureMessage})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListBookings returns every booking, newest first.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// GetBookingContract streams the booking contract PDF.
func (h *BookingHandler) GetBookingContract(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		h.Logger.Error("failed to load booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load booking"})
		return
	}

	data, filename, err := contract.BuildBookingPDF(*b)
	if err != nil {
		h.Logger.Error("failed to build contract PDF", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate contract"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// UpdateBookingStatus confirms or cancels a booking.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !models.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	if err := h.Service.UpdateStatus(c.Request.Context(), id, input.Status); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		h.Logger.Error("failed to update booking status", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to update booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": input.Status})
}
