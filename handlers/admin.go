package handlers

import (
	"errors"
	"net/http"
	"strings"

	"villamar/services/admin"
	"villamar/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the dashboard endpoints.
type AdminHandler struct {
	Gate    *admin.SessionGate
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewAdminHandler(gate *admin.SessionGate, svc booking.BookingService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Gate: gate, Service: svc, Logger: logger}
}

// Login exchanges the shared dashboard password for a session token.
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	token, err := h.Gate.Login(c.Request.Context(), input.Password)
	if err != nil {
		if errors.Is(err, admin.ErrWrongPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong password"})
			return
		}
		h.Logger.Error("failed to create admin session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout ends the current dashboard session.
func (h *AdminHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if err := h.Gate.Logout(c.Request.Context(), token); err != nil {
		h.Logger.Warn("failed to delete admin session", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Stats returns the dashboard aggregates computed over the full booking list.
func (h *AdminHandler) Stats(c *gin.Context) {
	bookings, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to load bookings for stats", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load bookings"})
		return
	}
	c.JSON(http.StatusOK, admin.ComputeStats(bookings))
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}
