package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zenstudio/booking-service/internal/core/domain"
	"github.com/zenstudio/booking-service/internal/logger"
)

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)

	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.auth.Login(ctx, req)
	if err != nil {
		log.Warn().Err(err).Msg("Login failed")
		respondError(c, err)
		return
	}

	log.Info().Int64("user_id", response.ID).Msg("Login successful")
	c.JSON(http.StatusOK, response)
}

// Register handles POST /auth/register.
func (h *Handler) Register(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)

	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.Register(ctx, req); err != nil {
		log.Warn().Err(err).Msg("Registration failed")
		respondError(c, err)
		return
	}

	log.Info().Msg("Registration successful")
	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully!"})
}
