// Package v1 exposes the HTTP surface for API version 1: auth,
// sessions (including participation), users and teachers.
package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	logicv1 "github.com/zenstudio/booking-service/internal/logic/v1"
)

// Handler groups the HTTP handlers for API v1. Dependencies are
// injected via the constructor; there is no global state.
type Handler struct {
	auth     *logicv1.AuthService
	tokens   *logicv1.TokenService
	sessions *logicv1.SessionService
	users    *logicv1.UserService
	teachers *logicv1.TeacherService
}

// NewHandler creates a new Handler.
func NewHandler(
	auth *logicv1.AuthService,
	tokens *logicv1.TokenService,
	sessions *logicv1.SessionService,
	users *logicv1.UserService,
	teachers *logicv1.TeacherService,
) *Handler {
	return &Handler{
		auth:     auth,
		tokens:   tokens,
		sessions: sessions,
		users:    users,
		teachers: teachers,
	}
}

// RegisterRoutes registers all v1 routes on the given group. Everything
// except login/register sits behind bearer auth.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/register", h.Register)

	authed := rg.Group("", RequireAuth(h.tokens, h.auth))
	{
		authed.GET("/session", h.ListSessions)
		authed.GET("/session/:id", h.GetSession)
		authed.POST("/session", h.CreateSession)
		authed.PUT("/session/:id", h.UpdateSession)
		authed.DELETE("/session/:id", h.DeleteSession)
		authed.POST("/session/:id/participate/:userId", h.JoinSession)
		authed.DELETE("/session/:id/participate/:userId", h.LeaveSession)

		authed.GET("/teacher", h.ListTeachers)
		authed.GET("/teacher/:id", h.GetTeacher)

		authed.GET("/user/:id", h.GetUser)
		authed.DELETE("/user/:id", h.DeleteUser)
	}
}

// parseID parses a numeric path parameter. Malformed ids are rejected
// here, before any store access.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// respondError maps sentinel errors from the logic layer to HTTP
// statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, logicv1.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, logicv1.ErrAlreadyParticipating):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already participating"})
	case errors.Is(err, logicv1.ErrNotParticipating):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not participating"})
	case errors.Is(err, logicv1.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error: Email is already taken!"})
	case errors.Is(err, logicv1.ErrForbidden):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, logicv1.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
