package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zenstudio/booking-service/internal/logger"
)

// ListSessions handles GET /session.
func (h *Handler) ListSessions(c *gin.Context) {
	sessions, err := h.sessions.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	dtos := make([]SessionDto, 0, len(sessions))
	for i := range sessions {
		dtos = append(dtos, sessionToDto(&sessions[i]))
	}
	c.JSON(http.StatusOK, dtos)
}

// GetSession handles GET /session/:id.
func (h *Handler) GetSession(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	session, err := h.sessions.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionToDto(session))
}

// CreateSession handles POST /session.
func (h *Handler) CreateSession(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := sessionFromRequest(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	created, err := h.sessions.Create(c.Request.Context(), session)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.FromContext(c.Request.Context()).Info().Int64("session_id", created.ID).Msg("Session created")
	c.JSON(http.StatusOK, sessionToDto(created))
}

// UpdateSession handles PUT /session/:id.
func (h *Handler) UpdateSession(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := sessionFromRequest(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	updated, err := h.sessions.Update(c.Request.Context(), id, session)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionToDto(updated))
}

// DeleteSession handles DELETE /session/:id.
func (h *Handler) DeleteSession(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.sessions.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// JoinSession handles POST /session/:id/participate/:userId.
func (h *Handler) JoinSession(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	if err := h.sessions.Join(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}

	logger.FromContext(c.Request.Context()).Info().
		Int64("session_id", id).
		Int64("user_id", userID).
		Msg("User joined session")
	c.JSON(http.StatusOK, gin.H{})
}

// LeaveSession handles DELETE /session/:id/participate/:userId.
func (h *Handler) LeaveSession(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	if err := h.sessions.Leave(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}

	logger.FromContext(c.Request.Context()).Info().
		Int64("session_id", id).
		Int64("user_id", userID).
		Msg("User left session")
	c.JSON(http.StatusOK, gin.H{})
}
