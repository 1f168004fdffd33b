package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zenstudio/booking-service/internal/logger"
	logicv1 "github.com/zenstudio/booking-service/internal/logic/v1"
)

// GetUser handles GET /user/:id.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToDto(user))
}

// DeleteUser handles DELETE /user/:id. Only the account owner or an
// admin may delete an account.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	principal, ok := currentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := logicv1.AuthorizeSelfOrAdmin(principal, id); err != nil {
		respondError(c, err)
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	logger.FromContext(c.Request.Context()).Info().
		Int64("user_id", id).
		Int64("principal_id", principal.ID).
		Msg("User deleted")
	c.JSON(http.StatusOK, gin.H{})
}
