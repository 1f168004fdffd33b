package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListTeachers handles GET /teacher.
func (h *Handler) ListTeachers(c *gin.Context) {
	teachers, err := h.teachers.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	dtos := make([]TeacherDto, 0, len(teachers))
	for i := range teachers {
		dtos = append(dtos, teacherToDto(&teachers[i]))
	}
	c.JSON(http.StatusOK, dtos)
}

// GetTeacher handles GET /teacher/:id.
func (h *Handler) GetTeacher(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	teacher, err := h.teachers.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teacherToDto(teacher))
}
