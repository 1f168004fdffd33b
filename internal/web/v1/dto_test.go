package v1

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/zenstudio/booking-service/internal/core/domain"
)

func TestSessionToDto(t *testing.T) {
	teacherID := int64(3)
	s := &domain.Session{
		ID:          1,
		Name:        "Morning Yoga",
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Description: "A relaxing session",
		TeacherID:   &teacherID,
		Users: []domain.User{
			{ID: 2, Email: "user2@example.com"},
			{ID: 1, Email: "user1@example.com"},
		},
	}

	dto := sessionToDto(s)

	if dto.ID != 1 || dto.Name != "Morning Yoga" {
		t.Errorf("unexpected dto: %+v", dto)
	}
	if dto.Date != "2026-09-01" {
		t.Errorf("expected date 2026-09-01, got %q", dto.Date)
	}
	if dto.TeacherID == nil || *dto.TeacherID != 3 {
		t.Errorf("expected teacher_id 3, got %v", dto.TeacherID)
	}
	// Order must be preserved, by id only.
	if len(dto.Users) != 2 || dto.Users[0] != 2 || dto.Users[1] != 1 {
		t.Errorf("expected users [2 1], got %v", dto.Users)
	}
}

func TestSessionToDto_NilTeacher(t *testing.T) {
	dto := sessionToDto(&domain.Session{ID: 1, Name: "Solo"})

	if dto.TeacherID != nil {
		t.Errorf("expected nil teacher_id, got %v", dto.TeacherID)
	}

	raw, err := json.Marshal(dto)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"teacher_id":null`) {
		t.Errorf("absent teacher must serialize as null, got %s", raw)
	}
}

func TestSessionToDto_EmptyParticipants(t *testing.T) {
	dto := sessionToDto(&domain.Session{ID: 1, Name: "Empty"})

	if dto.Users == nil {
		t.Fatal("users must never be nil")
	}

	raw, err := json.Marshal(dto)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"users":[]`) {
		t.Errorf("empty participants must serialize as [], got %s", raw)
	}
}

func TestSessionFromRequest(t *testing.T) {
	teacherID := int64(7)
	s, err := sessionFromRequest(SessionRequest{
		Name:      "Evening Yoga",
		Date:      "2026-10-02",
		TeacherID: &teacherID,
		Users:     []int64{4, 5},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s.Date.Format("2006-01-02") != "2026-10-02" {
		t.Errorf("unexpected date: %v", s.Date)
	}
	if len(s.Users) != 2 || s.Users[0].ID != 4 || s.Users[1].ID != 5 {
		t.Errorf("unexpected users: %+v", s.Users)
	}
}

func TestSessionFromRequest_BadDate(t *testing.T) {
	_, err := sessionFromRequest(SessionRequest{Name: "X", Date: "02/10/2026"})
	if err == nil {
		t.Error("expected an error for a malformed date")
	}
}
