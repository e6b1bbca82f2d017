package service

import (
	"errors"
	"testing"
	"training_backend/internal/model"
	"training_backend/internal/util"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seanceAt(id, start, end string, status model.SeanceStatus) model.Seance {
	s := model.Seance{
		Date:      "2025-06-10",
		StartTime: start,
		EndTime:   end,
		Status:    status,
		Title:     "Session " + id,
	}
	s.ID = id
	return s
}

func TestFindConflictOverlap(t *testing.T) {
	existing := []model.Seance{
		seanceAt("a", "09:00", "10:30", model.SeancePlanned),
		seanceAt("b", "14:00", "15:00", model.SeancePlanned),
	}

	conflict := findConflict(existing, "10:00", "11:00", "")
	require.NotNil(t, conflict)
	assert.Equal(t, "a", conflict.ID)

	conflict = findConflict(existing, "14:30", "16:00", "")
	require.NotNil(t, conflict)
	assert.Equal(t, "b", conflict.ID)
}

func TestFindConflictBackToBackIsFree(t *testing.T) {
	existing := []model.Seance{
		seanceAt("a", "09:00", "10:30", model.SeancePlanned),
	}

	// Sharing a boundary is not a conflict.
	assert.Nil(t, findConflict(existing, "10:30", "11:30", ""))
	assert.Nil(t, findConflict(existing, "08:00", "09:00", ""))
}

func TestFindConflictExcludesSelf(t *testing.T) {
	existing := []model.Seance{
		seanceAt("a", "09:00", "10:30", model.SeancePlanned),
	}

	// Rescheduling within its own window must not collide with itself.
	assert.Nil(t, findConflict(existing, "09:30", "10:00", "a"))
	// But another seance in the way still blocks.
	existing = append(existing, seanceAt("b", "09:45", "11:00", model.SeancePlanned))
	conflict := findConflict(existing, "09:30", "10:00", "a")
	require.NotNil(t, conflict)
	assert.Equal(t, "b", conflict.ID)
}

func TestFindConflictIgnoresCancelled(t *testing.T) {
	existing := []model.Seance{
		seanceAt("a", "09:00", "10:30", model.SeanceCancelled),
		seanceAt("b", "09:00", "10:30", model.SeanceCompleted),
	}

	// A cancelled seance frees its window, a completed one does not.
	conflict := findConflict(existing, "09:30", "10:00", "")
	require.NotNil(t, conflict)
	assert.Equal(t, "b", conflict.ID)
}

func TestFindConflictThreeWay(t *testing.T) {
	existing := []model.Seance{
		seanceAt("a", "08:00", "09:00", model.SeancePlanned),
		seanceAt("b", "09:00", "10:00", model.SeancePlanned),
		seanceAt("c", "10:00", "11:00", model.SeancePlanned),
	}

	// The day is fully booked 08:00-11:00; any window inside collides.
	assert.NotNil(t, findConflict(existing, "08:30", "09:30", ""))
	assert.NotNil(t, findConflict(existing, "09:59", "10:01", ""))
	// Before and after are free.
	assert.Nil(t, findConflict(existing, "07:00", "08:00", ""))
	assert.Nil(t, findConflict(existing, "11:00", "12:00", ""))
}

func TestFindConflictBetweenTwoBookings(t *testing.T) {
	// A morning and a late-morning booking leave a 10:30-11:00 gap; a window
	// straddling the gap collides with both neighbors.
	existing := []model.Seance{
		seanceAt("a", "09:00", "10:30", model.SeancePlanned),
		seanceAt("b", "11:00", "12:00", model.SeancePlanned),
	}

	assert.NotNil(t, findConflict(existing, "10:00", "11:30", ""))
	// The gap itself is free.
	assert.Nil(t, findConflict(existing, "10:30", "11:00", ""))
}

func testSeanceService() *SeanceService {
	return &SeanceService{
		today:    func() string { return "2025-06-10" },
		nowClock: func() string { return "12:00" },
	}
}

func TestValidateWindow(t *testing.T) {
	svc := testSeanceService()

	assert.NoError(t, svc.validateWindow("2025-06-10", "09:00", "10:00"))
	assert.NoError(t, svc.validateWindow("2026-01-01", "09:00", "10:00"))

	// Past date
	err := svc.validateWindow("2025-06-09", "09:00", "10:00")
	assert.True(t, errors.Is(err, util.ErrPastDate))

	// Inverted and zero-length windows
	err = svc.validateWindow("2025-06-10", "10:00", "09:00")
	assert.True(t, errors.Is(err, util.ErrInvalidTimeRange))
	err = svc.validateWindow("2025-06-10", "10:00", "10:00")
	assert.True(t, errors.Is(err, util.ErrInvalidTimeRange))

	// Malformed values
	assert.Error(t, svc.validateWindow("10/06/2025", "09:00", "10:00"))
	assert.Error(t, svc.validateWindow("2025-06-10", "9am", "10:00"))
	assert.Error(t, svc.validateWindow("2025-6-10", "09:00", "10:00"))
}

func TestStripeForStableAndBounded(t *testing.T) {
	svc := testSeanceService()

	a := svc.stripeFor("trainer-1", "2025-06-10")
	b := svc.stripeFor("trainer-1", "2025-06-10")
	assert.Same(t, a, b, "same key must map to the same stripe")

	// Different keys may share a stripe, but the pointer must always come
	// from the fixed pool.
	c := svc.stripeFor("trainer-2", "2025-06-11")
	assert.NotNil(t, c)
}

func TestConflictErrorUnwraps(t *testing.T) {
	err := &util.ConflictError{
		Date:      "2025-06-10",
		StartTime: "09:00",
		EndTime:   "10:30",
		Title:     "Session 1.2",
	}
	assert.True(t, errors.Is(err, util.ErrSchedulingConflict))
	assert.Contains(t, err.Error(), "09:00")
	assert.Contains(t, err.Error(), "Session 1.2")
}

func TestReportRequestBindsWithoutSuggestedDate(t *testing.T) {
	// A trainer may flag a problem without proposing a replacement slot.
	var req ReportRequest
	err := binding.JSON.BindBody([]byte(`{"reason":"trainer ill"}`), &req)
	require.NoError(t, err)
	assert.Equal(t, "trainer ill", req.Reason)
	assert.Empty(t, req.SuggestedDate)

	// The reason itself stays mandatory.
	req = ReportRequest{}
	err = binding.JSON.BindBody([]byte(`{"suggestedDate":"2025-07-01"}`), &req)
	assert.Error(t, err)
}

func TestValidateSuggestedDate(t *testing.T) {
	svc := testSeanceService()

	assert.NoError(t, svc.validateSuggestedDate(""))
	assert.NoError(t, svc.validateSuggestedDate("2025-06-10"))
	assert.NoError(t, svc.validateSuggestedDate("2026-01-01"))

	err := svc.validateSuggestedDate("2025-06-09")
	assert.True(t, errors.Is(err, util.ErrPastDate))

	err = svc.validateSuggestedDate("01/07/2025")
	assert.True(t, errors.Is(err, util.ErrInvalidTimeRange))
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func TestApplySeanceUpdateMovesSlot(t *testing.T) {
	training := &model.Training{Levels: model.DefaultLevels()}
	seance := &model.Seance{
		LevelNumber:   1,
		SessionNumber: 1,
		SessionID:     training.Levels[0].Sessions[0].SessionID,
		Title:         model.DefaultSeanceTitle(training.Levels[0].Sessions[0].Title, 1, 1),
	}

	req := &SeanceUpdateRequest{LevelNumber: intPtr(2), SessionNumber: intPtr(3)}
	require.NoError(t, applySeanceUpdate(seance, req, training))

	assert.Equal(t, 2, seance.LevelNumber)
	assert.Equal(t, 3, seance.SessionNumber)
	assert.Equal(t, training.Levels[1].Sessions[2].SessionID, seance.SessionID)
	// Default title follows the seance to its new slot.
	assert.Contains(t, seance.Title, "2.3")
}

func TestApplySeanceUpdatePartialSlot(t *testing.T) {
	training := &model.Training{Levels: model.DefaultLevels()}
	seance := &model.Seance{
		LevelNumber:   3,
		SessionNumber: 2,
		SessionID:     training.Levels[2].Sessions[1].SessionID,
	}

	// Only the session number changes, the level is kept.
	req := &SeanceUpdateRequest{SessionNumber: intPtr(5)}
	require.NoError(t, applySeanceUpdate(seance, req, training))

	assert.Equal(t, 3, seance.LevelNumber)
	assert.Equal(t, 5, seance.SessionNumber)
	assert.Equal(t, training.Levels[2].Sessions[4].SessionID, seance.SessionID)
}

func TestApplySeanceUpdateExplicitTitleWins(t *testing.T) {
	training := &model.Training{Levels: model.DefaultLevels()}
	seance := &model.Seance{LevelNumber: 1, SessionNumber: 1}

	req := &SeanceUpdateRequest{
		LevelNumber:   intPtr(4),
		SessionNumber: intPtr(6),
		Title:         strPtr("Final review"),
	}
	require.NoError(t, applySeanceUpdate(seance, req, training))
	assert.Equal(t, "Final review", seance.Title)
}

func TestApplySeanceUpdateRejectsBadSlot(t *testing.T) {
	training := &model.Training{Levels: model.DefaultLevels()}
	seance := &model.Seance{LevelNumber: 1, SessionNumber: 1, SessionID: "keep"}

	req := &SeanceUpdateRequest{LevelNumber: intPtr(5)}
	assert.Error(t, applySeanceUpdate(seance, req, training))
	// A rejected move leaves the seance untouched.
	assert.Equal(t, 1, seance.LevelNumber)
	assert.Equal(t, "keep", seance.SessionID)
}

func TestApplySeanceUpdateWindowFields(t *testing.T) {
	seance := &model.Seance{Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00"}

	req := &SeanceUpdateRequest{
		Date:      strPtr("2025-06-12"),
		StartTime: strPtr("14:00"),
		EndTime:   strPtr("15:30"),
	}
	require.NoError(t, applySeanceUpdate(seance, req, nil))

	assert.Equal(t, "2025-06-12", seance.Date)
	assert.Equal(t, "14:00", seance.StartTime)
	assert.Equal(t, "15:30", seance.EndTime)
}
