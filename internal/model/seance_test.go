package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeanceStatusTransitions(t *testing.T) {
	cases := []struct {
		from    SeanceStatus
		to      SeanceStatus
		allowed bool
	}{
		{SeancePlanned, SeanceInProgress, true},
		{SeancePlanned, SeanceReported, true},
		{SeancePlanned, SeanceCancelled, true},
		{SeancePlanned, SeanceCompleted, false},
		{SeanceInProgress, SeanceCompleted, true},
		{SeanceInProgress, SeanceCancelled, false},
		{SeanceInProgress, SeancePlanned, false},
		{SeanceCompleted, SeancePlanned, false},
		{SeanceCompleted, SeanceInProgress, false},
		{SeanceReported, SeancePlanned, false},
		{SeanceReported, SeanceInProgress, false},
		{SeanceCancelled, SeancePlanned, false},
		{SeanceCancelled, SeanceInProgress, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to),
			"%s -> %s", c.from, c.to)
	}
}

func TestSeanceStatusValid(t *testing.T) {
	assert.True(t, SeancePlanned.Valid())
	assert.True(t, SeanceCancelled.Valid())
	assert.False(t, SeanceStatus("DONE").Valid())
	assert.False(t, SeanceStatus("").Valid())
}

func TestSeanceOverlaps(t *testing.T) {
	booked := &Seance{StartTime: "09:00", EndTime: "10:30"}

	// Proper overlaps
	assert.True(t, booked.Overlaps("09:30", "10:00"))
	assert.True(t, booked.Overlaps("08:00", "09:01"))
	assert.True(t, booked.Overlaps("10:29", "11:00"))
	assert.True(t, booked.Overlaps("08:00", "12:00"))

	// Half-open: touching windows do not collide
	assert.False(t, booked.Overlaps("10:30", "11:30"))
	assert.False(t, booked.Overlaps("08:00", "09:00"))

	// Disjoint
	assert.False(t, booked.Overlaps("11:00", "12:00"))
}

func TestDefaultSeanceTitle(t *testing.T) {
	assert.Equal(t, "Rhythm basics 2.5", DefaultSeanceTitle("Rhythm basics", 2, 5))
	assert.Equal(t, "Session 1.1", DefaultSeanceTitle("", 1, 1))
}
