package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceStatusValid(t *testing.T) {
	assert.True(t, AttendancePresent.Valid())
	assert.True(t, AttendanceAbsent.Valid())
	assert.True(t, AttendanceExcused.Valid())
	assert.False(t, AttendanceStatus("LATE").Valid())
}

func TestCountsAsAttended(t *testing.T) {
	assert.True(t, AttendancePresent.CountsAsAttended())
	assert.True(t, AttendanceExcused.CountsAsAttended())
	assert.False(t, AttendanceAbsent.CountsAsAttended())
}
