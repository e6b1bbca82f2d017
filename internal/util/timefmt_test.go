package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2025-06-10"))
	assert.True(t, ValidDate("2024-02-29"))

	assert.False(t, ValidDate("2025-13-01"))
	assert.False(t, ValidDate("2025-02-30"))
	assert.False(t, ValidDate("2025-6-10"))
	assert.False(t, ValidDate("10/06/2025"))
	assert.False(t, ValidDate(""))
}

func TestValidClock(t *testing.T) {
	assert.True(t, ValidClock("00:00"))
	assert.True(t, ValidClock("09:30"))
	assert.True(t, ValidClock("23:59"))

	assert.False(t, ValidClock("24:00"))
	assert.False(t, ValidClock("9:30"))
	assert.False(t, ValidClock("09:60"))
	assert.False(t, ValidClock(""))
}
