package service

import (
	"testing"
	"time"
	"training_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGridMarch2025(t *testing.T) {
	// March 2025 starts on a Saturday, so the grid leads with five
	// trailing days of February.
	cells, err := BuildMonthGrid(2025, 3)
	require.NoError(t, err)
	require.Len(t, cells, GridCells)

	assert.Equal(t, "2025-02-24", cells[0].Date)
	assert.False(t, cells[0].IsCurrentMonth)
	assert.Equal(t, 24, cells[0].Day)

	assert.Equal(t, "2025-03-01", cells[5].Date)
	assert.True(t, cells[5].IsCurrentMonth)

	assert.Equal(t, "2025-03-31", cells[35].Date)
	assert.True(t, cells[35].IsCurrentMonth)

	assert.Equal(t, "2025-04-06", cells[41].Date)
	assert.False(t, cells[41].IsCurrentMonth)
}

func TestBuildMonthGridMondayStart(t *testing.T) {
	// June 2026 starts on a Monday: no leading cells at all.
	cells, err := BuildMonthGrid(2026, 6)
	require.NoError(t, err)
	require.Len(t, cells, GridCells)

	assert.Equal(t, "2026-06-01", cells[0].Date)
	assert.True(t, cells[0].IsCurrentMonth)
	assert.Equal(t, "2026-07-12", cells[41].Date)
}

func TestBuildMonthGridYearBoundaries(t *testing.T) {
	// January pads backward into the previous year.
	jan, err := BuildMonthGrid(2025, 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-12-30", jan[0].Date)

	// December pads forward into the next year.
	dec, err := BuildMonthGrid(2025, 12)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-11", dec[41].Date)
}

func TestBuildMonthGridAlwaysMondayFirst(t *testing.T) {
	for year := 2023; year <= 2027; year++ {
		for month := 1; month <= 12; month++ {
			cells, err := BuildMonthGrid(year, month)
			require.NoError(t, err)
			require.Len(t, cells, GridCells, "%d-%d", year, month)

			first, err := time.Parse("2006-01-02", cells[0].Date)
			require.NoError(t, err)
			assert.Equal(t, time.Monday, first.Weekday(), "%d-%d", year, month)

			// Dates must be consecutive, which string comparison captures
			// because the layout is fixed-width ISO.
			for i := 1; i < len(cells); i++ {
				assert.Greater(t, cells[i].Date, cells[i-1].Date)
			}
		}
	}
}

func TestBuildMonthGridDeterministic(t *testing.T) {
	a, err := BuildMonthGrid(2025, 7)
	require.NoError(t, err)
	b, err := BuildMonthGrid(2025, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildMonthGridRejectsBadMonth(t *testing.T) {
	_, err := BuildMonthGrid(2025, 0)
	assert.Error(t, err)
	_, err = BuildMonthGrid(2025, 13)
	assert.Error(t, err)
}

func TestGroupSeancesByDate(t *testing.T) {
	seances := []model.Seance{
		{Date: "2025-03-10", StartTime: "09:00"},
		{Date: "2025-03-10", StartTime: "14:00"},
		{Date: "2025-03-12", StartTime: "10:00"},
	}
	byDate := GroupSeancesByDate(seances)

	require.Len(t, byDate, 2)
	assert.Len(t, byDate["2025-03-10"], 2)
	assert.Len(t, byDate["2025-03-12"], 1)
	_, ok := byDate["2025-03-11"]
	assert.False(t, ok)
}
