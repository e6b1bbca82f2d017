package service

import (
	"fmt"
	"time"
	"training_backend/internal/model"
	"training_backend/internal/repository"
)

// GridCells is the fixed size of the month view: 6 rows of 7 days, Monday first.
const GridCells = 42

type CalendarService struct {
	SeanceRepo *repository.SeanceRepository
}

func NewCalendarService(seanceRepo *repository.SeanceRepository) *CalendarService {
	return &CalendarService{SeanceRepo: seanceRepo}
}

// BuildMonthGrid lays out month (1..12) of year as exactly 42 cells:
// trailing days of the previous month, every day of the month, then leading
// days of the next month. All arithmetic is calendar (year, month, day)
// arithmetic in a fixed zone, so the same (year, month) always yields the
// same 42 dates whatever the host timezone or DST rules.
func BuildMonthGrid(year, month int) ([]model.CalendarCell, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month %d out of range 1..12", month)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	startWeekday := (int(first.Weekday()) + 6) % 7 // Monday = 0
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	prevLastDay := time.Date(year, time.Month(month), 0, 0, 0, 0, 0, time.UTC).Day()

	cells := make([]model.CalendarCell, 0, GridCells)

	prevYear, prevMonth := year, month-1
	if prevMonth == 0 {
		prevYear, prevMonth = year-1, 12
	}
	for i := startWeekday - 1; i >= 0; i-- {
		d := prevLastDay - i
		cells = append(cells, model.CalendarCell{
			Date:           isoDate(prevYear, prevMonth, d),
			Day:            d,
			IsCurrentMonth: false,
		})
	}

	for d := 1; d <= lastDay; d++ {
		cells = append(cells, model.CalendarCell{
			Date:           isoDate(year, month, d),
			Day:            d,
			IsCurrentMonth: true,
		})
	}

	nextYear, nextMonth := year, month+1
	if nextMonth == 13 {
		nextYear, nextMonth = year+1, 1
	}
	for d := 1; len(cells) < GridCells; d++ {
		cells = append(cells, model.CalendarCell{
			Date:           isoDate(nextYear, nextMonth, d),
			Day:            d,
			IsCurrentMonth: false,
		})
	}

	return cells, nil
}

func isoDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// GroupSeancesByDate buckets seances by exact date string for O(1) lookup
// per grid cell.
func GroupSeancesByDate(seances []model.Seance) map[string][]model.Seance {
	byDate := make(map[string][]model.Seance)
	for _, s := range seances {
		byDate[s.Date] = append(byDate[s.Date], s)
	}
	return byDate
}

// MonthView builds the grid and fills it with every seance falling inside
// the 42-cell window, padding days included.
func (s *CalendarService) MonthView(year, month int) (*model.CalendarMonth, error) {
	cells, err := BuildMonthGrid(year, month)
	if err != nil {
		return nil, err
	}

	seances, err := s.SeanceRepo.ListByDateRange(cells[0].Date, cells[len(cells)-1].Date)
	if err != nil {
		return nil, err
	}

	return &model.CalendarMonth{
		Year:          year,
		Month:         month,
		Cells:         cells,
		SeancesByDate: GroupSeancesByDate(seances),
	}, nil
}
