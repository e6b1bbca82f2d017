package model

// CalendarCell is one slot of the fixed 6x7 month grid.
type CalendarCell struct {
	Date           string `json:"date"` // ISO YYYY-MM-DD
	Day            int    `json:"day"`
	IsCurrentMonth bool   `json:"isCurrentMonth"`
}

// CalendarMonth is the month view: exactly 42 cells, Monday first,
// with seances bucketed by exact date string.
type CalendarMonth struct {
	Year          int                 `json:"year"`
	Month         int                 `json:"month"`
	Cells         []CalendarCell      `json:"cells"`
	SeancesByDate map[string][]Seance `json:"seancesByDate"`
}
