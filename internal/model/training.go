package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

const (
	LevelsPerTraining   = 4
	SessionsPerLevel    = 6
	SessionsPerTraining = LevelsPerTraining * SessionsPerLevel
)

// Session is one of the 6 fixed units of instruction inside a Level.
// It is a template, not a calendar event.
type Session struct {
	SessionID     string `json:"sessionId"`
	SessionNumber int    `json:"sessionNumber"`
	Title         string `json:"title,omitempty"`
}

// Level is one of the 4 fixed stages of a Training.
type Level struct {
	LevelNumber int       `json:"levelNumber"`
	Title       string    `json:"title,omitempty"`
	Sessions    []Session `json:"sessions"`
}

// Levels is the persisted 4x6 structure, stored as a JSON column.
type Levels []Level

func (l Levels) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Levels) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Levels", value)
	}
}

// swagger:model Training
type Training struct {
	UUIDBase
	Title       string `gorm:"size:200;not null;index" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Levels      Levels `gorm:"type:json" json:"levels"`
}

func (Training) TableName() string {
	return "trainings"
}

// DefaultLevels builds the standard 4 levels x 6 sessions layout with
// freshly generated stable session ids.
func DefaultLevels() Levels {
	levels := make(Levels, 0, LevelsPerTraining)
	for l := 1; l <= LevelsPerTraining; l++ {
		sessions := make([]Session, 0, SessionsPerLevel)
		for s := 1; s <= SessionsPerLevel; s++ {
			sessions = append(sessions, Session{
				SessionID:     uuid.New().String(),
				SessionNumber: s,
				Title:         fmt.Sprintf("Session %d", s),
			})
		}
		levels = append(levels, Level{
			LevelNumber: l,
			Title:       fmt.Sprintf("Level %d", l),
			Sessions:    sessions,
		})
	}
	return levels
}

// ResolveSession returns the session template at (levelNumber, sessionNumber),
// both 1-based.
func (t *Training) ResolveSession(levelNumber, sessionNumber int) (*Session, error) {
	if levelNumber < 1 || levelNumber > len(t.Levels) {
		return nil, fmt.Errorf("level %d out of range 1..%d", levelNumber, len(t.Levels))
	}
	level := t.Levels[levelNumber-1]
	if sessionNumber < 1 || sessionNumber > len(level.Sessions) {
		return nil, fmt.Errorf("session %d out of range 1..%d in level %d", sessionNumber, len(level.Sessions), levelNumber)
	}
	return &level.Sessions[sessionNumber-1], nil
}

// TotalSessions counts the session templates across all levels.
func (t *Training) TotalSessions() int {
	n := 0
	for _, level := range t.Levels {
		n += len(level.Sessions)
	}
	return n
}

// FlatSession is a flattened view of one session template with its level context.
type FlatSession struct {
	SessionID     string `json:"sessionId"`
	LevelNumber   int    `json:"levelNumber"`
	LevelTitle    string `json:"levelTitle,omitempty"`
	SessionNumber int    `json:"sessionNumber"`
	SessionTitle  string `json:"sessionTitle,omitempty"`
}

// FlatSessions returns the structure in level-then-session order.
func (t *Training) FlatSessions() []FlatSession {
	flat := make([]FlatSession, 0, t.TotalSessions())
	for _, level := range t.Levels {
		for _, session := range level.Sessions {
			flat = append(flat, FlatSession{
				SessionID:     session.SessionID,
				LevelNumber:   level.LevelNumber,
				LevelTitle:    level.Title,
				SessionNumber: session.SessionNumber,
				SessionTitle:  session.Title,
			})
		}
	}
	return flat
}
