package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a JSON-encoded list column.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// Group ties a Training to a cohort of students with a weekly recurrence hint,
// e.g. "Groupe A" meets every Monday 14:00-16:00.
// swagger:model Group
type Group struct {
	UUIDBase
	Name       string     `gorm:"size:100;not null" json:"name"`
	TrainingID string     `gorm:"size:36;not null;index" json:"trainingId"`
	TrainerID  string     `gorm:"size:36;index" json:"trainerId"`
	DayOfWeek  string     `gorm:"size:10" json:"dayOfWeek"`
	StartTime  string     `gorm:"size:5" json:"startTime"`
	EndTime    string     `gorm:"size:5" json:"endTime"`
	StudentIDs StringList `gorm:"type:json" json:"studentIds"`
}

func (Group) TableName() string {
	return "groups"
}

func (g *Group) HasStudent(studentID string) bool {
	for _, id := range g.StudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}
