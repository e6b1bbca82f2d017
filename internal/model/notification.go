package model

type NotificationType string

const (
	NotifSeanceAssigned NotificationType = "SEANCE_ASSIGNED"
	NotifSeanceUpdated  NotificationType = "SEANCE_UPDATED"
	NotifSeanceReported NotificationType = "SEANCE_REPORTED"
)

// swagger:model Notification
type Notification struct {
	UUIDBase
	UserID  string           `gorm:"size:36;not null;index" json:"userId"`
	Title   string           `gorm:"size:200;not null" json:"title"`
	Message string           `gorm:"type:text" json:"message"`
	Link    string           `gorm:"size:200" json:"link"`
	Type    NotificationType `gorm:"size:50" json:"type"`
	Read    bool             `gorm:"default:false" json:"read"`
}

func (Notification) TableName() string {
	return "notifications"
}
