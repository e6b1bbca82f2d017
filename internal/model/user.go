package model

import (
	"time"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleTrainer UserRole = "trainer"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTrainer:
		return true
	default:
		return false
	}
}

// CanManage reports whether the role may create and edit seances,
// trainings, groups and enrollments.
func (r UserRole) CanManage() bool {
	return r == RoleAdmin || r == RoleManager
}

// CanMark reports whether the role may drive seance status and mark attendance.
func (r UserRole) CanMark() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleTrainer
}

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserDisabled UserStatus = "disabled"
)

// swagger:model User
type User struct {
	UUIDBase
	Email        string     `gorm:"size:100;unique;not null" json:"email"`
	PasswordHash string     `gorm:"size:100;not null" json:"-"`
	FirstName    string     `gorm:"size:100;not null" json:"firstName"`
	LastName     string     `gorm:"size:100;not null" json:"lastName"`
	Role         UserRole   `gorm:"type:enum('admin','manager','trainer');default:'trainer'" json:"role"`
	Status       UserStatus `gorm:"type:enum('active','disabled');default:'active'" json:"status"`
	Phone        string     `gorm:"size:20" json:"phone"`
	Speciality   string     `gorm:"size:100" json:"speciality"`
	LastLoginAt  time.Time  `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLoginAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
