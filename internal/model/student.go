package model

// swagger:model Student
type Student struct {
	UUIDBase
	FirstName string `gorm:"size:100;not null;index:idx_student_name" json:"firstName"`
	LastName  string `gorm:"size:100;not null;index:idx_student_name" json:"lastName"`
	BirthDate string `gorm:"size:10" json:"birthDate"`
	Phone     string `gorm:"size:20" json:"phone"`
	Email     string `gorm:"size:100" json:"email"`
	Notes     string `gorm:"type:text" json:"notes"`
}

func (Student) TableName() string {
	return "students"
}
