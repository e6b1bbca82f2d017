package repository

import (
	"errors"
	"time"
	"training_backend/internal/model"
	"training_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

// Upsert writes one mark for (enrollment, level, session). A later mark
// overwrites an earlier one, so corrections are plain re-marks.
func (r *AttendanceRepository) Upsert(record *model.AttendanceRecord) error {
	record.MarkedAt = time.Now()
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "enrollment_id"},
			{Name: "level_number"},
			{Name: "session_number"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"status", "marked_at", "updated_at"}),
	}).Create(record).Error
}

func (r *AttendanceRepository) FindBySlot(enrollmentID string, levelNumber, sessionNumber int) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := r.DB.First(&record,
		"enrollment_id = ? AND level_number = ? AND session_number = ?",
		enrollmentID, levelNumber, sessionNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *AttendanceRepository) ListByEnrollment(enrollmentID string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.DB.Where("enrollment_id = ?", enrollmentID).
		Order("level_number, session_number").
		Find(&records).Error
	return records, err
}

func (r *AttendanceRepository) DeleteByEnrollment(enrollmentID string) error {
	return r.DB.Delete(&model.AttendanceRecord{}, "enrollment_id = ?", enrollmentID).Error
}

// CountFullyAttendedEnrollments counts enrollments whose attended marks
// cover at least the given number of slots.
func (r *AttendanceRepository) CountFullyAttendedEnrollments(required int) (int64, error) {
	var ids []string
	err := r.DB.Model(&model.AttendanceRecord{}).
		Where("status IN ?", []model.AttendanceStatus{model.AttendancePresent, model.AttendanceExcused}).
		Group("enrollment_id").
		Having("COUNT(*) >= ?", required).
		Pluck("enrollment_id", &ids).Error
	return int64(len(ids)), err
}

// CountByTraining counts marks across all enrollments of a training.
// Used to decide whether the training structure is still editable.
func (r *AttendanceRepository) CountByTraining(trainingID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.AttendanceRecord{}).
		Joins("JOIN enrollments ON enrollments.id = attendance_records.enrollment_id").
		Where("enrollments.training_id = ? AND enrollments.deleted_at IS NULL", trainingID).
		Count(&count).Error
	return count, err
}
