package repository

import (
	"training_backend/internal/model"

	"gorm.io/gorm"
)

type SessionReportRepository struct {
	DB *gorm.DB
}

func NewSessionReportRepository(db *gorm.DB) *SessionReportRepository {
	return &SessionReportRepository{DB: db}
}

func (r *SessionReportRepository) Create(report *model.SessionReport) error {
	return r.DB.Create(report).Error
}

func (r *SessionReportRepository) ListBySeance(seanceID string) ([]model.SessionReport, error) {
	var reports []model.SessionReport
	err := r.DB.Where("seance_id = ?", seanceID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *SessionReportRepository) ListByTrainer(trainerID string) ([]model.SessionReport, error) {
	var reports []model.SessionReport
	err := r.DB.Where("trainer_id = ?", trainerID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}
