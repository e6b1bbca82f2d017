package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"training_backend/internal/model"
	"training_backend/internal/repository"
	"training_backend/internal/util"
	"training_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const trainingCacheTTL = 12 * time.Hour

type TrainingService struct {
	TrainingRepo   *repository.TrainingRepository
	AttendanceRepo *repository.AttendanceRepository
	Redis          *redis.Client
}

func NewTrainingService(
	trainingRepo *repository.TrainingRepository,
	attendanceRepo *repository.AttendanceRepository,
	rdb *redis.Client,
) *TrainingService {
	return &TrainingService{
		TrainingRepo:   trainingRepo,
		AttendanceRepo: attendanceRepo,
		Redis:          rdb,
	}
}

type TrainingCreateRequest struct {
	Title       string       `json:"title" binding:"required"`
	Description string       `json:"description"`
	Levels      model.Levels `json:"levels"`
}

type TrainingUpdateRequest struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Levels      model.Levels `json:"levels"`
}

func (s *TrainingService) Create(req *TrainingCreateRequest) (*model.Training, error) {
	levels := req.Levels
	if len(levels) == 0 {
		levels = model.DefaultLevels()
	} else {
		// Session ids must be stable; fill any the client left blank.
		for li := range levels {
			for si := range levels[li].Sessions {
				if levels[li].Sessions[si].SessionID == "" {
					levels[li].Sessions[si].SessionID = model.GenerateUUID()
				}
			}
		}
	}

	training := &model.Training{
		Title:       req.Title,
		Description: req.Description,
		Levels:      levels,
	}
	if err := s.TrainingRepo.Create(training); err != nil {
		return nil, err
	}
	logger.Log.Debug("training created", zap.String("id", training.ID), zap.String("title", training.Title))
	return training, nil
}

// Get reads through the Redis cache. The structure is effectively immutable
// after creation, so cache staleness is bounded by the guarded update path
// which invalidates explicitly.
func (s *TrainingService) Get(id string) (*model.Training, error) {
	ctx := context.Background()
	key := cacheKey(id)

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, key).Result(); err == nil {
			var training model.Training
			if err := json.Unmarshal([]byte(cached), &training); err == nil {
				return &training, nil
			}
		}
	}

	training, err := s.TrainingRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(training); err == nil {
			s.Redis.Set(ctx, key, payload, trainingCacheTTL)
		}
	}
	return training, nil
}

func (s *TrainingService) List() ([]model.Training, error) {
	return s.TrainingRepo.List()
}

func (s *TrainingService) Update(id string, req *TrainingUpdateRequest) (*model.Training, error) {
	training, err := s.TrainingRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Levels != nil {
		// Resizing the structure under existing attendance would orphan
		// records keyed by (level, session). Locked once any mark exists.
		count, err := s.AttendanceRepo.CountByTraining(id)
		if err != nil {
			return nil, err
		}
		if count > 0 && !sameShape(training.Levels, req.Levels) {
			return nil, util.ErrStructureLocked
		}
		training.Levels = req.Levels
	}
	if req.Title != nil {
		training.Title = *req.Title
	}
	if req.Description != nil {
		training.Description = *req.Description
	}

	if err := s.TrainingRepo.Update(training); err != nil {
		return nil, err
	}
	s.invalidate(id)
	return training, nil
}

func (s *TrainingService) Delete(id string) error {
	if _, err := s.TrainingRepo.FindByID(id); err != nil {
		return err
	}
	if err := s.TrainingRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

// FlatSessions exposes the 4x6 layout in level-then-session order.
func (s *TrainingService) FlatSessions(id string) ([]model.FlatSession, error) {
	training, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return training.FlatSessions(), nil
}

func (s *TrainingService) invalidate(id string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), cacheKey(id)).Err(); err != nil {
		logger.Log.Warn("training cache invalidation failed", zap.String("id", id), zap.Error(err))
	}
}

func cacheKey(id string) string {
	return fmt.Sprintf("training:%s", id)
}

func sameShape(a, b model.Levels) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i].Sessions) != len(b[i].Sessions) {
			return false
		}
	}
	return true
}
