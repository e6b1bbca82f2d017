package service

import (
	"errors"
	"training_backend/internal/config"
	"training_backend/internal/model"
	"training_backend/internal/repository"
	"training_backend/internal/util"
	"training_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Config   *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, Config: cfg}
}

type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Role       string `json:"role" binding:"required"`
	Phone      string `json:"phone"`
	Speciality string `json:"speciality"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type UserUpdateRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Phone      *string `json:"phone"`
	Speciality *string `json:"speciality"`
	Status     *string `json:"status"`
}

var ErrInvalidCredentials = errors.New("invalid email or password")

// Register creates a staff account. Only admins reach this endpoint, so the
// requested role is honored as long as it names a known one.
func (s *AuthService) Register(req *RegisterRequest) (*model.User, error) {
	role := model.UserRole(req.Role)
	if !role.Valid() {
		return nil, util.ErrInvalidRole
	}

	if _, err := s.UserRepo.FindByEmail(req.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, util.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		Status:       model.UserActive,
		Phone:        req.Phone,
		Speciality:   req.Speciality,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	logger.Log.Info("user registered", zap.String("email", user.Email), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	user, err := s.UserRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Status == model.UserDisabled {
		return nil, util.ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		logger.Log.Warn("last login update failed", zap.String("user", user.ID), zap.Error(err))
	}

	return &LoginResponse{Token: token, User: user}, nil
}

func (s *AuthService) GetUser(id string) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}

func (s *AuthService) ListUsers() ([]model.User, error) {
	return s.UserRepo.List()
}

func (s *AuthService) ListTrainers() ([]model.User, error) {
	return s.UserRepo.ListByRole(model.RoleTrainer)
}

func (s *AuthService) UpdateUser(id string, req *UserUpdateRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Speciality != nil {
		user.Speciality = *req.Speciality
	}
	if req.Status != nil {
		status := model.UserStatus(*req.Status)
		if status != model.UserActive && status != model.UserDisabled {
			return nil, util.ErrInvalidStatus
		}
		user.Status = status
	}
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) DeleteUser(id string) error {
	if _, err := s.UserRepo.FindByID(id); err != nil {
		return err
	}
	return s.UserRepo.Delete(id)
}
