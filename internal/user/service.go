package user

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/hr-management/internal"
)

type Repository interface {
	GetByID(userID int64) (*User, error)
	Update(u *User) error
}

// Service handles profile reads and mutations for the authenticated account.
type Service struct {
	repo       Repository
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *Service) GetProfile(userID int64) (*ProfileView, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	view := u.ToProfileView()
	return &view, nil
}

// UpdateProfile overwrites only the fields present in the request.
func (s *Service) UpdateProfile(userID int64, dto UpdateProfileDTO) (*PublicView, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if dto.Name != "" {
		u.Name = dto.Name
	}
	if dto.Surname != "" {
		u.Surname = dto.Surname
	}
	if dto.Email != "" {
		u.Email = dto.Email
	}

	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to update profile", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", userID)

	view := u.ToPublicView()
	return &view, nil
}

// ChangePassword verifies the current password before storing the new hash.
func (s *Service) ChangePassword(userID int64, dto ChangePasswordDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	u, err := s.repo.GetByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.OldPassword)); err != nil {
		s.logger.Warn("password change rejected: wrong current password", "user_id", userID)
		return internal.NewValidationError("current password is incorrect", internal.ErrCodeInvalidCredentials)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), s.bcryptCost)
	if err != nil {
		return internal.NewInternalError("failed to hash password", err)
	}

	u.PasswordHash = string(hash)
	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to persist new password", "error", err, "user_id", userID)
		return err
	}

	s.logger.Info("password changed", "user_id", userID)
	return nil
}
