package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/templui/piggypanic/internal/model"
	"github.com/templui/piggypanic/internal/repository"
	"github.com/templui/piggypanic/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCurrentPassword = errors.New("current password is incorrect")

type UserService struct {
	userRepository  repository.UserRepository
	tokenRepository repository.TokenRepository
}

func NewUserService(userRepository repository.UserRepository, tokenRepository repository.TokenRepository) *UserService {
	return &UserService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
	}
}

// UpdatePassword changes the password of a signed-in user after checking the
// current one. Outstanding reset links stop working.
func (s *UserService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword, confirmPassword string) error {
	user, err := s.userRepository.ByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword))
	if err != nil {
		return ErrInvalidCurrentPassword
	}

	err = validation.ValidatePasswordConfirmation(newPassword, confirmPassword)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.userRepository.UpdatePassword(ctx, userID, string(hashedPassword))
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	err = s.tokenRepository.DeleteByUserAndType(ctx, userID, model.TokenTypePasswordReset)
	if err != nil {
		slog.Warn("failed to delete reset tokens", "error", err, "user_id", userID)
	}

	slog.Info("password updated", "user_id", userID)
	return nil
}
