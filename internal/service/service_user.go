package service

import (
	"context"
	"fmt"

	"github.com/art-space/artspace/internal/logger"
	"github.com/art-space/artspace/internal/store"
	"github.com/art-space/artspace/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Profile returns the account behind userID.
//
// Fails with store.ErrNoUserWasFound when the account no longer exists.
func (u *userService) Profile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// UpdateProfile applies a partial profile mutation and returns the updated
// account. A mutation with no fields set degrades to a plain profile read.
func (u *userService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Username != nil && *update.Username == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	updatedUser, err := u.userRepository.UpdateProfile(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updatedUser, nil
}
