package usecase

import (
	"errors"
	"fmt"

	"reviewdb/internal/entity"
	"reviewdb/internal/repo/persistent"
	"reviewdb/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserInput is the admin-side creation payload.
type UserInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Bio       string
	Role      string
}

// UserPatch applies partial updates; nil fields are left untouched.
type UserPatch struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	Bio       *string
	Role      *string
}

type UserUseCase interface {
	List(search string, limit, offset int) ([]*entity.User, error)
	Create(input UserInput) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	UpdateByUsername(username string, patch UserPatch) (*entity.User, error)
	Delete(username string) error
	GetSelf(userID string) (*entity.User, error)
	UpdateSelf(userID string, patch UserPatch) (*entity.User, error)
}

type userUseCase struct {
	userRepo persistent.UserRepository
	logger   *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, logger *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// duplicateUserError keys a storage-level duplicate to the column that
// actually collides: when another account already owns the username that is
// the conflict, otherwise it must be the email.
func duplicateUserError(userRepo persistent.UserRepository, userID, username string) *ValidationError {
	existing, err := userRepo.GetByUsername(username)
	if err == nil && existing.ID != userID {
		return newFieldError("username", "user with this username already exists")
	}
	return newFieldError("email", "user with this email already exists")
}

func (uc *userUseCase) List(search string, limit, offset int) ([]*entity.User, error) {
	return uc.userRepo.List(search, limit, offset)
}

func (uc *userUseCase) Create(input UserInput) (*entity.User, error) {
	v := &ValidationError{}
	validateUsername(v, input.Username)
	validateEmail(v, input.Email)

	role := entity.UserRole(input.Role)
	if input.Role == "" {
		role = entity.RoleUser
	} else if !role.Valid() {
		v.Add("role", "must be one of: user, moderator, admin")
	}
	if v.HasErrors() {
		return nil, v
	}

	user := &entity.User{
		Username:         input.Username,
		Email:            input.Email,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Bio:              input.Bio,
		Role:             role,
		ConfirmationCode: uuid.New().String(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, duplicateUserError(uc.userRepo, "", user.Username)
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (uc *userUseCase) GetByUsername(username string) (*entity.User, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (uc *userUseCase) UpdateByUsername(username string, patch UserPatch) (*entity.User, error) {
	user, err := uc.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	return uc.applyPatch(user, patch, true)
}

func (uc *userUseCase) Delete(username string) error {
	if err := uc.userRepo.Delete(username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (uc *userUseCase) GetSelf(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateSelf never reads patch.Role, so a principal cannot escalate their own
// role no matter what the payload says.
func (uc *userUseCase) UpdateSelf(userID string, patch UserPatch) (*entity.User, error) {
	user, err := uc.GetSelf(userID)
	if err != nil {
		return nil, err
	}
	return uc.applyPatch(user, patch, false)
}

func (uc *userUseCase) applyPatch(user *entity.User, patch UserPatch, allowRole bool) (*entity.User, error) {
	v := &ValidationError{}

	if patch.Username != nil {
		validateUsername(v, *patch.Username)
	}
	if patch.Email != nil {
		validateEmail(v, *patch.Email)
	}
	if allowRole && patch.Role != nil && !entity.UserRole(*patch.Role).Valid() {
		v.Add("role", "must be one of: user, moderator, admin")
	}
	if v.HasErrors() {
		return nil, v
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if allowRole && patch.Role != nil {
		user.Role = entity.UserRole(*patch.Role)
	}

	if err := uc.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, duplicateUserError(uc.userRepo, user.ID, user.Username)
		}
		uc.logger.Error("Failed to update user %s: %v", user.Username, err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
