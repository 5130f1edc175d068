package usecase

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"reviewdb/internal/entity"
	"reviewdb/internal/repo/persistent"
	"reviewdb/pkg/jwt"
	"reviewdb/pkg/logger"
	"reviewdb/pkg/queue"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthUseCase interface {
	Signup(username, email string) (*entity.User, error)
	IssueToken(username, confirmationCode string) (string, error)
}

type authUseCase struct {
	userRepo    persistent.UserRepository
	jwtService  *jwt.Service
	queueClient *queue.Client
	emailSender string
	logger      *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	queueClient *queue.Client,
	emailSender string,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:    userRepo,
		jwtService:  jwtService,
		queueClient: queueClient,
		emailSender: emailSender,
		logger:      logger,
	}
}

// Signup registers a user (or re-requests a code for an existing exact
// username/email pair) and emails a confirmation code. The code itself is
// never echoed back to the client.
func (uc *authUseCase) Signup(username, email string) (*entity.User, error) {
	v := &ValidationError{}
	validateUsername(v, username)
	validateEmail(v, email)
	if v.HasErrors() {
		return nil, v
	}

	user, err := uc.userRepo.GetByUsernameAndEmail(username, email)
	switch {
	case err == nil:
		// Exact pair already registered: resend the stored code.
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &entity.User{
			Username: username,
			Email:    email,
			Role:     entity.RoleUser,
			// A fresh code per created user, never a shared default.
			ConfirmationCode: uuid.New().String(),
		}
		if err := uc.userRepo.Create(user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, duplicateUserError(uc.userRepo, "", username)
			}
			uc.logger.Error("Failed to create user: %v", err)
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	default:
		uc.logger.Error("Failed to look up user: %v", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	uc.sendConfirmationCode(user.Email, user.ConfirmationCode)
	return user, nil
}

// IssueToken exchanges a confirmation code for a signed access token.
func (uc *authUseCase) IssueToken(username, confirmationCode string) (string, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		uc.logger.Error("Failed to look up user: %v", err)
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(user.ConfirmationCode), []byte(confirmationCode)) != 1 {
		return "", ErrInvalidConfirmationCode
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(EffectiveRole(user)))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// EffectiveRole lifts staff and superuser accounts to admin so the ordered
// role check covers them everywhere a token is consulted.
func EffectiveRole(user *entity.User) entity.UserRole {
	if user.IsAdmin() {
		return entity.RoleAdmin
	}
	return user.Role
}

// sendConfirmationCode is fire-and-forget: delivery is the email worker's
// problem, and a down broker must not fail the signup.
func (uc *authUseCase) sendConfirmationCode(email, code string) {
	if uc.queueClient == nil {
		uc.logger.Warn("Email queue unavailable, confirmation code for %s not sent", email)
		return
	}

	go func() {
		task := queue.EmailTask{
			To:      email,
			From:    uc.emailSender,
			Subject: "Your confirmation code",
			Body:    code,
		}
		if err := uc.queueClient.PublishEmailTask(task); err != nil {
			uc.logger.Error("Failed to publish confirmation email for %s: %v", email, err)
		}
	}()
}
