package usecase

import (
	"testing"

	"reviewdb/internal/entity"
	"reviewdb/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestUpdateSelf_RoleFieldIgnored(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewUserUseCase(mockRepo, logger.New())

	mockRepo.On("GetByID", "user-123").Return(&entity.User{
		ID:       "user-123",
		Username: "alpha",
		Email:    "alpha@example.com",
		Role:     entity.RoleUser,
	}, nil)

	var saved *entity.User
	mockRepo.On("Update", mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		saved = args.Get(0).(*entity.User)
	}).Return(nil)

	role := "admin"
	bio := "Reads a lot"
	user, err := uc.UpdateSelf("user-123", UserPatch{Role: &role, Bio: &bio})

	assert.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, entity.RoleUser, saved.Role)
	assert.Equal(t, "Reads a lot", saved.Bio)

	mockRepo.AssertExpectations(t)
}

func TestUpdateByUsername_RoleChangeApplied(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewUserUseCase(mockRepo, logger.New())

	mockRepo.On("GetByUsername", "alpha").Return(&entity.User{
		ID:       "user-123",
		Username: "alpha",
		Email:    "alpha@example.com",
		Role:     entity.RoleUser,
	}, nil)
	mockRepo.On("Update", mock.AnythingOfType("*entity.User")).Return(nil)

	role := "moderator"
	user, err := uc.UpdateByUsername("alpha", UserPatch{Role: &role})

	assert.NoError(t, err)
	assert.Equal(t, entity.RoleModerator, user.Role)

	mockRepo.AssertExpectations(t)
}

func TestUpdateByUsername_InvalidRoleRejected(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewUserUseCase(mockRepo, logger.New())

	mockRepo.On("GetByUsername", "alpha").Return(&entity.User{
		ID:       "user-123",
		Username: "alpha",
		Role:     entity.RoleUser,
	}, nil)

	role := "superuser"
	_, err := uc.UpdateByUsername("alpha", UserPatch{Role: &role})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "role")

	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUserCreate_FreshCodePerUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewUserUseCase(mockRepo, logger.New())

	var created []*entity.User
	mockRepo.On("Create", mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		created = append(created, args.Get(0).(*entity.User))
	}).Return(nil)

	_, err := uc.Create(UserInput{Username: "alpha", Email: "alpha@example.com"})
	assert.NoError(t, err)
	_, err = uc.Create(UserInput{Username: "beta", Email: "beta@example.com"})
	assert.NoError(t, err)

	assert.Len(t, created, 2)
	assert.NotEmpty(t, created[0].ConfirmationCode)
	assert.NotEqual(t, created[0].ConfirmationCode, created[1].ConfirmationCode)
}

func TestUserCreate_DuplicateEmailKeyedToEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewUserUseCase(mockRepo, logger.New())

	mockRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(gorm.ErrDuplicatedKey)
	mockRepo.On("GetByUsername", "newuser").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.Create(UserInput{Username: "newuser", Email: "taken@example.com"})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "email")

	mockRepo.AssertExpectations(t)
}
