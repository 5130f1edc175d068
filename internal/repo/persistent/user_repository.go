package persistent

import (
	"reviewdb/internal/entity"
	"reviewdb/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByUsernameAndEmail(username, email string) (*entity.User, error)
	List(search string, limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(username string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsernameAndEmail(username, email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ? AND email = ?", username, email).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) List(search string, limit, offset int) ([]*entity.User, error) {
	query := r.db.Model(&model.UserModel{}).Order("username")
	if search != "" {
		query = query.Where("username ILIKE ?", "%"+search+"%")
	}

	var userModels []model.UserModel
	if err := query.Limit(limit).Offset(offset).Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}

func (r *userRepository) Update(user *entity.User) error {
	return r.db.Save(ToUserModel(user)).Error
}

func (r *userRepository) Delete(username string) error {
	result := r.db.Where("username = ?", username).Delete(&model.UserModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
