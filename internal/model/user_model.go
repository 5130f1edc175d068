package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID               string    `gorm:"type:uuid;primary_key"`
	Username         string    `gorm:"type:varchar(150);uniqueIndex;not null;index:idx_users_username_email,unique"`
	Email            string    `gorm:"type:varchar(254);uniqueIndex;not null;index:idx_users_username_email,unique"`
	FirstName        string    `gorm:"type:varchar(150)"`
	LastName         string    `gorm:"type:varchar(150)"`
	Bio              string    `gorm:"type:text"`
	Role             string    `gorm:"type:varchar(9);not null;default:'user'"`
	IsStaff          bool      `gorm:"not null;default:false"`
	IsSuperuser      bool      `gorm:"not null;default:false"`
	ConfirmationCode string    `gorm:"type:varchar(50)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
