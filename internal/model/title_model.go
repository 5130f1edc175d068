package model

import "time"

type TitleModel struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	Name        string         `gorm:"type:varchar(256);not null"`
	Description string         `gorm:"type:text"`
	Year        int            `gorm:"not null"`
	CategoryID  *int64         `gorm:"index"`
	Category    *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Genres      []GenreModel   `gorm:"many2many:title_genres;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
}

func (TitleModel) TableName() string {
	return "titles"
}
