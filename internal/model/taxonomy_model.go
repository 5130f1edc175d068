package model

type CategoryModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(256);not null"`
	Slug string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

type GenreModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(256);not null"`
	Slug string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

func (GenreModel) TableName() string {
	return "genres"
}
