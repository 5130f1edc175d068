package model

import "time"

type ReviewModel struct {
	ID       int64       `gorm:"primaryKey;autoIncrement"`
	TitleID  int64       `gorm:"not null;index:idx_reviews_title_author,unique"`
	Title    *TitleModel `gorm:"foreignKey:TitleID;constraint:OnDelete:CASCADE"`
	AuthorID string      `gorm:"type:uuid;not null;index:idx_reviews_title_author,unique"`
	Author   *UserModel  `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Text     string      `gorm:"type:text;not null"`
	Score    int         `gorm:"type:smallint;not null;check:score >= 1 AND score <= 10"`
	PubDate  time.Time   `gorm:"autoCreateTime"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}

type CommentModel struct {
	ID       int64        `gorm:"primaryKey;autoIncrement"`
	ReviewID int64        `gorm:"not null;index"`
	Review   *ReviewModel `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
	AuthorID string       `gorm:"type:uuid;not null;index"`
	Author   *UserModel   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Text     string       `gorm:"type:text;not null"`
	PubDate  time.Time    `gorm:"autoCreateTime"`
}

func (CommentModel) TableName() string {
	return "comments"
}
