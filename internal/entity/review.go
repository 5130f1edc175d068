package entity

import "time"

// Review holds a single user's rating of a title. A user may review each
// title at most once; PubDate is set at creation and never mutated.
type Review struct {
	ID       int64     `json:"id"`
	TitleID  int64     `json:"-"`
	AuthorID string    `json:"-"`
	Author   string    `json:"author"`
	Text     string    `json:"text"`
	Score    int       `json:"score"`
	PubDate  time.Time `json:"pub_date"`
}

type Comment struct {
	ID       int64     `json:"id"`
	ReviewID int64     `json:"-"`
	AuthorID string    `json:"-"`
	Author   string    `json:"author"`
	Text     string    `json:"text"`
	PubDate  time.Time `json:"pub_date"`
}
