package entity

// Title is a catalogued creative work reviewable by users.
//
// Rating is the mean review score rounded to one decimal place; nil when the
// title has no reviews yet.
type Title struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Year        int       `json:"year"`
	Rating      *float64  `json:"rating"`
	Description string    `json:"description"`
	Genres      []Genre   `json:"genre"`
	Category    *Category `json:"category"`
}
