package model

import "time"

type Novel struct {
	NovelID     string
	Title       string
	Author      string
	Description string
	Genre       string
	Published   bool
	PageCount   int
	Rating      float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TextField returns the value of a translatable text field by name. The
// second result is false for names outside the translatable set.
func (n Novel) TextField(name string) (string, bool) {
	switch name {
	case "title":
		return n.Title, true
	case "author":
		return n.Author, true
	case "description":
		return n.Description, true
	case "genre":
		return n.Genre, true
	default:
		return "", false
	}
}
