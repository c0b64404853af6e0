package models

import "time"

// User is a registered account. The first user ever created (ID 1) is the
// site administrator.
type User struct {
	ID           int       `json:"id" validate:"gte=0"`
	Email        string    `json:"email" validate:"required,email"`
	Name         string    `json:"name" validate:"required,min=2,max=100"`
	PasswordHash string    `json:"password_hash" validate:"required"`
	CreatedAt    time.Time `json:"created_at"`
}

// Post is a blog entry. Comments are loaded explicitly by the repositories
// and never persisted inside the post record.
type Post struct {
	ID        int        `json:"id" validate:"gte=0"`
	UserID    int        `json:"user_id" validate:"gte=0"`
	Author    string     `json:"author" validate:"required,max=100"`
	Title     string     `json:"title" validate:"required,min=3,max=200"`
	Subtitle  string     `json:"subtitle" validate:"required,max=200"`
	Date      string     `json:"date" validate:"required"`
	Body      string     `json:"body" validate:"required,min=10"`
	ImageURL  string     `json:"image_url" validate:"required,url"`
	CreatedAt time.Time  `json:"created_at"`
	Comments  []*Comment `json:"-" validate:"-"`
}

// Comment is a reply on a post. Author is denormalized from the user at
// creation time so rendering needs no extra lookup.
type Comment struct {
	ID        int       `json:"id" validate:"gte=0"`
	PostID    int       `json:"post_id" validate:"required,gte=1"`
	UserID    int       `json:"user_id" validate:"required,gte=1"`
	Author    string    `json:"author" validate:"required,max=100"`
	Body      string    `json:"body" validate:"required,min=1,max=1000"`
	CreatedAt time.Time `json:"created_at"`
}
