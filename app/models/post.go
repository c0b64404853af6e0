package models

import (
	"errors"
	"time"
)

// DateFormat is the human-readable publication date stored on each post.
const DateFormat = "January 2, 2006"

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.Date == "" {
		p.Date = p.CreatedAt.Format(DateFormat)
	}
}
