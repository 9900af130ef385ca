package domain

import "time"

type Blog struct {
	ID           string
	Name         string
	Description  string
	WebsiteURL   string
	IsMembership bool
	CreatedAt    time.Time
}

type Post struct {
	ID               string
	Title            string
	ShortDescription string
	Content          string
	BlogID           string
	BlogName         string // joined from blogs on read
	CreatedAt        time.Time
}

type Comment struct {
	ID        string
	PostID    string
	Content   string
	UserID    string
	UserLogin string // joined from users on read
	CreatedAt time.Time
}
