package models

import "time"

type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Status       string
	PostIDs      []int64
	CreatedAt    time.Time
}

type Post struct {
	ID        int64
	Title     string
	Content   string
	ImageURL  string
	CreatorID int64
	CreatedAt time.Time
	UpdatedAt time.Time

	// Creator is populated only by lookups that resolve the owning user.
	Creator *User
}

// Todo mirrors the todo_items table served by the REST side.
type Todo struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status bool   `json:"status"`
	UserID *int64 `json:"user_id,omitempty"`
}
