package models

import "time"

// Task represents a single task record. Each task belongs to exactly one
// user; UserID is fixed at creation and never updated.
type Task struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"user" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}
