package model

import "time"

type Task struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Completed bool      `gorm:"not null" json:"completed"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName keeps the table name compatible with existing deployments.
func (Task) TableName() string {
	return "todos"
}
