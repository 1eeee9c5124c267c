package model

import (
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleCompany = "company"
)

type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Role         string    `gorm:"size:20;not null;default:company" json:"role"` // admin, company
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
