package models

import "time"

type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Email          string     `gorm:"size:255;uniqueIndex" json:"email"`
	Username       string     `gorm:"size:50;uniqueIndex" json:"username"`
	FullName       string     `gorm:"size:100" json:"full_name"`
	HashedPassword string     `gorm:"size:255" json:"-"`
	Role           string     `gorm:"size:20;default:'member'" json:"role"`
	IsActive       bool       `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}
