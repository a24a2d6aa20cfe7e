package models

import "time"

type Project struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:100" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	CreatedByID uint       `json:"created_by_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`

	CreatedBy User   `gorm:"foreignKey:CreatedByID" json:"-"`
	Members   []User `gorm:"many2many:user_projects;" json:"-"`
	Tasks     []Task `json:"-"`
}
