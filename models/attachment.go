package models

import "time"

type Attachment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Filename     string    `gorm:"size:255" json:"filename"`
	FilePath     string    `gorm:"size:500" json:"file_path"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `gorm:"size:100" json:"mime_type"`
	TaskID       uint      `json:"task_id"`
	UploadedByID uint      `json:"uploaded_by_id"`
	CreatedAt    time.Time `json:"created_at"`

	Task       Task `gorm:"foreignKey:TaskID" json:"-"`
	UploadedBy User `gorm:"foreignKey:UploadedByID" json:"-"`
}
