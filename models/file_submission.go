package models

import "time"

// FileSubmission references an object in the content store. FilePath is the
// object key; the binary itself lives in the bucket.
type FileSubmission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	FileName  string    `gorm:"size:255;not null" json:"file_name"`
	FilePath  string    `gorm:"size:512;not null" json:"file_path"`
	FileSize  int64     `gorm:"not null" json:"file_size"`
	FileType  string    `gorm:"size:100;not null" json:"file_type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
