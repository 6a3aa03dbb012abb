package model

import (
	"time"

	"github.com/google/uuid"
)

type Interviewer struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Username       string    `gorm:"type:varchar(255);uniqueIndex" json:"username"`
	HashedPassword string    `gorm:"type:varchar(255)" json:"-"`
	FullName       string    `gorm:"type:varchar(255)" json:"full_name"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Sessions []InterviewSession `gorm:"foreignKey:InterviewerID" json:"-"`
}

func (i *Interviewer) TableName() string {
	return "interviewers"
}
