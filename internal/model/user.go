package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a project owner account.
type User struct {
	UserID    string    `json:"user_id" gorm:"column:user_id;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	UserName     string `json:"user_name"`
}

// TableName avoids the reserved word "user" in postgres.
func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	return nil
}
