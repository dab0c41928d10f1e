package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/apperr"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/model"
)

func (l *Ledger) CreateUser(user *model.User) error {
	return l.db.Create(user).Error
}

func (l *Ledger) FindUser(userID string) (*model.User, error) {
	var user model.User
	if err := l.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (l *Ledger) FindUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := l.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}
