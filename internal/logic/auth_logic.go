package logic

import (
	"strings"

	"gorm.io/gorm"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/apperr"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/auth"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/model"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/store"
)

// AuthLogic handles account registration and login.
type AuthLogic struct {
	store *store.Ledger
}

func NewAuthLogic(db *gorm.DB) *AuthLogic {
	return &AuthLogic{store: store.New(db)}
}

// Register creates an account and returns it with a session token.
func (l *AuthLogic) Register(email, password, name string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", apperr.Validation("a valid email is required")
	}
	if len(password) < 8 {
		return nil, "", apperr.Validation("password must be at least 8 characters")
	}

	if _, err := l.store.FindUserByEmail(email); err == nil {
		return nil, "", apperr.Validation("email already exists")
	} else if apperr.KindOf(err) != apperr.KindNotFound {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		UserName:     strings.TrimSpace(name),
	}
	if err := l.store.CreateUser(user); err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateJWT(user.UserID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies credentials and returns the user with a session token.
func (l *AuthLogic) Login(email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := l.store.FindUserByEmail(email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, "", errInvalidCredentials()
		}
		return nil, "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", errInvalidCredentials()
	}

	token, err := auth.GenerateJWT(user.UserID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func errInvalidCredentials() error {
	return &apperr.Error{Kind: apperr.KindUnauthenticated, Message: "invalid email or password"}
}
