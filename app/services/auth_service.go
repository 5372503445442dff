package services

import (
	"errors"

	"github.com/dpramana/apotek/app/models"
	"github.com/dpramana/apotek/pkg/auth"
)

// ErrInvalidCredentials hides whether the email or the password was
// wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserStore is what the auth service needs from the user repository.
type UserStore interface {
	FindByEmail(email string) (models.User, error)
}

type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Login verifies the credentials and returns a signed token plus the
// authenticated user.
func (s *AuthService) Login(email, password string) (string, models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.Password, password) {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}
