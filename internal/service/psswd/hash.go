package psswd

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fsdevblog/groph-receipts/internal/domain"
)

// MaxPasswordBytes bcrypt не принимает пароли длиннее.
const MaxPasswordBytes = 72

type PasswordHash string

// HashPassword хеширует пароль bcrypt. Слишком длинный пароль - *domain.ValidationError.
func (p PasswordHash) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.NewValidationError("password", fmt.Sprintf("must be at most %d bytes", MaxPasswordBytes))
	}
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(hash), nil
}

func (p PasswordHash) ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
