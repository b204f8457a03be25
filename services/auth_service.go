package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/AstroAir/student-attendance-system/models"
	"github.com/AstroAir/student-attendance-system/utils"
)

// AuthService verifies credentials against the relational backend only.
// Unlike entity data there is no in-memory fallback: credentials never leave
// the database, so an unreachable backend means nobody can log in.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Authenticate fails closed on empty arguments, a missing backend, an
// unknown username or a digest mismatch. Comparison is exact-byte and
// case-sensitive; no trimming is applied.
func (s *AuthService) Authenticate(username, password string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	}
	if s.db == nil {
		return models.User{}, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	}

	var u models.User
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		return models.User{}, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	}
	if utils.Digest(u.Salt, password) != u.PasswordHash {
		return models.User{}, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	}
	return u, nil
}
