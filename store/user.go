package store

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Lumberjack100/app-remote-config-site-backend/models"
)

// UserStore persists user records.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// ByID returns the user with the given id, or nil when absent.
func (s *UserStore) ByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// ByAccount returns the user with the given account, or nil when absent.
func (s *UserStore) ByAccount(account string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("account = ?", account).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies the account/password pair. Unknown account and wrong
// password both return nil, so callers cannot tell the cases apart.
func (s *UserStore) Authenticate(account, password string) (*models.User, error) {
	user, err := s.ByAccount(account)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}
