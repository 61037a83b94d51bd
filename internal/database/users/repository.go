// Package users provides database operations for the user directory.
package users

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/pointskeeper/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser stores a new user.
func (r *Repository) CreateUser(login, displayName string) (*entities.User, error) {
	user := &entities.User{
		Login:       login,
		DisplayName: displayName,
	}
	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindUserByLogin returns the user with the given login, or nil if no such
// user exists.
func (r *Repository) FindUserByLogin(login string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("login = ?", login).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user by id.
func (r *Repository) DeleteUser(id int64) error {
	return r.db.Delete(&entities.User{}, id).Error
}
