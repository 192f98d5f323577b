package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mstrelkov/jewelstock/internal/hash"
	"github.com/mstrelkov/jewelstock/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	var existing models.User
	err := r.DB.WithContext(ctx).Where("username = ?", u.Username).First(&existing).Error
	if err == nil {
		return ErrUserAlreadyExist
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	err = r.DB.WithContext(ctx).Where("email = ?", u.Email).First(&existing).Error
	if err == nil {
		return ErrEmailAlreadyExist
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.DB.WithContext(ctx).Create(u).Error
}

// VerifyLogin returns the user only when the username exists and the
// password matches its bcrypt hash. Both failure modes collapse into
// ErrInvalidCredentials so callers cannot tell them apart.
func (r *GormRepo) VerifyLogin(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (r *GormRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
