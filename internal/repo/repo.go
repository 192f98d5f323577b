package repo

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrUserAlreadyExist   = errors.New("user already exist")
	ErrEmailAlreadyExist  = errors.New("email already exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSKUAlreadyExist    = errors.New("sku already exist")
)

type GormRepo struct {
	DB *gorm.DB
}
