package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleManager     Role = "manager"
	RoleSalesperson Role = "salesperson"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSalesperson:
		return true
	}
	return false
}

type MetalType string

const (
	MetalGold     MetalType = "gold"
	MetalSilver   MetalType = "silver"
	MetalPlatinum MetalType = "platinum"
)

func ValidMetalType(m MetalType) bool {
	switch m {
	case MetalGold, MetalSilver, MetalPlatinum:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	Username     string    `gorm:"uniqueIndex;not null"     json:"username"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// MetalPrice is the single current price record. There is at most one
// row, always with ID = CurrentPriceID; updates overwrite it in place.
type MetalPrice struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	GoldPrice     float64   `gorm:"not null"   json:"gold_price"`
	SilverPrice   float64   `gorm:"not null"   json:"silver_price"`
	PlatinumPrice float64   `gorm:"not null"   json:"platinum_price"`
	UpdatedAt     time.Time `json:"updated_at"`
	UpdatedBy     uuid.UUID `gorm:"type:uuid"  json:"updated_by"`
}

const CurrentPriceID uint = 1

type InventoryItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"      json:"id"`
	SKU         string    `gorm:"uniqueIndex;not null"      json:"sku"`
	Name        string    `gorm:"not null"                  json:"name"`
	MetalType   MetalType `gorm:"type:varchar(20);not null" json:"metal_type"`
	WeightGrams float64   `gorm:"not null"                  json:"weight_grams"`
	CostPrice   float64   `gorm:"not null"                  json:"cost_price"`
	Description string    `gorm:"type:text"                 json:"description"`
	PhotoBase64 string    `gorm:"type:text"                 json:"photo_base64,omitempty"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"        json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
