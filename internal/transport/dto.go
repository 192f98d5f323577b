package transport

import "github.com/mstrelkov/jewelstock/internal/models"

type RegisterRequest struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string       `json:"token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

type UpdatePricesRequest struct {
	GoldPrice     float64 `json:"gold_price"`
	SilverPrice   float64 `json:"silver_price"`
	PlatinumPrice float64 `json:"platinum_price"`
}

type CreateItemRequest struct {
	SKU         string           `json:"sku"`
	Name        string           `json:"name"`
	MetalType   models.MetalType `json:"metal_type"`
	WeightGrams float64          `json:"weight_grams"`
	CostPrice   float64          `json:"cost_price"`
	Description string           `json:"description"`
	PhotoBase64 string           `json:"photo_base64"`
}

type UpdateItemRequest struct {
	Name        *string           `json:"name"`
	MetalType   *models.MetalType `json:"metal_type"`
	WeightGrams *float64          `json:"weight_grams"`
	CostPrice   *float64          `json:"cost_price"`
	Description *string           `json:"description"`
	PhotoBase64 *string           `json:"photo_base64"`
}
