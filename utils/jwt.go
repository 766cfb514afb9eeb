package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims ของ token ฝั่ง admin (มีแค่ role)
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken สร้าง JWT หลัง login ผ่าน password gate
func GenerateToken(role, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)), // อายุ token
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
