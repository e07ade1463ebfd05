package middleware

import (
	"errors"
	"strings"
	"time"

	"budget-tracker/config"
	"budget-tracker/database"
	"budget-tracker/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// Claims are the token claims carried by a bearer token.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// InitAuth sets the signing secret from configuration.
func InitAuth(cfg *config.Config) {
	jwtSecret = []byte(cfg.Auth.Secret)
}

// GenerateToken signs a new token for the given user.
func GenerateToken(userID uint, username string, expire time.Duration) (string, error) {
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken verifies the signature and expiry and returns the claims.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// TokenAuth authenticates requests with "Authorization: Bearer <token>".
// The token must carry a valid signature and still match the row stored for
// its user, so a reissued token invalidates the previous one.
func TokenAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			unauthorized(c, "authorization header must be: Bearer <token>")
			return
		}
		tokenString := strings.TrimSpace(parts[1])

		claims, err := ParseToken(tokenString)
		if err != nil {
			unauthorized(c, "invalid or expired token")
			return
		}

		var stored models.AuthToken
		if err := database.DB.Where("user_id = ? AND `key` = ?", claims.UserID, tokenString).
			First(&stored).Error; err != nil {
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// GetCurrentUserID returns the authenticated user id, 0 when unauthenticated.
func GetCurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// GetCurrentUsername returns the authenticated username, "" when unauthenticated.
func GetCurrentUsername(c *gin.Context) string {
	if v, ok := c.Get("username"); ok {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}

func unauthorized(c *gin.Context, message string) {
	c.JSON(401, gin.H{
		"code":    401,
		"message": message,
	})
	c.Abort()
}
