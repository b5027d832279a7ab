package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"raillink_backend/internals/configs"
	authModel "raillink_backend/internals/features/users/auth/model"
	userModel "raillink_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// IssueAccessToken signs a short-lived token carrying the identity
// claims the auth middleware reads back.
func IssueAccessToken(user userModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       user.UserID.String(),
		"user_id":   user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
}

// IssueRefreshToken signs a refresh token and persists it, rotating out
// any previous token for the user.
func IssueRefreshToken(db *gorm.DB, userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", err
	}

	if err := db.Where("user_id = ?", userID).
		Delete(&authModel.RefreshToken{}).Error; err != nil {
		return "", err
	}
	if err := db.Create(&authModel.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiredAt: now.Add(RefreshTokenTTL),
	}).Error; err != nil {
		return "", err
	}
	return token, nil
}

// ValidateRefreshToken checks signature, expiry and DB presence, and
// returns the owning user id.
func ValidateRefreshToken(db *gorm.DB, raw string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("refresh token invalid")
	}

	var stored authModel.RefreshToken
	if err := db.Where("token = ? AND user_id = ?", raw, userID).
		First(&stored).Error; err != nil {
		return uuid.Nil, errors.New("refresh token unknown")
	}
	if time.Now().After(stored.ExpiredAt) {
		return uuid.Nil, errors.New("refresh token expired")
	}
	return userID, nil
}

// BlacklistAccessToken revokes an access token until its expiry.
func BlacklistAccessToken(db *gorm.DB, raw string) error {
	expiry := time.Now().Add(AccessTokenTTL)
	parser := jwt.Parser{SkipClaimsValidation: true}
	if tok, _, err := parser.ParseUnverified(raw, jwt.MapClaims{}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				expiry = time.Unix(int64(exp), 0)
			}
		}
	}
	return db.Create(&authModel.TokenBlacklist{
		Token:     raw,
		ExpiredAt: expiry,
	}).Error
}
