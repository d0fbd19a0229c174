package helper

import (
	"cinema_ticket/model"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const AccessTokenTTL = 60 * time.Minute

// HMAC chấp nhận key rỗng, nên chặn ở đây
var ErrEmptySecret = errors.New("jwt secret is empty")

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim, secret []byte, ttl time.Duration) (model.TokenData, error) {
	if len(secret) == 0 {
		return model.TokenData{}, ErrEmptySecret
	}
	exp := time.Now().Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": tokenClaim.Username,
		"role":     tokenClaim.Role,
		"exp":      exp.Unix(),
	})

	t, err := token.SignedString(secret)
	if err != nil {
		return model.TokenData{}, err
	}
	return model.TokenData{AccessToken: t, ExpiresAt: exp.Unix()}, nil
}

func ParseToken(tokenString string, secret []byte) (*jwt.Token, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Xác thực thuật toán ký là HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
}

func ClaimFromToken(token *jwt.Token) (model.TokenClaim, bool) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	return model.TokenClaim{Username: username, Role: role}, username != ""
}
