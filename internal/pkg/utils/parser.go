package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// ParseRoleJWT extracts the department role and actor name from a signed
// token. The service never mints roles itself; it only verifies the claim.
func ParseRoleJWT(tokenString, secret string) (role, actorName string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	role, ok = claims["role"].(string)
	if !ok || role == "" {
		return "", "", errors.New("token carries no role claim")
	}
	actorName, _ = claims["name"].(string)
	return role, actorName, nil
}
