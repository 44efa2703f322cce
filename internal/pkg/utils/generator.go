package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateRoleJWT issues the signed role claim the service trusts. The
// authentication collaborator is the normal issuer; this is used by tooling
// and tests.
func GenerateRoleJWT(role, actorName, secret string, jwtExpiryTimeInHours int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"name": actorName,
		"exp":  time.Now().Add(time.Duration(jwtExpiryTimeInHours) * time.Hour).Unix(),
	})
	return token.SignedString([]byte(secret))
}
