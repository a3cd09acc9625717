package utils

import (
	"time"

	"pagecaster/domain/model"
	"pagecaster/infrastructure/logger"

	"github.com/golang-jwt/jwt"
)

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

// GenerateSessionToken signs the session claims with HS256. The session
// lifetime is one hour regardless of the embedded access token's expiry.
func GenerateSessionToken(claims *model.SessionClaims, secretKey string) (string, error) {
	claims.ExpiresAt = time.Now().Add(time.Hour).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while generate token")
		return "", err
	}
	return tokenString, nil
}
