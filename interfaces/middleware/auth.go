package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"pagecaster/domain/dto"
	"pagecaster/domain/model"
	"pagecaster/infrastructure/configuration"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const sessionCookieName = "session"

// Auth verifies the session JWT from the session cookie or an Authorization
// bearer header and stashes the claims in the gin context.
func Auth() gin.HandlerFunc {
	var res dto.Res
	res.ResponseCode = "401"
	res.ResponseMessage = "Unauthorized"

	return func(ctx *gin.Context) {
		raw := sessionToken(ctx)
		if raw == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		claims, token, err := getClaims(raw, configuration.C.App.SecretKey)
		if err != nil || token == nil || !token.Valid {
			abortRes := res
			abortRes.ResponseMessage = describeTokenError(err)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, abortRes)
			return
		}

		ctx.Set("user_id", claims.UserID)
		ctx.Set("user_access_token", claims.UserAccessToken)
		ctx.Next()
	}
}

func sessionToken(ctx *gin.Context) string {
	if cookie, err := ctx.Cookie(sessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	authorization := ctx.Request.Header.Get("Authorization")
	if authorization == "" {
		return ""
	}
	parts := strings.Split(authorization, "Bearer ")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

func describeTokenError(err error) string {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return "That's not even a token"
		}
		if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return "Timing is everything"
		}
		return fmt.Sprintf("Couldn't handle this token:%v", err)
	}
	return "Unauthorized"
}

func getClaims(raw, secretKey string) (*model.SessionClaims, *jwt.Token, error) {
	claims := &model.SessionClaims{}
	token, err := jwt.ParseWithClaims(
		raw,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		},
	)
	return claims, token, err
}
