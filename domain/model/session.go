package model

import "github.com/golang-jwt/jwt"

// SessionClaims is the JWT payload minted after a successful OAuth exchange.
// UserAccessToken is the long-lived user token needed to list pages; it lives
// only inside the signed cookie and is never written to responses or logs.
type SessionClaims struct {
	jwt.StandardClaims
	UserID          string `json:"user_id"`
	UserName        string `json:"user_name"`
	UserAccessToken string `json:"user_access_token"`
}
