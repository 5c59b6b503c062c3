package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether the stored session token is a JWT whose "exp"
// claim lies in the past. The signature is NOT verified: the client has no
// signing key and only uses the claim to skip a restore round trip that the
// server would reject anyway.
//
// Tokens that cannot be parsed or carry no expiry are treated as not expired
// and left for the server to judge.
func TokenExpired(tokenString string, now time.Time) bool {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(now)
}
