// Package token signs and verifies the opaque bearer tokens used both for
// session identity and for one-time order-confirmation links. Decoding fails
// closed: malformed or tampered input yields ok=false, never a panic.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the session payload carried under the "user" claim.
type Identity struct {
	CustomerID int    `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

type sessionClaims struct {
	User Identity `json:"user"`
	jwt.RegisteredClaims
}

type confirmClaims struct {
	CustomerID int `json:"customer_id"`
	OrderID    int `json:"order_id"`
	jwt.RegisteredClaims
}

const SessionTTL = 24 * time.Hour

type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec { return &Codec{secret: []byte(secret)} }

func (c *Codec) SignSession(id Identity) (string, error) {
	claims := sessionClaims{
		User: id,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

func (c *Codec) DecodeSession(tok string) (Identity, bool) {
	var claims sessionClaims
	if !c.parse(tok, &claims) || claims.User.CustomerID == 0 {
		return Identity{}, false
	}
	return claims.User, true
}

// SignConfirmation issues the token embedded in order-confirmation links.
// Signature validity is the entire authorization check on the status route,
// so these tokens carry no expiry.
func (c *Codec) SignConfirmation(customerID, orderID int) (string, error) {
	claims := confirmClaims{
		CustomerID: customerID,
		OrderID:    orderID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

func (c *Codec) DecodeConfirmation(tok string) (customerID, orderID int, ok bool) {
	var claims confirmClaims
	if !c.parse(tok, &claims) || claims.OrderID == 0 {
		return 0, 0, false
	}
	return claims.CustomerID, claims.OrderID, true
}

func (c *Codec) parse(tok string, claims jwt.Claims) bool {
	parsed, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	return err == nil && parsed.Valid
}
