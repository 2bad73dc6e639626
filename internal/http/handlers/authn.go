package handlers

import (
	"strings"

	applog "tshirtshop/internal/log"
	"tshirtshop/internal/token"

	"github.com/gofiber/fiber/v2"
)

// HeaderUserKey carries the bearer token, with or without a "Bearer " prefix.
const HeaderUserKey = "user-key"

// Authenticate guards protected routes. The token is the whole credential:
// no session store is consulted, so a signed token stays valid until expiry.
func Authenticate(codec *token.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(HeaderUserKey)
		if raw == "" {
			applog.Security(c, "auth.missing", nil)
			return unauthorized("AUT_01", "authorization code is empty")
		}
		id, ok := codec.DecodeSession(strings.TrimPrefix(raw, "Bearer "))
		if !ok {
			applog.Security(c, "auth.invalid", nil)
			return unauthorized("AUT_02", "access unauthorized")
		}
		c.Locals("customer", id)
		c.Locals("customer_id", id.CustomerID)
		return c.Next()
	}
}

func currentCustomer(c *fiber.Ctx) token.Identity {
	id, _ := c.Locals("customer").(token.Identity)
	return id
}
