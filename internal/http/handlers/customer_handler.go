package handlers

import (
	applog "tshirtshop/internal/log"
	"tshirtshop/internal/services"
	"tshirtshop/internal/token"
	"tshirtshop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	Auth *services.AuthService
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *CustomerHandler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest("USR_10", "invalid request body", "")
	}
	if req.Name == "" {
		return badRequest("USR_02", "the field is required", "name")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return badRequest("USR_03", "the email is invalid", "email")
	}
	if req.Password == "" {
		return badRequest("USR_02", "the field is required", "password")
	}
	if _, err := h.Auth.Register(req.Name, email, req.Password); err != nil {
		if err == services.ErrEmailTaken {
			return badRequest("USR_04", "the email already exists", "email")
		}
		return err
	}
	applog.Audit(c, "customer.register", map[string]any{"email": email})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Customer created"})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *CustomerHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest("USR_10", "invalid request body", "")
	}
	customer, tok, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		if err == services.ErrBadCreds {
			applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email})
			return unauthorized("USR_01", "email or password is invalid")
		}
		return err
	}
	applog.Audit(c, "auth.login.success", map[string]any{"email": req.Email})
	c.Set(HeaderUserKey, "Bearer "+tok)
	return c.JSON(fiber.Map{
		"customer":    customer,
		"accessToken": "Bearer " + tok,
		"expires_in":  token.SessionTTL.String(),
	})
}

func (h *CustomerHandler) Profile(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest("USR_02", "the customer id is invalid", "id")
	}
	customer, err := h.Auth.Profile(id)
	if err != nil {
		return mapServiceErr(err, "USR_05", "customer not found")
	}
	return c.JSON(customer)
}

type profileReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	DayPhone string `json:"day_phone"`
	EvePhone string `json:"eve_phone"`
	MobPhone string `json:"mob_phone"`
}

func (h *CustomerHandler) UpdateProfile(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest("USR_02", "the customer id is invalid", "id")
	}
	var req profileReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest("USR_10", "invalid request body", "")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return badRequest("USR_03", "the email is invalid", "email")
	}
	customer, err := h.Auth.UpdateProfile(id, req.Name, email, req.Password, req.DayPhone, req.EvePhone, req.MobPhone)
	if err != nil {
		return mapServiceErr(err, "USR_05", "customer not found")
	}
	applog.Audit(c, "customer.profile.update", map[string]any{"customer_id": id})
	return c.JSON(customer)
}

type addressReq struct {
	Address1         string `json:"address_1"`
	Address2         string `json:"address_2"`
	City             string `json:"city"`
	Region           string `json:"region"`
	PostalCode       string `json:"postal_code"`
	Country          string `json:"country"`
	ShippingRegionID int    `json:"shipping_region_id"`
}

func (h *CustomerHandler) UpdateAddress(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest("USR_02", "the customer id is invalid", "id")
	}
	var req addressReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest("USR_10", "invalid request body", "")
	}
	customer, err := h.Auth.UpdateAddress(id, req.Address1, req.Address2, req.City, req.Region, req.PostalCode, req.Country, req.ShippingRegionID)
	if err != nil {
		return mapServiceErr(err, "USR_05", "customer not found")
	}
	applog.Audit(c, "customer.address.update", map[string]any{"customer_id": id})
	return c.JSON(customer)
}

type creditCardReq struct {
	CreditCard string `json:"credit_card"`
}

func (h *CustomerHandler) UpdateCreditCard(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest("USR_02", "the customer id is invalid", "id")
	}
	var req creditCardReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest("USR_10", "invalid request body", "")
	}
	if req.CreditCard == "" {
		return badRequest("USR_02", "the field is required", "credit_card")
	}
	customer, err := h.Auth.UpdateCreditCard(id, req.CreditCard)
	if err != nil {
		return mapServiceErr(err, "USR_05", "customer not found")
	}
	applog.Audit(c, "customer.card.update", map[string]any{"customer_id": id})
	return c.JSON(customer)
}
