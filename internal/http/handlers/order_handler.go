package handlers

import (
	applog "tshirtshop/internal/log"
	"tshirtshop/internal/services"
	"tshirtshop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Orders *services.OrderService
}

type createOrderReq struct {
	CartID     string `json:"cart_id"`
	ShippingID int    `json:"shipping_id"`
	TaxID      int    `json:"tax_id"`
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req createOrderReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest("ORD_10", "invalid request body", "")
	}
	if req.CartID == "" {
		return badRequest("ORD_11", "the field is required", "cart_id")
	}
	if req.ShippingID < 1 || req.TaxID < 1 {
		return badRequest("ORD_12", "shipping_id and tax_id are required", "")
	}
	orderID, err := h.Orders.Create(req.CartID, currentCustomer(c).CustomerID, req.ShippingID, req.TaxID)
	if err != nil {
		return mapServiceErr(err, "ORD_13", "shipping or tax not found")
	}
	applog.Audit(c, "order.create", map[string]any{"order_id": orderID, "cart_id": req.CartID})
	return c.JSON(fiber.Map{"order_id": orderID})
}

// UpdateStatus handles the emailed confirmation link. Decoding the signed
// token is the entire authorization check; replaying the link re-sets the
// same status.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	if err := h.Orders.ConfirmStatus(c.Params("token")); err != nil {
		return mapServiceErr(err, "ORD_01", "order not found")
	}
	applog.Audit(c, "order.confirm", nil)
	return c.JSON(fiber.Map{"message": "Status updated successfully"})
}

func (h *OrderHandler) InCustomer(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("customer_id"))
	if !ok {
		return badRequest("ORD_14", "the customer id is invalid", "customer_id")
	}
	orders, err := h.Orders.ListByCustomer(id)
	if err != nil {
		return mapServiceErr(err, "ORD_01", "no orders were found")
	}
	return c.JSON(orders)
}

func (h *OrderHandler) Summary(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("order_id"))
	if !ok {
		return badRequest("ORD_15", "the order id is invalid", "order_id")
	}
	summary, err := h.Orders.Summary(id)
	if err != nil {
		return mapServiceErr(err, "ORD_01", "order not found")
	}
	return c.JSON(summary)
}

func (h *OrderHandler) ShortDetail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("order_id"))
	if !ok {
		return badRequest("ORD_15", "the order id is invalid", "order_id")
	}
	o, err := h.Orders.ShortDetail(id)
	if err != nil {
		return mapServiceErr(err, "ORD_01", "order not found")
	}
	return c.JSON(o)
}

type chargeReq struct {
	OrderID     int    `json:"order_id"`
	Email       string `json:"email"`
	StripeToken string `json:"stripeToken"`
}

func (h *OrderHandler) StripeCharge(c *fiber.Ctx) error {
	var req chargeReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest("STR_10", "invalid request body", "")
	}
	if req.OrderID < 1 {
		return badRequest("ORD_15", "the order id is invalid", "order_id")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return badRequest("USR_03", "the email is invalid", "email")
	}
	if req.StripeToken == "" {
		return badRequest("STR_01", "the field is required", "stripeToken")
	}
	result, err := h.Orders.ProcessPayment(req.OrderID, currentCustomer(c).CustomerID, email, req.StripeToken)
	if err != nil {
		return mapServiceErr(err, "ORD_01", "order not found")
	}
	applog.Audit(c, "order.charge", map[string]any{"order_id": req.OrderID, "amount": result.Amount})
	return c.Status(fiber.StatusCreated).JSON(result)
}
