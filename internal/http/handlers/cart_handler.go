package handlers

import (
	"tshirtshop/internal/services"
	"tshirtshop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) GenerateUniqueID(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"cart_id": h.Cart.GenerateCartID()})
}

type addItemReq struct {
	CartID     string `json:"cart_id"`
	ProductID  int    `json:"product_id"`
	Attributes string `json:"attributes"`
	Quantity   int    `json:"quantity"`
	// accepted but ignored: items are always persisted buy-now
	BuyNow bool `json:"buy_now"`
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req addItemReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest("CRT_10", "invalid request body", "")
	}
	if req.CartID == "" {
		return badRequest("CRT_02", "the field is required", "cart_id")
	}
	if req.ProductID < 1 {
		return badRequest("CRT_03", "the product id is invalid", "product_id")
	}
	item, err := h.Cart.AddItem(req.CartID, req.ProductID, req.Attributes, req.Quantity)
	if err != nil {
		return mapServiceErr(err, "PRD_01", "product not found")
	}
	return c.JSON(item)
}

func (h *CartHandler) Get(c *fiber.Ctx) error {
	cartID := c.Params("cart_id")
	items, err := h.Cart.GetCart(cartID)
	if err != nil {
		return mapServiceErr(err, "CRT_01", "cart not found")
	}
	return c.JSON(items)
}

type updateItemReq struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	itemID, ok := validate.ID(c.Params("item_id"))
	if !ok {
		return badRequest("CRT_04", "the item id is invalid", "item_id")
	}
	var req updateItemReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest("CRT_10", "invalid request body", "")
	}
	item, err := h.Cart.UpdateItem(itemID, req.Quantity)
	if err != nil {
		return mapServiceErr(err, "CRT_05", "item not found")
	}
	return c.JSON(item)
}

func (h *CartHandler) Empty(c *fiber.Ctx) error {
	if err := h.Cart.EmptyCart(c.Params("cart_id")); err != nil {
		return err
	}
	return c.JSON([]any{})
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	itemID, ok := validate.ID(c.Params("item_id"))
	if !ok {
		return badRequest("CRT_04", "the item id is invalid", "item_id")
	}
	if err := h.Cart.RemoveItem(itemID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "successfully removed"})
}
