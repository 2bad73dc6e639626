package handlers

import (
	"tshirtshop/internal/services"
	"tshirtshop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func paging(c *fiber.Ctx) validate.Paging {
	return validate.PageParams(
		c.Query("page"),
		c.Query("limit"),
		c.Query("offset"),
		c.Query("description_length"),
	)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	page, err := h.Catalog.ListProducts(paging(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *ProductHandler) Search(c *fiber.Ctx) error {
	query := c.Query("query_string")
	if query == "" {
		return badRequest("PRD_10", "query_string is required", "query_string")
	}
	allWords := c.Query("all_words") == "on"
	page, err := h.Catalog.SearchProducts(query, allWords, paging(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *ProductHandler) InCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("category_id"))
	if !ok {
		return badRequest("PRD_11", "the category id is invalid", "category_id")
	}
	page, err := h.Catalog.ProductsInCategory(id, paging(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *ProductHandler) InDepartment(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("department_id"))
	if !ok {
		return badRequest("PRD_12", "the department id is invalid", "department_id")
	}
	page, err := h.Catalog.ProductsInDepartment(id, paging(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("product_id"))
	if !ok {
		return badRequest("PRD_13", "the product id is invalid", "product_id")
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return mapServiceErr(err, "PRD_01", "product not found")
	}
	return c.JSON(p)
}

func (h *ProductHandler) Attributes(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("product_id"))
	if !ok {
		return badRequest("PRD_13", "the product id is invalid", "product_id")
	}
	attrs, err := h.Catalog.ProductAttributes(id)
	if err != nil {
		return err
	}
	return c.JSON(attrs)
}

func (h *ProductHandler) Reviews(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("product_id"))
	if !ok {
		return badRequest("PRD_13", "the product id is invalid", "product_id")
	}
	reviews, err := h.Catalog.ProductReviews(id)
	if err != nil {
		return err
	}
	return c.JSON(reviews)
}

type reviewReq struct {
	Review string `json:"review"`
	Rating int    `json:"rating"`
}

func (h *ProductHandler) PostReview(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("product_id"))
	if !ok {
		return badRequest("PRD_13", "the product id is invalid", "product_id")
	}
	var req reviewReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest("PRD_14", "invalid request body", "")
	}
	if req.Review == "" {
		return badRequest("PRD_14", "the field is required", "review")
	}
	if !validate.Rating(req.Rating) {
		return badRequest("PRD_15", "rating must be between 1 and 5", "rating")
	}
	review, err := h.Catalog.PostReview(currentCustomer(c).CustomerID, id, req.Review, req.Rating)
	if err != nil {
		return mapServiceErr(err, "PRD_01", "product not found")
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
