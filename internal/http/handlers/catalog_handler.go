package handlers

import (
	"tshirtshop/internal/services"
	"tshirtshop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the reference side of the catalog: departments,
// categories, attributes, taxes and shipping options.
type CatalogHandler struct {
	Catalog *services.CatalogService
}

func (h *CatalogHandler) ListDepartments(c *fiber.Ctx) error {
	out, err := h.Catalog.ListDepartments()
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *CatalogHandler) GetDepartment(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest("DEP_01", "the department id is invalid", "id")
	}
	d, err := h.Catalog.GetDepartment(id)
	if err != nil {
		return mapServiceErr(err, "DEP_02", "department not found")
	}
	return c.JSON(d)
}

func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.Catalog.ListCategories()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"rows": out})
}

func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest("CAT_01", "the category id is invalid", "id")
	}
	cat, err := h.Catalog.GetCategory(id)
	if err != nil {
		return mapServiceErr(err, "CAT_02", "category not found")
	}
	return c.JSON(cat)
}

func (h *CatalogHandler) CategoriesInDepartment(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("department_id"))
	if !ok {
		return badRequest("DEP_01", "the department id is invalid", "department_id")
	}
	out, err := h.Catalog.CategoriesInDepartment(id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *CatalogHandler) ListAttributes(c *fiber.Ctx) error {
	out, err := h.Catalog.ListAttributes()
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *CatalogHandler) GetAttribute(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest("ATT_01", "the attribute id is invalid", "id")
	}
	a, err := h.Catalog.GetAttribute(id)
	if err != nil {
		return mapServiceErr(err, "ATT_02", "attribute not found")
	}
	return c.JSON(a)
}

func (h *CatalogHandler) AttributeValues(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest("ATT_01", "the attribute id is invalid", "id")
	}
	out, err := h.Catalog.AttributeValues(id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *CatalogHandler) ListTaxes(c *fiber.Ctx) error {
	out, err := h.Catalog.ListTaxes()
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *CatalogHandler) GetTax(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest("TAX_01", "the tax id is invalid", "id")
	}
	t, err := h.Catalog.GetTax(id)
	if err != nil {
		return mapServiceErr(err, "TAX_02", "tax not found")
	}
	return c.JSON(t)
}

func (h *CatalogHandler) ListShippingRegions(c *fiber.Ctx) error {
	out, err := h.Catalog.ListShippingRegions()
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *CatalogHandler) ShippingInRegion(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("shipping_region_id"))
	if !ok {
		return badRequest("SHP_01", "the shipping region id is invalid", "shipping_region_id")
	}
	out, err := h.Catalog.ShippingInRegion(id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
