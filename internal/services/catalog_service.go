package services

import (
	"database/sql"
	"errors"

	"tshirtshop/internal/domain"
	"tshirtshop/internal/repos"
	"tshirtshop/internal/validate"
)

type CatalogService struct {
	Prods   *repos.ProductRepo
	Catalog *repos.CatalogRepo
	Reviews *repos.ReviewRepo
}

func NewCatalogService(prods *repos.ProductRepo, catalog *repos.CatalogRepo, reviews *repos.ReviewRepo) *CatalogService {
	return &CatalogService{Prods: prods, Catalog: catalog, Reviews: reviews}
}

// ProductPage is the count+rows shape every product list endpoint returns.
type ProductPage struct {
	Count int              `json:"count"`
	Rows  []domain.Product `json:"rows"`
}

func (s *CatalogService) ListProducts(p validate.Paging) (ProductPage, error) {
	count, rows, err := s.Prods.List(p.Limit, p.SQLOffset(), p.DescriptionLength)
	return ProductPage{Count: count, Rows: rows}, err
}

func (s *CatalogService) SearchProducts(query string, allWords bool, p validate.Paging) (ProductPage, error) {
	count, rows, err := s.Prods.Search(query, allWords, p.Limit, p.SQLOffset(), p.DescriptionLength)
	return ProductPage{Count: count, Rows: rows}, err
}

func (s *CatalogService) ProductsInCategory(categoryID int, p validate.Paging) (ProductPage, error) {
	count, rows, err := s.Prods.ByCategory(categoryID, p.Limit, p.SQLOffset(), p.DescriptionLength)
	return ProductPage{Count: count, Rows: rows}, err
}

func (s *CatalogService) ProductsInDepartment(departmentID int, p validate.Paging) (ProductPage, error) {
	count, rows, err := s.Prods.ByDepartment(departmentID, p.Limit, p.SQLOffset(), p.DescriptionLength)
	return ProductPage{Count: count, Rows: rows}, err
}

func (s *CatalogService) GetProduct(id int) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	return p, notFound(err)
}

func (s *CatalogService) ProductAttributes(productID int) ([]domain.ProductAttribute, error) {
	return s.Prods.Attributes(productID)
}

func (s *CatalogService) ListDepartments() ([]domain.Department, error) {
	return s.Catalog.ListDepartments()
}

func (s *CatalogService) GetDepartment(id int) (domain.Department, error) {
	d, err := s.Catalog.GetDepartment(id)
	return d, notFound(err)
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Catalog.ListCategories()
}

func (s *CatalogService) GetCategory(id int) (domain.Category, error) {
	c, err := s.Catalog.GetCategory(id)
	return c, notFound(err)
}

func (s *CatalogService) CategoriesInDepartment(departmentID int) ([]domain.Category, error) {
	return s.Catalog.CategoriesInDepartment(departmentID)
}

func (s *CatalogService) ListAttributes() ([]domain.Attribute, error) {
	return s.Catalog.ListAttributes()
}

func (s *CatalogService) GetAttribute(id int) (domain.Attribute, error) {
	a, err := s.Catalog.GetAttribute(id)
	return a, notFound(err)
}

func (s *CatalogService) AttributeValues(attributeID int) ([]domain.AttributeValue, error) {
	return s.Catalog.AttributeValues(attributeID)
}

func (s *CatalogService) ListTaxes() ([]domain.Tax, error) { return s.Catalog.ListTaxes() }

func (s *CatalogService) GetTax(id int) (domain.Tax, error) {
	t, err := s.Catalog.GetTax(id)
	return t, notFound(err)
}

func (s *CatalogService) ListShippingRegions() ([]domain.ShippingRegion, error) {
	return s.Catalog.ListShippingRegions()
}

func (s *CatalogService) ShippingInRegion(regionID int) ([]domain.Shipping, error) {
	return s.Catalog.ShippingInRegion(regionID)
}

func (s *CatalogService) ProductReviews(productID int) ([]domain.ProductReview, error) {
	return s.Reviews.ByProduct(productID)
}

// PostReview rejects a second review from the same customer for the same
// product.
func (s *CatalogService) PostReview(customerID, productID int, review string, rating int) (domain.Review, error) {
	if _, err := s.Prods.Get(productID); err != nil {
		return domain.Review{}, notFound(err)
	}
	exists, err := s.Reviews.Exists(customerID, productID)
	if err != nil {
		return domain.Review{}, err
	}
	if exists {
		return domain.Review{}, ErrAlreadyReviewed
	}
	return s.Reviews.Create(customerID, productID, review, rating)
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
