package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tshirtshop/internal/repos"
	"tshirtshop/internal/services"
	"tshirtshop/internal/validate"
)

func catalogFixture(t *testing.T) (*services.CatalogService, int) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	custID, err := repos.NewCustomerRepo(db).Create("Alice", "alice@example.com", "$2a$12$hash")
	require.NoError(t, err)
	svc := services.NewCatalogService(repos.NewProductRepo(db), repos.NewCatalogRepo(db), repos.NewReviewRepo(db))
	return svc, custID
}

func TestListProductsCountAndRows(t *testing.T) {
	svc, _ := catalogFixture(t)

	page, err := svc.ListProducts(validate.PageParams("", "", "", ""))
	require.NoError(t, err)
	require.Equal(t, 8, page.Count)
	require.Len(t, page.Rows, 8)

	page, err = svc.ListProducts(validate.PageParams("2", "3", "", ""))
	require.NoError(t, err)
	require.Equal(t, 8, page.Count)
	require.Len(t, page.Rows, 3)
	require.Equal(t, 4, page.Rows[0].ProductID)
}

func TestDescriptionTruncation(t *testing.T) {
	svc, _ := catalogFixture(t)

	page, err := svc.ListProducts(validate.PageParams("", "", "", "10"))
	require.NoError(t, err)
	for _, p := range page.Rows {
		require.LessOrEqual(t, len(p.Description), 13) // 10 chars + "..."
	}
}

func TestSearchAllWords(t *testing.T) {
	svc, _ := catalogFixture(t)

	// "shirt" appears in several descriptions; "iconic" in one
	any, err := svc.SearchProducts("shirt iconic", false, validate.PageParams("", "", "", ""))
	require.NoError(t, err)
	all, err := svc.SearchProducts("shirt iconic", true, validate.PageParams("", "", "", ""))
	require.NoError(t, err)
	require.Greater(t, any.Count, all.Count)
	require.Equal(t, 1, all.Count)
	require.Equal(t, "Arc d'Triomphe", all.Rows[0].Name)
}

func TestProductsInDepartmentDedup(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	// put product 1 in a second category of the same department
	_, err = db.Exec(`INSERT INTO product_category(product_id, category_id) VALUES (1, 2)`)
	require.NoError(t, err)
	svc := services.NewCatalogService(repos.NewProductRepo(db), repos.NewCatalogRepo(db), repos.NewReviewRepo(db))

	page, err := svc.ProductsInDepartment(1, validate.PageParams("", "", "", ""))
	require.NoError(t, err)
	seen := map[int]bool{}
	for _, p := range page.Rows {
		require.False(t, seen[p.ProductID], "product %d returned twice", p.ProductID)
		seen[p.ProductID] = true
	}
	require.Equal(t, page.Count, len(page.Rows))
}

func TestGetProductNotFound(t *testing.T) {
	svc, _ := catalogFixture(t)

	p, err := svc.GetProduct(1)
	require.NoError(t, err)
	require.Equal(t, "Arc d'Triomphe", p.Name)

	_, err = svc.GetProduct(999)
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestProductAttributesResolveNames(t *testing.T) {
	svc, _ := catalogFixture(t)

	attrs, err := svc.ProductAttributes(1)
	require.NoError(t, err)
	require.NotEmpty(t, attrs)
	names := map[string]bool{}
	for _, a := range attrs {
		names[a.AttributeName] = true
		require.NotEmpty(t, a.AttributeValue)
	}
	require.True(t, names["Size"])
	require.True(t, names["Color"])
}

func TestPostReviewConflict(t *testing.T) {
	svc, custID := catalogFixture(t)

	first, err := svc.PostReview(custID, 1, "Great shirt", 5)
	require.NoError(t, err)

	_, err = svc.PostReview(custID, 1, "Changed my mind", 2)
	require.ErrorIs(t, err, services.ErrAlreadyReviewed)

	// the first review is unaffected
	reviews, err := svc.ProductReviews(1)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.Equal(t, first.Review, reviews[0].Review)
	require.Equal(t, 5, reviews[0].Rating)
}

func TestPostReviewUnknownProduct(t *testing.T) {
	svc, custID := catalogFixture(t)

	_, err := svc.PostReview(custID, 999, "ghost", 3)
	require.ErrorIs(t, err, services.ErrNotFound)
}
