// internal/services/fakes_test.go
package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v74"

	"github.com/typackaging/backend/internal/models"
	"github.com/typackaging/backend/internal/repository"
)

// In-memory repository fakes. They implement the same contracts the
// database-backed repositories do, including the conditional stock
// decrement, so service behavior can be exercised without Postgres.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repository.ErrDuplicate
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			found := *u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		found := *u
		return &found, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Save(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

type fakeCompanyRepo struct {
	mu        sync.Mutex
	companies map[uuid.UUID]*models.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[uuid.UUID]*models.Company)}
}

func (r *fakeCompanyRepo) Create(company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	stored := *company
	r.companies[company.ID] = &stored
	return nil
}

func (r *fakeCompanyRepo) FindByID(id uuid.UUID) (*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.companies[id]; ok {
		found := *c
		return &found, nil
	}
	return nil, repository.ErrNotFound
}

type fakeCategoryRepo struct {
	categories []models.Category
}

func (r *fakeCategoryRepo) ListOrdered() ([]models.Category, error) {
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *fakeCategoryRepo) FindByID(id uuid.UUID) (*models.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*models.Product)}
}

func (r *fakeProductRepo) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Slug == product.Slug || p.SKU == product.SKU {
			return repository.ErrDuplicate
		}
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	stored := *product
	r.products[product.ID] = &stored
	return nil
}

func (r *fakeProductRepo) FindByID(id uuid.UUID) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		found := *p
		return &found, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeProductRepo) FindBySlug(slug string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Slug == slug {
			found := *p
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeProductRepo) FindBySKU(sku string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.SKU == sku {
			found := *p
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeProductRepo) Search(filter repository.ProductFilter) ([]models.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Product
	for _, p := range r.products {
		if filter.ActiveOnly && !p.IsActive {
			continue
		}
		if filter.CategoryID != nil && p.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Material != "" && p.Material != filter.Material {
			continue
		}
		if filter.Featured != nil && p.IsFeatured != *filter.Featured {
			continue
		}
		if filter.Search != "" && !productMatches(p, filter.Search) {
			continue
		}
		matched = append(matched, *p)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Slug < matched[j].Slug
	})

	return matched, int64(len(matched)), nil
}

func productMatches(p *models.Product, search string) bool {
	needle := strings.ToLower(search)
	for _, haystack := range []string{p.NameEn, p.NameHe, p.DescriptionEn, p.DescriptionHe, p.SKU} {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}
	return false
}

func (r *fakeProductRepo) Updates(id uuid.UUID, updates map[string]interface{}) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	for column, value := range updates {
		switch column {
		case "slug":
			slug := value.(string)
			for other, op := range r.products {
				if other != id && op.Slug == slug {
					return nil, repository.ErrDuplicate
				}
			}
			p.Slug = slug
		case "sku":
			sku := value.(string)
			for other, op := range r.products {
				if other != id && op.SKU == sku {
					return nil, repository.ErrDuplicate
				}
			}
			p.SKU = sku
		case "name_en":
			p.NameEn = value.(string)
		case "name_he":
			p.NameHe = value.(string)
		case "price":
			p.Price = value.(decimal.Decimal)
		case "stock":
			p.Stock = value.(int)
		case "is_active":
			p.IsActive = value.(bool)
		case "is_featured":
			p.IsFeatured = value.(bool)
		}
	}

	found := *p
	return &found, nil
}

func (r *fakeProductRepo) Deactivate(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.IsActive = false
	return nil
}

// stubPaymentIntents satisfies PaymentIntentCreator without talking to Stripe.
type stubPaymentIntents struct {
	err error
}

func (s *stubPaymentIntents) CreatePaymentIntent(order *models.Order) (*stripe.PaymentIntent, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &stripe.PaymentIntent{ClientSecret: "pi_test_secret"}, nil
}

// fakeOrderRepo shares the product fake so stock decrements are observable.
// The mutex stands in for the database transaction: checks and decrements
// happen atomically, matching the conditional UPDATE contract.
type fakeOrderRepo struct {
	mu       sync.Mutex
	products *fakeProductRepo
	orders   map[uuid.UUID]*models.Order
}

func newFakeOrderRepo(products *fakeProductRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		products: products,
		orders:   make(map[uuid.UUID]*models.Order),
	}
}

func (r *fakeOrderRepo) CreateWithStockDecrement(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products.mu.Lock()
	defer r.products.mu.Unlock()

	for _, item := range order.Items {
		p, ok := r.products.products[item.ProductID]
		if !ok || p.Stock < item.Quantity {
			return repository.ErrInsufficientStock
		}
	}
	for _, item := range order.Items {
		r.products.products[item.ProductID].Stock -= item.Quantity
	}

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
		order.Items[i].OrderID = order.ID
	}

	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) FindByID(id uuid.UUID) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		found := *o
		return &found, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeOrderRepo) ListByCompany(companyID uuid.UUID, limit int) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Order
	for _, o := range r.orders {
		if o.CompanyID == companyID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
