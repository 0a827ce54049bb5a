package service

import (
	"context"
	"sort"

	"github.com/cloud-wave-best-zizon/stockify-web/internal/domain"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/events"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/repository"
)

// --- Mock web services ---

type MockCategoryRepo struct {
	Categories []domain.Category
	ListErr    error
	GetErr     error
	ListCalls  int
	GetCalls   int
}

func (m *MockCategoryRepo) ListCategories(context.Context) ([]domain.Category, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Categories, nil
}

func (m *MockCategoryRepo) GetCategory(_ context.Context, id int64) (*domain.Category, error) {
	m.GetCalls++
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, c := range m.Categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

type savedProduct struct {
	Product domain.Product
	State   domain.SaveState
}

type MockProductRepo struct {
	Products  map[int64]domain.Product
	NextID    int64
	ListErr   error
	SaveErr   error
	ListCalls int
	GetCalls  int
	Saves     []savedProduct
	Deletes   []int64
}

func newMockProductRepo(products ...domain.Product) *MockProductRepo {
	m := &MockProductRepo{Products: map[int64]domain.Product{}, NextID: 100}
	for _, p := range products {
		m.Products[p.ID] = p
	}
	return m
}

func (m *MockProductRepo) ListProducts(context.Context) ([]domain.Product, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]domain.Product, 0, len(m.Products))
	for _, p := range m.Products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockProductRepo) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	m.GetCalls++
	p, ok := m.Products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &p, nil
}

func (m *MockProductRepo) SaveProduct(_ context.Context, p *domain.Product, state domain.SaveState) error {
	m.Saves = append(m.Saves, savedProduct{Product: *p, State: state})
	if m.SaveErr != nil {
		return m.SaveErr
	}
	stored := *p
	if state == domain.StateNew {
		stored.ID = m.NextID
		m.NextID++
	}
	m.Products[stored.ID] = stored
	return nil
}

func (m *MockProductRepo) DeleteProduct(_ context.Context, id int64) error {
	m.Deletes = append(m.Deletes, id)
	if _, ok := m.Products[id]; !ok {
		return &repository.FaultError{Code: "S:Server", Message: "producto no existe"}
	}
	delete(m.Products, id)
	return nil
}

type MockStockRepo struct {
	Quantities map[int64]int
	Err        error
	Calls      int
}

func (m *MockStockRepo) CurrentStock(_ context.Context, productID int64) (int, bool, error) {
	m.Calls++
	if m.Err != nil {
		return 0, false, m.Err
	}
	q, ok := m.Quantities[productID]
	return q, ok, nil
}

type savedCompany struct {
	Company domain.Company
	State   domain.SaveState
}

type MockCompanyRepo struct {
	Companies map[int64]domain.Company
	NextID    int64
	ListErr   error
	SaveErr   error
	ListCalls int
	GetCalls  int
	Saves     []savedCompany
	Deletes   []int64
}

func newMockCompanyRepo(companies ...domain.Company) *MockCompanyRepo {
	m := &MockCompanyRepo{Companies: map[int64]domain.Company{}, NextID: 50}
	for _, c := range companies {
		m.Companies[c.ID] = c
	}
	return m
}

func (m *MockCompanyRepo) ListCompanies(context.Context) ([]domain.Company, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]domain.Company, 0, len(m.Companies))
	for _, c := range m.Companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockCompanyRepo) GetCompany(_ context.Context, id int64) (*domain.Company, error) {
	m.GetCalls++
	c, ok := m.Companies[id]
	if !ok {
		return nil, repository.ErrCompanyNotFound
	}
	return &c, nil
}

func (m *MockCompanyRepo) SaveCompany(_ context.Context, c *domain.Company, state domain.SaveState) error {
	m.Saves = append(m.Saves, savedCompany{Company: *c, State: state})
	if m.SaveErr != nil {
		return m.SaveErr
	}
	stored := *c
	if state == domain.StateNew {
		stored.ID = m.NextID
		m.NextID++
	}
	m.Companies[stored.ID] = stored
	return nil
}

func (m *MockCompanyRepo) DeleteCompany(_ context.Context, id int64) error {
	m.Deletes = append(m.Deletes, id)
	if _, ok := m.Companies[id]; !ok {
		return &repository.FaultError{Code: "S:Server", Message: "empresa no existe"}
	}
	delete(m.Companies, id)
	return nil
}

type recordingPublisher struct {
	events []events.InventoryEvent
}

func (p *recordingPublisher) Publish(_ context.Context, e events.InventoryEvent) error {
	p.events = append(p.events, e)
	return nil
}
