package repository

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/cloud-wave-best-zizon/stockify-web/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testNamespace = "http://services.stockify.pe/"

func envelope(body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>` +
		`<S:Envelope xmlns:S="http://schemas.xmlsoap.org/soap/envelope/"><S:Body>` +
		body +
		`</S:Body></S:Envelope>`
}

// soapServer answers every request with the response registered for its SOAPAction
// and records the request bodies.
type soapServer struct {
	*httptest.Server
	responses map[string]string
	status    map[string]int

	mu       sync.Mutex
	requests []string
}

func newSOAPServer(t *testing.T) *soapServer {
	s := &soapServer{responses: map[string]string{}, status: map[string]int{}}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, string(body))
		s.mu.Unlock()
		action := strings.Trim(r.Header.Get("SOAPAction"), `"`)
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		if code, ok := s.status[action]; ok {
			w.WriteHeader(code)
		}
		_, _ = io.WriteString(w, envelope(s.responses[action]))
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *soapServer) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[len(s.requests)-1]
}

func (s *soapServer) client() *SOAPClient {
	return NewSOAPClient("test", s.URL, testNamespace, s.Server.Client(), zap.NewNop())
}

func TestProductRepository(t *testing.T) {
	srv := newSOAPServer(t)
	srv.responses["listarProductos"] = `<ns2:listarProductosResponse xmlns:ns2="http://services.stockify.pe/">` +
		`<return><idProducto>1</idProducto><nombre>Monitor</nombre><precioUnitario>450.50</precioUnitario>` +
		`<categoria><idCategoria>3</idCategoria><nombre>Pantallas</nombre></categoria>` +
		`<stockMaximo>100</stockMaximo><stockMinimo>10</stockMinimo></return>` +
		`<return><idProducto>2</idProducto><nombre>Teclado</nombre><precioUnitario>80</precioUnitario></return>` +
		`</ns2:listarProductosResponse>`
	srv.responses["obtenerProducto"] = `<ns2:obtenerProductoResponse xmlns:ns2="http://services.stockify.pe/"/>`
	repo := NewProductRepository(srv.client())
	ctx := context.Background()

	t.Run("list decodes records", func(t *testing.T) {
		products, err := repo.ListProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, int64(1), products[0].ID)
		assert.Equal(t, "Monitor", products[0].Name)
		assert.True(t, decimal.RequireFromString("450.50").Equal(products[0].UnitPrice))
		require.NotNil(t, products[0].Category)
		assert.Equal(t, "Pantallas", products[0].Category.Name)
		assert.Nil(t, products[1].Category)
	})

	t.Run("empty get is not found", func(t *testing.T) {
		_, err := repo.GetProduct(ctx, 99)
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.Contains(t, srv.last(), "<ws:obtenerProducto><idProducto>99</idProducto></ws:obtenerProducto>")
	})

	t.Run("save sends product and discriminator", func(t *testing.T) {
		p := &domain.Product{
			Name:      "Mouse",
			UnitPrice: decimal.RequireFromString("25.90"),
			Category:  &domain.Category{ID: 3, Name: "Pantallas"},
			MaxStock:  domain.DefaultMaxStock,
			MinStock:  domain.DefaultMinStock,
		}
		require.NoError(t, repo.SaveProduct(ctx, p, domain.StateNew))
		req := srv.last()
		assert.Contains(t, req, `xmlns:ws="http://services.stockify.pe/"`)
		assert.Contains(t, req, "<ws:guardarProducto><producto>")
		assert.Contains(t, req, "<precioUnitario>25.9</precioUnitario>")
		assert.Contains(t, req, "<idCategoria>3</idCategoria>")
		assert.Contains(t, req, "<estado>NUEVO</estado>")
		assert.NotContains(t, req, "<idProducto>")
	})
}

func TestProductRepositoryDecodesServiceFormats(t *testing.T) {
	srv := newSOAPServer(t)
	srv.responses["obtenerProducto"] = `<ns2:obtenerProductoResponse xmlns:ns2="http://services.stockify.pe/">` +
		`<return><idProducto>4</idProducto><nombre>Monitor</nombre><precioUnitario>1.0E2</precioUnitario>` +
		`<categoria><idCategoria>3</idCategoria><nombre>Pantallas</nombre></categoria></return>` +
		`</ns2:obtenerProductoResponse>`
	repo := NewProductRepository(srv.client())

	p, err := repo.GetProduct(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(p.UnitPrice))
	require.NotNil(t, p.Category)
	assert.Equal(t, int64(3), p.Category.ID)
	assert.Equal(t, "Pantallas", p.Category.Name)
}

func TestSOAPClientConcurrentCalls(t *testing.T) {
	srv := newSOAPServer(t)
	srv.responses["listarProductos"] = `<ns2:listarProductosResponse xmlns:ns2="http://services.stockify.pe/">` +
		`<return><idProducto>1</idProducto><nombre>Monitor</nombre></return>` +
		`</ns2:listarProductosResponse>`
	srv.responses["obtenerProducto"] = `<ns2:obtenerProductoResponse xmlns:ns2="http://services.stockify.pe/">` +
		`<return><idProducto>2</idProducto><nombre>Teclado</nombre></return>` +
		`</ns2:obtenerProductoResponse>`
	repo := NewProductRepository(srv.client())
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			products, err := repo.ListProducts(ctx)
			if err == nil && (len(products) != 1 || products[0].Name != "Monitor") {
				err = errors.New("unexpected list result")
			}
			errs <- err
		}()
		go func() {
			defer wg.Done()
			p, err := repo.GetProduct(ctx, 2)
			if err == nil && p.Name != "Teclado" {
				err = errors.New("unexpected get result")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestCompanyRepository(t *testing.T) {
	srv := newSOAPServer(t)
	srv.responses["listarEmpresas"] = `<ns2:listarEmpresasResponse xmlns:ns2="http://services.stockify.pe/">` +
		`<return><idEmpresa>7</idEmpresa><razonSocial>Changa SAC</razonSocial><telefono>7687784556</telefono>` +
		`<tipoEmpresa>PROVEEDOR</tipoEmpresa><activo>true</activo></return>` +
		`</ns2:listarEmpresasResponse>`
	srv.responses["obtenerEmpresa"] = `<ns2:obtenerEmpresaResponse xmlns:ns2="http://services.stockify.pe/">` +
		`<return><idEmpresa>7</idEmpresa><razonSocial>Changa SAC</razonSocial><activo>false</activo></return>` +
		`</ns2:obtenerEmpresaResponse>`
	repo := NewCompanyRepository(srv.client())
	ctx := context.Background()

	companies, err := repo.ListCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, domain.CompanyTypeSupplier, companies[0].Type)
	assert.True(t, companies[0].Active)

	c, err := repo.GetCompany(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Changa SAC", c.LegalName)
	assert.False(t, c.Active)

	require.NoError(t, repo.DeleteCompany(ctx, 7))
	assert.Contains(t, srv.last(), "<ws:eliminarEmpresa><idEmpresa>7</idEmpresa></ws:eliminarEmpresa>")
}

func TestStockRepositoryCurrentStock(t *testing.T) {
	srv := newSOAPServer(t)
	srv.responses["listarExistencias"] = `<ns2:listarExistenciasResponse xmlns:ns2="http://services.stockify.pe/">` +
		`<return><producto><idProducto>1</idProducto></producto><cantidad>42</cantidad></return>` +
		`<return><cantidad>5</cantidad></return>` +
		`</ns2:listarExistenciasResponse>`
	repo := NewStockRepository(srv.client())

	qty, found, err := repo.CurrentStock(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 42, qty)

	qty, found, err = repo.CurrentStock(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, qty)
}

func TestSOAPClientErrors(t *testing.T) {
	t.Run("fault", func(t *testing.T) {
		srv := newSOAPServer(t)
		srv.status["eliminarProducto"] = http.StatusInternalServerError
		srv.responses["eliminarProducto"] = `<S:Fault><faultcode>S:Server</faultcode><faultstring>producto no existe</faultstring></S:Fault>`
		err := NewProductRepository(srv.client()).DeleteProduct(context.Background(), 5)

		var fault *FaultError
		require.True(t, errors.As(err, &fault))
		assert.Equal(t, "producto no existe", fault.Message)
		assert.NotErrorIs(t, err, ErrServiceUnavailable)
	})

	t.Run("unexpected status", func(t *testing.T) {
		srv := newSOAPServer(t)
		srv.status["listarCategorias"] = http.StatusServiceUnavailable
		_, err := NewCategoryRepository(srv.client()).ListCategories(context.Background())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrServiceUnavailable)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := newSOAPServer(t)
		c := srv.client()
		srv.Close()
		_, err := NewCompanyRepository(c).ListCompanies(context.Background())
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})
}
