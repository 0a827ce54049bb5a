package repository

import (
	"context"
	"encoding/xml"

	"github.com/cloud-wave-best-zizon/stockify-web/internal/domain"
)

type listarProductos struct {
	XMLName xml.Name `xml:"ws:listarProductos"`
}

type listarProductosResponse struct {
	Return []domain.Product `xml:"return"`
}

type obtenerProducto struct {
	XMLName xml.Name `xml:"ws:obtenerProducto"`
	ID      int64    `xml:"idProducto"`
}

type obtenerProductoResponse struct {
	Return *domain.Product `xml:"return"`
}

type guardarProducto struct {
	XMLName  xml.Name         `xml:"ws:guardarProducto"`
	Producto *domain.Product  `xml:"producto"`
	Estado   domain.SaveState `xml:"estado"`
}

type eliminarProducto struct {
	XMLName xml.Name `xml:"ws:eliminarProducto"`
	ID      int64    `xml:"idProducto"`
}

type ProductRepository struct {
	soap *SOAPClient
}

func NewProductRepository(soap *SOAPClient) *ProductRepository {
	return &ProductRepository{soap: soap}
}

func (r *ProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var resp listarProductosResponse
	if err := r.soap.Call(ctx, "listarProductos", listarProductos{}, &resp); err != nil {
		return nil, err
	}
	return resp.Return, nil
}

func (r *ProductRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var resp obtenerProductoResponse
	if err := r.soap.Call(ctx, "obtenerProducto", obtenerProducto{ID: id}, &resp); err != nil {
		return nil, err
	}
	if resp.Return == nil || resp.Return.ID == 0 {
		return nil, ErrProductNotFound
	}
	return resp.Return, nil
}

func (r *ProductRepository) SaveProduct(ctx context.Context, product *domain.Product, state domain.SaveState) error {
	return r.soap.Call(ctx, "guardarProducto", guardarProducto{Producto: product, Estado: state}, nil)
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	return r.soap.Call(ctx, "eliminarProducto", eliminarProducto{ID: id}, nil)
}
