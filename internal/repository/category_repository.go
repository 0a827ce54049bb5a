package repository

import (
	"context"
	"encoding/xml"

	"github.com/cloud-wave-best-zizon/stockify-web/internal/domain"
)

type listarCategorias struct {
	XMLName xml.Name `xml:"ws:listarCategorias"`
}

type listarCategoriasResponse struct {
	Return []domain.Category `xml:"return"`
}

type obtenerCategoria struct {
	XMLName xml.Name `xml:"ws:obtenerCategoria"`
	ID      int64    `xml:"idCategoria"`
}

type obtenerCategoriaResponse struct {
	Return *domain.Category `xml:"return"`
}

type CategoryRepository struct {
	soap *SOAPClient
}

func NewCategoryRepository(soap *SOAPClient) *CategoryRepository {
	return &CategoryRepository{soap: soap}
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var resp listarCategoriasResponse
	if err := r.soap.Call(ctx, "listarCategorias", listarCategorias{}, &resp); err != nil {
		return nil, err
	}
	return resp.Return, nil
}

func (r *CategoryRepository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	var resp obtenerCategoriaResponse
	if err := r.soap.Call(ctx, "obtenerCategoria", obtenerCategoria{ID: id}, &resp); err != nil {
		return nil, err
	}
	if resp.Return == nil || resp.Return.ID == 0 {
		return nil, ErrCategoryNotFound
	}
	return resp.Return, nil
}
