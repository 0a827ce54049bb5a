package repository

import (
	"context"
	"encoding/xml"

	"github.com/cloud-wave-best-zizon/stockify-web/internal/domain"
)

type listarEmpresas struct {
	XMLName xml.Name `xml:"ws:listarEmpresas"`
}

type listarEmpresasResponse struct {
	Return []domain.Company `xml:"return"`
}

type obtenerEmpresa struct {
	XMLName xml.Name `xml:"ws:obtenerEmpresa"`
	ID      int64    `xml:"idEmpresa"`
}

type obtenerEmpresaResponse struct {
	Return *domain.Company `xml:"return"`
}

type guardarEmpresa struct {
	XMLName xml.Name         `xml:"ws:guardarEmpresa"`
	Empresa *domain.Company  `xml:"empresa"`
	Estado  domain.SaveState `xml:"estado"`
}

type eliminarEmpresa struct {
	XMLName xml.Name `xml:"ws:eliminarEmpresa"`
	ID      int64    `xml:"idEmpresa"`
}

type CompanyRepository struct {
	soap *SOAPClient
}

func NewCompanyRepository(soap *SOAPClient) *CompanyRepository {
	return &CompanyRepository{soap: soap}
}

func (r *CompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	var resp listarEmpresasResponse
	if err := r.soap.Call(ctx, "listarEmpresas", listarEmpresas{}, &resp); err != nil {
		return nil, err
	}
	return resp.Return, nil
}

func (r *CompanyRepository) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	var resp obtenerEmpresaResponse
	if err := r.soap.Call(ctx, "obtenerEmpresa", obtenerEmpresa{ID: id}, &resp); err != nil {
		return nil, err
	}
	if resp.Return == nil || resp.Return.ID == 0 {
		return nil, ErrCompanyNotFound
	}
	return resp.Return, nil
}

func (r *CompanyRepository) SaveCompany(ctx context.Context, company *domain.Company, state domain.SaveState) error {
	return r.soap.Call(ctx, "guardarEmpresa", guardarEmpresa{Empresa: company, Estado: state}, nil)
}

func (r *CompanyRepository) DeleteCompany(ctx context.Context, id int64) error {
	return r.soap.Call(ctx, "eliminarEmpresa", eliminarEmpresa{ID: id}, nil)
}
