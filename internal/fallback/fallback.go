// Package fallback supplies the example rows shown when a list call cannot reach
// its web service. The rows are never persisted and cannot be saved.
package fallback

import (
	"github.com/cloud-wave-best-zizon/stockify-web/internal/domain"
	"github.com/shopspring/decimal"
)

type Provider interface {
	Suppliers() []domain.CompanyRow
	Products() []domain.ProductRow
}

// Examples is the default Provider.
type Examples struct{}

func (Examples) Suppliers() []domain.CompanyRow {
	return []domain.CompanyRow{
		{
			Name:    "Changa SAC",
			Product: "Monitor",
			Phone:   "7687784556",
			Email:   "ChangaSAC@gmail.com",
			Type:    string(domain.CompanyTypeSupplier),
			Active:  "Yes",
			Example: true,
		},
		{
			Name:    "Knitos",
			Product: "Teclados",
			Phone:   "9867545368",
			Email:   "KnitosCorp@gmail.com",
			Type:    string(domain.CompanyTypeSupplier),
			Active:  "Yes",
			Example: true,
		},
	}
}

func (Examples) Products() []domain.ProductRow {
	return []domain.ProductRow{
		{
			Name:        "Monitor",
			Price:       decimal.RequireFromString("450.00"),
			Description: "24 inch LED monitor",
			Brand:       "Changa",
			Category:    "Pantallas",
			Example:     true,
		},
		{
			Name:        "Teclado",
			Price:       decimal.RequireFromString("80.00"),
			Description: "Mechanical keyboard",
			Brand:       "Knitos",
			Category:    "Perifericos",
			Example:     true,
		},
	}
}
