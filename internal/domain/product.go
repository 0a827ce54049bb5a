package domain

import (
	"github.com/shopspring/decimal"
)

const (
	DefaultMaxStock = 100
	DefaultMinStock = 10
)

// SaveState tells the remote service whether a saved record is new or modified.
type SaveState string

const (
	StateNew      SaveState = "NUEVO"
	StateModified SaveState = "MODIFICADO"
)

type Category struct {
	ID   int64  `xml:"idCategoria" json:"id"`
	Name string `xml:"nombre"      json:"name"`
}

type Product struct {
	ID          int64           `xml:"idProducto,omitempty" json:"id"`
	Name        string          `xml:"nombre"               json:"name"`
	UnitPrice   decimal.Decimal `xml:"precioUnitario"       json:"unit_price"`
	Description string          `xml:"descripcion"          json:"description"`
	Brand       string          `xml:"marca"                json:"brand"`
	Category    *Category       `xml:"categoria,omitempty"  json:"category,omitempty"`
	MaxStock    int             `xml:"stockMaximo"          json:"max_stock"`
	MinStock    int             `xml:"stockMinimo"          json:"min_stock"`
}

// StockRecord is one entry of the stock-existence service.
type StockRecord struct {
	Product  *Product `xml:"producto" json:"product,omitempty"`
	Quantity int      `xml:"cantidad" json:"quantity"`
}

type ProductRow struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Brand       string          `json:"brand"`
	Category    string          `json:"category"`
	Example     bool            `json:"example,omitempty"`
}

type ProductDetail struct {
	ID           int64           `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Brand        string          `json:"brand"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	MaxStock     int             `json:"max_stock"`
	MinStock     int             `json:"min_stock"`
	CurrentStock int             `json:"current_stock"`
}
