package domain

import "fmt"

const (
	Sentinel      = "---"
	noName        = "No name"
	noCategory    = "No category"
	noDescription = "No description"
	activeLabel   = "Yes"
	inactiveLabel = "No"
)

// ProjectProduct maps a product record to its grid row.
func ProjectProduct(p Product) ProductRow {
	row := ProductRow{
		ID:          p.ID,
		Name:        orDefault(p.Name, noName),
		Price:       p.UnitPrice,
		Description: orDefault(p.Description, Sentinel),
		Brand:       orDefault(p.Brand, Sentinel),
		Category:    Sentinel,
	}
	if p.Category != nil {
		row.Category = orDefault(p.Category.Name, Sentinel)
	}
	return row
}

func ProjectProducts(products []Product) []ProductRow {
	rows := make([]ProductRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, ProjectProduct(p))
	}
	return rows
}

// ProjectProductDetail maps a product record and its current stock to the detail view.
func ProjectProductDetail(p Product, currentStock int) ProductDetail {
	d := ProductDetail{
		ID:           p.ID,
		Code:         Sentinel,
		Name:         orDefault(p.Name, Sentinel),
		Category:     noCategory,
		Brand:        orDefault(p.Brand, Sentinel),
		Description:  orDefault(p.Description, noDescription),
		UnitPrice:    p.UnitPrice,
		MaxStock:     p.MaxStock,
		MinStock:     p.MinStock,
		CurrentStock: currentStock,
	}
	if p.ID > 0 {
		d.Code = fmt.Sprintf("%04d", p.ID)
	}
	if p.Category != nil && p.Category.Name != "" {
		d.Category = p.Category.Name
	}
	return d
}

// ProjectCompany maps a company record to its grid row.
func ProjectCompany(c Company) CompanyRow {
	row := CompanyRow{
		ID:      c.ID,
		Name:    c.LegalName,
		Product: Sentinel,
		Phone:   c.Phone,
		Email:   c.Email,
		Type:    Sentinel,
		Active:  inactiveLabel,
	}
	if c.Type != "" {
		row.Type = string(c.Type)
	}
	if c.Active {
		row.Active = activeLabel
	}
	return row
}

func ProjectCompanies(companies []Company) []CompanyRow {
	rows := make([]CompanyRow, 0, len(companies))
	for _, c := range companies {
		rows = append(rows, ProjectCompany(c))
	}
	return rows
}

// CategoryOptions builds the category dropdown, placeholder first.
func CategoryOptions(categories []Category) []Option {
	if len(categories) == 0 {
		return []Option{{Value: PlaceholderValue, Label: "No categories available"}}
	}
	opts := make([]Option, 0, len(categories)+1)
	opts = append(opts, Option{Value: PlaceholderValue, Label: "Select a category"})
	for _, c := range categories {
		opts = append(opts, Option{
			Value: fmt.Sprintf("%d", c.ID),
			Label: orDefault(c.Name, noName),
		})
	}
	return opts
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
