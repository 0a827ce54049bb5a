package domain

type CompanyType string

const (
	CompanyTypeSupplier CompanyType = "PROVEEDOR"
	CompanyTypeCustomer CompanyType = "CLIENTE"
)

// Valid reports whether t is one of the types the company service accepts.
func (t CompanyType) Valid() bool {
	return t == CompanyTypeSupplier || t == CompanyTypeCustomer
}

type Company struct {
	ID        int64       `xml:"idEmpresa,omitempty"   json:"id"`
	LegalName string      `xml:"razonSocial"           json:"legal_name"`
	Phone     string      `xml:"telefono"              json:"phone"`
	Email     string      `xml:"email"                 json:"email"`
	Type      CompanyType `xml:"tipoEmpresa,omitempty" json:"type,omitempty"`
	Active    bool        `xml:"activo"                json:"active"`
}

type CompanyRow struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Product string `json:"product"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Type    string `json:"type"`
	Active  string `json:"active"`
	Example bool   `json:"example,omitempty"`
}
