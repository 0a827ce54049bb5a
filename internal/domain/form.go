package domain

import "time"

type Screen string

const (
	ScreenInventory Screen = "inventory"
	ScreenSuppliers Screen = "suppliers"
)

// FormMode is the add/edit mode of an open form.
type FormMode string

const (
	ModeAdd  FormMode = "add"
	ModeEdit FormMode = "edit"
)

// PlaceholderValue is the value of the "select a category" dropdown entry.
const PlaceholderValue = "0"

type Option struct {
	Value string `json:"value" dynamodbav:"value"`
	Label string `json:"label" dynamodbav:"label"`
}

type ProductFields struct {
	Name        string `json:"name"        dynamodbav:"name"        validate:"required"`
	UnitPrice   string `json:"unit_price"  dynamodbav:"unit_price"  validate:"required,price"`
	Description string `json:"description" dynamodbav:"description"`
	Brand       string `json:"brand"       dynamodbav:"brand"`
	CategoryID  string `json:"category_id" dynamodbav:"category_id" validate:"required,number,ne=0"`
}

// CompanyFields holds the supplier form. The company service has no product
// field, so the grid always shows the sentinel for it.
type CompanyFields struct {
	LegalName string `json:"legal_name" dynamodbav:"legal_name" validate:"required"`
	Phone     string `json:"phone"      dynamodbav:"phone"      validate:"required"`
	Email     string `json:"email"      dynamodbav:"email"      validate:"omitempty,email"`
	Type      string `json:"type"       dynamodbav:"type"       validate:"omitempty,oneof=PROVEEDOR CLIENTE"`
	Active    bool   `json:"active"     dynamodbav:"active"`
}

// FormSession is the state of one screen's add/edit form for one user session.
// A closed form has no mode.
type FormSession struct {
	Screen    Screen        `json:"screen"               dynamodbav:"screen"`
	Open      bool          `json:"open"                 dynamodbav:"open"`
	Mode      FormMode      `json:"mode,omitempty"       dynamodbav:"mode"`
	EditingID int64         `json:"editing_id,omitempty" dynamodbav:"editing_id"`
	Product   ProductFields `json:"product"              dynamodbav:"product"`
	Company   CompanyFields `json:"company"              dynamodbav:"company"`
	Options   []Option      `json:"options,omitempty"    dynamodbav:"options"`
	UpdatedAt time.Time     `json:"updated_at"           dynamodbav:"updated_at"`
}

func NewFormSession(screen Screen) *FormSession {
	return &FormSession{Screen: screen}
}

// OpenAdd clears the entered values and opens the form in add mode.
// Dropdown options are kept.
func (f *FormSession) OpenAdd() {
	f.clearFields()
	f.Open = true
	f.Mode = ModeAdd
}

func (f *FormSession) OpenEdit(id int64) {
	f.Open = true
	f.Mode = ModeEdit
	f.EditingID = id
}

// Close ends the form session; entered values are cleared.
func (f *FormSession) Close() {
	f.clearFields()
	f.Open = false
	f.Mode = ""
}

func (f *FormSession) clearFields() {
	f.EditingID = 0
	f.Product = ProductFields{}
	f.Company = CompanyFields{Type: string(CompanyTypeSupplier), Active: true}
}

// NeedsOptions is true when the dropdown is empty or holds only the placeholder.
func (f *FormSession) NeedsOptions() bool {
	if len(f.Options) == 0 {
		return true
	}
	return len(f.Options) == 1 && f.Options[0].Value == PlaceholderValue
}

func (f *FormSession) HasOption(value string) bool {
	for _, o := range f.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}
