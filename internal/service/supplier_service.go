package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloud-wave-best-zizon/stockify-web/internal/domain"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/events"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/fallback"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/repository"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/session"
	"go.uber.org/zap"
)

type CompanyProvider interface {
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	GetCompany(ctx context.Context, id int64) (*domain.Company, error)
	SaveCompany(ctx context.Context, company *domain.Company, state domain.SaveState) error
	DeleteCompany(ctx context.Context, id int64) error
}

type SupplierList struct {
	Rows     []domain.CompanyRow
	Fallback bool
}

type SupplierSaved struct {
	Mode domain.FormMode
	List *SupplierList
}

// SupplierService drives the supplier screen.
type SupplierService struct {
	companies CompanyProvider
	forms     formStore
	fallback  fallback.Provider
	publisher events.Publisher
	logger    *zap.Logger
}

func NewSupplierService(
	companies CompanyProvider,
	store session.Store,
	fb fallback.Provider,
	publisher events.Publisher,
	logger *zap.Logger,
) *SupplierService {
	if fb == nil {
		fb = fallback.Examples{}
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &SupplierService{
		companies: companies,
		forms:     formStore{store: store, screen: domain.ScreenSuppliers},
		fallback:  fb,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *SupplierService) ListSuppliers(ctx context.Context) (*SupplierList, error) {
	companies, err := s.companies.ListCompanies(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrServiceUnavailable) {
			s.logger.Warn("Company service unreachable, showing example suppliers", zap.Error(err))
			return &SupplierList{Rows: s.fallback.Suppliers(), Fallback: true}, nil
		}
		return nil, err
	}
	s.logger.Debug("Suppliers loaded", zap.Int("count", len(companies)))
	return &SupplierList{Rows: domain.ProjectCompanies(companies)}, nil
}

func (s *SupplierService) Form(ctx context.Context, sessionID string) (*domain.FormSession, error) {
	return s.forms.load(ctx, sessionID)
}

func (s *SupplierService) OpenForAdd(ctx context.Context, sessionID string) (*FormView, error) {
	form, err := s.forms.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	form.OpenAdd()
	if err := s.forms.save(ctx, sessionID, form); err != nil {
		return nil, err
	}
	return &FormView{Form: form}, nil
}

func (s *SupplierService) OpenForEdit(ctx context.Context, sessionID string, id int64) (*FormView, error) {
	company, err := s.getCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	form, err := s.forms.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	form.Close()
	form.Company = domain.CompanyFields{
		LegalName: company.LegalName,
		Phone:     company.Phone,
		Email:     company.Email,
		Type:      string(company.Type),
		Active:    company.Active,
	}
	if form.Company.Type == "" {
		form.Company.Type = string(domain.CompanyTypeSupplier)
	}
	form.OpenEdit(id)

	if err := s.forms.save(ctx, sessionID, form); err != nil {
		return nil, err
	}
	return &FormView{Form: form}, nil
}

// Save validates input and creates or updates the supplier depending on the
// form mode. A closed form saves as a new supplier.
func (s *SupplierService) Save(ctx context.Context, sessionID string, input domain.CompanyFields) (*SupplierSaved, error) {
	form, err := s.forms.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !form.Open {
		form.OpenAdd()
	}
	form.Company = input

	if err := s.apply(ctx, form); err != nil {
		if saveErr := s.forms.save(ctx, sessionID, form); saveErr != nil {
			s.logger.Error("Failed to keep form after failed save", zap.Error(saveErr))
		}
		return nil, err
	}

	result := &SupplierSaved{Mode: form.Mode}
	if err := s.forms.clear(ctx, sessionID); err != nil {
		s.logger.Error("Failed to close form after save", zap.Error(err))
	}
	result.List = s.reload(ctx)
	return result, nil
}

func (s *SupplierService) apply(ctx context.Context, form *domain.FormSession) error {
	fields, companyType, err := validateCompany(form.Company)
	if err != nil {
		return err
	}

	company := &domain.Company{}
	state := domain.StateNew
	if form.Mode == domain.ModeEdit {
		company, err = s.getCompany(ctx, form.EditingID)
		if err != nil {
			return err
		}
		state = domain.StateModified
	}

	company.LegalName = fields.LegalName
	company.Phone = fields.Phone
	company.Email = fields.Email
	company.Type = companyType
	company.Active = fields.Active

	if err := s.companies.SaveCompany(ctx, company, state); err != nil {
		s.logger.Error("Failed to save supplier",
			zap.Int64("company_id", company.ID),
			zap.String("state", string(state)),
			zap.Error(err))
		return err
	}

	action := events.ActionCreated
	if state == domain.StateModified {
		action = events.ActionUpdated
	}
	s.logger.Info("Supplier saved successfully",
		zap.Int64("company_id", company.ID),
		zap.String("legal_name", company.LegalName),
		zap.String("state", string(state)))
	publish(ctx, s.publisher, s.logger,
		events.NewInventoryEvent(events.EntitySupplier, action, company.ID, company.LegalName))
	return nil
}

func (s *SupplierService) reload(ctx context.Context) *SupplierList {
	list, err := s.ListSuppliers(ctx)
	if err != nil {
		s.logger.Error("Failed to reload suppliers", zap.Error(err))
		return &SupplierList{}
	}
	return list
}

func (s *SupplierService) Cancel(ctx context.Context, sessionID string) (*domain.FormSession, error) {
	form, err := s.forms.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	form.Close()
	if err := s.forms.clear(ctx, sessionID); err != nil {
		return nil, err
	}
	return form, nil
}

// Delete removes supplier id and returns the reloaded grid. Example rows have
// no id and cannot be deleted.
func (s *SupplierService) Delete(ctx context.Context, id int64) (*SupplierList, error) {
	if id <= 0 {
		return nil, fmt.Errorf("company %d: %w", id, ErrNotFound)
	}
	if err := s.companies.DeleteCompany(ctx, id); err != nil {
		s.logger.Error("Failed to delete supplier",
			zap.Int64("company_id", id),
			zap.Error(err))
		return nil, err
	}
	s.logger.Info("Supplier deleted successfully", zap.Int64("company_id", id))
	publish(ctx, s.publisher, s.logger,
		events.NewInventoryEvent(events.EntitySupplier, events.ActionDeleted, id, ""))
	return s.reload(ctx), nil
}

func (s *SupplierService) getCompany(ctx context.Context, id int64) (*domain.Company, error) {
	if id <= 0 {
		return nil, fmt.Errorf("company %d: %w", id, ErrNotFound)
	}
	company, err := s.companies.GetCompany(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, fmt.Errorf("company %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return company, nil
}

var companyMessages = map[string]string{
	"legal_name": "Please enter the company name",
	"phone":      "Please enter the phone number",
	"email":      "Please enter a valid email",
	"type":       "Please select a valid company type",
}

func validateCompany(in domain.CompanyFields) (domain.CompanyFields, domain.CompanyType, error) {
	out := domain.CompanyFields{
		LegalName: strings.TrimSpace(in.LegalName),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		Type:      strings.ToUpper(strings.TrimSpace(in.Type)),
		Active:    in.Active,
	}
	if err := validateFields(out, companyMessages); err != nil {
		return out, "", err
	}

	companyType := domain.CompanyTypeSupplier
	if out.Type != "" {
		companyType = domain.CompanyType(out.Type)
	}
	return out, companyType, nil
}
