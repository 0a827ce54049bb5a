package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/cloud-wave-best-zizon/stockify-web/internal/domain"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/events"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/session"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
)

// ValidationError is returned before any web service call when form input is invalid.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// FormView is an opened form. Notice carries a non-fatal problem met while
// preparing it, such as a category list that could not be loaded.
type FormView struct {
	Form   *domain.FormSession
	Notice string
}

var validate = newValidator()

// newValidator reports fields by their json name and adds the "price" tag:
// a decimal strictly greater than zero.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		price, err := decimal.NewFromString(fl.Field().String())
		return err == nil && price.IsPositive()
	})
	return v
}

// validateFields checks the validate tags of fields and turns the first failing
// field into a ValidationError with that field's message.
func validateFields(fields any, messages map[string]string) error {
	err := validate.Struct(fields)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	field := verrs[0].Field()
	return &ValidationError{Field: field, Message: messages[field]}
}

type formStore struct {
	store  session.Store
	screen domain.Screen
}

func (s formStore) load(ctx context.Context, sessionID string) (*domain.FormSession, error) {
	form, err := s.store.Load(ctx, session.Key(sessionID, s.screen))
	if errors.Is(err, session.ErrSessionNotFound) {
		return domain.NewFormSession(s.screen), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load form session: %w", err)
	}
	return form, nil
}

func (s formStore) save(ctx context.Context, sessionID string, form *domain.FormSession) error {
	form.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, session.Key(sessionID, s.screen), form); err != nil {
		return fmt.Errorf("failed to save form session: %w", err)
	}
	return nil
}

// clear drops the stored form; a missing entry loads as a closed form.
func (s formStore) clear(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, session.Key(sessionID, s.screen)); err != nil {
		return fmt.Errorf("failed to delete form session: %w", err)
	}
	return nil
}

func publish(ctx context.Context, publisher events.Publisher, logger *zap.Logger, event events.InventoryEvent) {
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish inventory event",
			zap.String("event_id", event.EventID),
			zap.Error(err))
	}
}
