package domain

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Draft carries raw remedy fields as submitted by a form.
type Draft struct {
	Name      string `form:"name" validate:"required,max=120"`
	Potency   string `form:"potency" validate:"required,potency"`
	Form      string `form:"form" validate:"required,medicineform"`
	Quantity  string `form:"quantity" validate:"required,number,max=6"`
	Unit      string `form:"unit" validate:"max=32"`
	Location  string `form:"location" validate:"max=80"`
	Notes     string `form:"notes" validate:"max=1000"`
	ExpiresOn string `form:"expires_on" validate:"omitempty,datetime=2006-01-02"`
}

// ValidationError lists the draft fields that failed validation, keyed by
// form field name with the failing rule as value.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "invalid medicine"
	}
	names := make([]string, 0, len(e.Fields))
	for name, rule := range e.Fields {
		names = append(names, name+"="+rule)
	}
	sort.Strings(names)
	return "invalid medicine: " + strings.Join(names, ", ")
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	if e == nil {
		return false
	}
	_, ok := e.Fields[field]
	return ok
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := strings.TrimSpace(field.Tag.Get("form")); name != "" {
			return name
		}
		return field.Name
	})
	mustRegister(v, "potency", func(fl validator.FieldLevel) bool {
		_, err := ParsePotency(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "medicineform", func(fl validator.FieldLevel) bool {
		_, ok := ParseForm(fl.Field().String())
		return ok
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Normalize trims surrounding whitespace from every field.
func (d Draft) Normalize() Draft {
	return Draft{
		Name:      strings.Join(strings.Fields(d.Name), " "),
		Potency:   strings.TrimSpace(d.Potency),
		Form:      strings.TrimSpace(d.Form),
		Quantity:  strings.TrimSpace(d.Quantity),
		Unit:      strings.TrimSpace(d.Unit),
		Location:  strings.TrimSpace(d.Location),
		Notes:     strings.TrimSpace(d.Notes),
		ExpiresOn: strings.TrimSpace(d.ExpiresOn),
	}
}

// Validate checks the normalized draft and returns a *ValidationError on failure.
func (d Draft) Validate() error {
	err := validate.Struct(d.Normalize())
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate medicine: %w", err)
	}
	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields[fe.Field()] = fe.Tag()
	}
	return out
}

// Apply validates the draft and copies its values onto base, keeping base's
// identity and timestamps.
func (d Draft) Apply(base Medicine) (Medicine, error) {
	if err := d.Validate(); err != nil {
		return Medicine{}, err
	}
	d = d.Normalize()

	potency, err := ParsePotency(d.Potency)
	if err != nil {
		return Medicine{}, &ValidationError{Fields: map[string]string{"potency": "potency"}}
	}
	form, _ := ParseForm(d.Form)
	quantity, err := strconv.Atoi(d.Quantity)
	if err != nil {
		return Medicine{}, &ValidationError{Fields: map[string]string{"quantity": "number"}}
	}
	var expiresAt time.Time
	if d.ExpiresOn != "" {
		expiresAt, err = time.Parse(DateLayout, d.ExpiresOn)
		if err != nil {
			return Medicine{}, &ValidationError{Fields: map[string]string{"expires_on": "datetime"}}
		}
	}

	base.Name = d.Name
	base.Potency = potency
	base.Form = form
	base.Quantity = quantity
	base.Unit = d.Unit
	base.Location = d.Location
	base.Notes = d.Notes
	base.ExpiresAt = expiresAt
	return base, nil
}

// DraftFromMedicine renders a medicine back into editable form values.
func DraftFromMedicine(m Medicine) Draft {
	draft := Draft{
		Name:     m.Name,
		Potency:  m.Potency.String(),
		Form:     string(m.Form),
		Quantity: strconv.Itoa(m.Quantity),
		Unit:     m.Unit,
		Location: m.Location,
		Notes:    m.Notes,
	}
	if m.HasExpiry() {
		draft.ExpiresOn = m.ExpiresAt.UTC().Format(DateLayout)
	}
	return draft
}
