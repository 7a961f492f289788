package validation

import (
	"fmt"
	"strings"

	"storefront/internal/model"

	"github.com/go-playground/validator/v10"
)

// Mode selects which fields a request is expected to carry.
type Mode int

const (
	// ModeCreate requires every mandatory field to be present.
	ModeCreate Mode = iota
	// ModeFullUpdate mirrors ModeCreate: a full replace never falls back to
	// stored values for mandatory fields.
	ModeFullUpdate
	// ModePartialUpdate validates only the fields that were supplied.
	ModePartialUpdate
)

// MaxPrice is the upper bound accepted for a product price. Values above it
// are treated as input errors.
const MaxPrice = 10_000_000

// requiredFields are mandatory on create and full update.
var requiredFields = []string{"name", "category", "description", "price"}

// Validator checks candidate product fields against the catalogue's rules.
// It never returns an error value itself: all findings come back as data.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate inspects the supplied input under the given mode and returns one
// FieldError per violated rule. An empty slice means the input is acceptable.
func (v *Validator) Validate(input model.ProductInput, mode Mode) []model.FieldError {
	errs := []model.FieldError{}

	if mode == ModeCreate || mode == ModeFullUpdate {
		for _, field := range missingRequired(input) {
			errs = append(errs, model.FieldError{
				Field:   field,
				Message: fmt.Sprintf("required field missing: %s", field),
			})
		}
	}

	if input.Name != nil {
		errs = append(errs, v.checkVar("name", strings.TrimSpace(*input.Name), "min=2")...)
	}
	if input.Category != nil {
		errs = append(errs, v.checkVar("category", strings.TrimSpace(*input.Category), "min=1")...)
	}
	if input.Description != nil {
		errs = append(errs, v.checkVar("description", strings.TrimSpace(*input.Description), "min=1")...)
	}
	if input.Price != nil {
		errs = append(errs, v.checkVar("price", *input.Price, fmt.Sprintf("gt=0,lte=%d", MaxPrice))...)
	}
	if input.Stock != nil {
		errs = append(errs, v.checkVar("stock", *input.Stock, "gte=0")...)
	}
	if input.Rating != nil {
		errs = append(errs, v.checkVar("rating", *input.Rating, "gte=0,lte=5")...)
	}

	return errs
}

// missingRequired returns the mandatory fields absent from the input.
func missingRequired(input model.ProductInput) []string {
	present := map[string]bool{
		"name":        input.Name != nil,
		"category":    input.Category != nil,
		"description": input.Description != nil,
		"price":       input.Price != nil,
	}

	var missing []string
	for _, field := range requiredFields {
		if !present[field] {
			missing = append(missing, field)
		}
	}
	return missing
}

// checkVar runs the given validation tags against a single value and
// translates each failed tag into the catalogue's own message for the field.
func (v *Validator) checkVar(field string, value any, tags string) []model.FieldError {
	err := v.validate.Var(value, tags)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []model.FieldError{{Field: field, Message: "invalid value"}}
	}

	errs := make([]model.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, model.FieldError{Field: field, Message: message(field, e.Tag())})
	}
	return errs
}

// message maps a field and failed tag to a user-facing description.
func message(field, tag string) string {
	switch {
	case field == "name" && tag == "min":
		return "name must contain at least 2 characters"
	case field == "category":
		return "category must not be empty"
	case field == "description":
		return "description must not be empty"
	case field == "price" && tag == "gt":
		return "price must be a positive number"
	case field == "price" && tag == "lte":
		return fmt.Sprintf("price must not exceed %d", MaxPrice)
	case field == "stock":
		return "stock cannot be negative"
	case field == "rating":
		return "rating must be between 0 and 5"
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", field, tag)
	}
}
