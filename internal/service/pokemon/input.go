package pokemon

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
)

const maxNameLen = 100

// CreateInput holds the parameters for creating a pokemon.
type CreateInput struct {
	No   int    `json:"no"`
	Name string `json:"name"`
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateNo(i.No)...)
	errs = append(errs, validateName(i.Name)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the fields of a partial update. Nil means unchanged.
type UpdateInput struct {
	No   *int    `json:"no"`
	Name *string `json:"name"`
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.No == nil && i.Name == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.No != nil {
		errs = append(errs, validateNo(*i.No)...)
	}
	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds pagination parameters. Zero Limit selects the default.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be a positive integer"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be zero or positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateNo(no int) []domain.FieldError {
	switch {
	case no < 1:
		return []domain.FieldError{{Field: "no", Message: "must be a positive integer"}}
	case no > domain.MaxNo:
		return []domain.FieldError{{Field: "no", Message: "must be at most " + strconv.Itoa(domain.MaxNo)}}
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if utf8.RuneCountInString(trimmed) > maxNameLen {
		return []domain.FieldError{{Field: "name", Message: "max 100 characters"}}
	}
	return nil
}
