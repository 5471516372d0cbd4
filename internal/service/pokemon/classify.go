package pokemon

import (
	"errors"
	"fmt"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
	"github.com/Ramon-Molinero/pokedex/internal/store"
)

// Classify maps a raw store error to the domain taxonomy:
//   - uniqueness violation -> *domain.ConflictError with the offending key
//   - not found / conflict / validation -> passed through, prefixed with op
//   - anything else -> *domain.UnexpectedError
func Classify(err error, op string) error {
	if err == nil {
		return nil
	}

	var dup *store.DuplicateKeyError
	if errors.As(err, &dup) {
		return &domain.ConflictError{Field: dup.Field, Value: dup.Value}
	}

	if domain.IsClientError(err) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return &domain.UnexpectedError{Op: op, Message: err.Error()}
}
