package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
	"github.com/Ramon-Molinero/pokedex/internal/store"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "pokemon", uuid.New()); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	got := MapError(pgx.ErrNoRows, "pokemon", id)

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if want := fmt.Sprintf("pokemon %s: not found", id); got.Error() != want {
		t.Errorf("MapError(ErrNoRows).Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_WrappedNoRows(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("scan row: %w", pgx.ErrNoRows)
	if got := MapError(wrapped, "pokemon", 25); !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(wrapped ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
}

func TestMapError_UniqueViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pgErr     *pgconn.PgError
		wantField string
		wantValue string
	}{
		{
			name: "detail",
			pgErr: &pgconn.PgError{
				Code:           "23505",
				Detail:         "Key (name)=(pikachu) already exists.",
				TableName:      "pokemon",
				ConstraintName: "pokemon_name_key",
			},
			wantField: "name",
			wantValue: "pikachu",
		},
		{
			name: "constraint fallback",
			pgErr: &pgconn.PgError{
				Code:           "23505",
				TableName:      "pokemon",
				ConstraintName: "pokemon_no_key",
			},
			wantField: "no",
		},
		{
			name:  "nothing known",
			pgErr: &pgconn.PgError{Code: "23505", ConstraintName: "weird"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MapError(tt.pgErr, "pokemon", uuid.Nil)

			var dup *store.DuplicateKeyError
			if !errors.As(got, &dup) {
				t.Fatalf("MapError(23505) = %v, want *store.DuplicateKeyError", got)
			}
			if dup.Field != tt.wantField || dup.Value != tt.wantValue {
				t.Errorf("DuplicateKeyError = %+v, want field %q value %q", dup, tt.wantField, tt.wantValue)
			}
		})
	}
}

func TestMapError_CheckViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "23514", ConstraintName: "pokemon_no_check"}
	got := MapError(pgErr, "pokemon", 0)

	if !errors.Is(got, domain.ErrValidation) {
		t.Errorf("MapError(23514) does not wrap domain.ErrValidation: %v", got)
	}
	if store.IsDuplicateKey(got) {
		t.Error("check violation must not be reported as a duplicate key")
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	for _, ctxErr := range []error{context.Canceled, context.DeadlineExceeded} {
		got := MapError(ctxErr, "pokemon", 1)
		if !errors.Is(got, ctxErr) {
			t.Errorf("MapError(%v) lost the context error: %v", ctxErr, got)
		}
		if errors.Is(got, domain.ErrNotFound) {
			t.Errorf("MapError(%v) should not map to ErrNotFound", ctxErr)
		}
	}
}

func TestMapError_UnknownPgError(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "57014", Message: "canceling statement"}
	got := MapError(pgErr, "pokemon", 1)

	var back *pgconn.PgError
	if !errors.As(got, &back) || back.Code != "57014" {
		t.Errorf("MapError should keep unknown PgError in chain: %v", got)
	}
}
