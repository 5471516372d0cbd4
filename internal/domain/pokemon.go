package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// MaxNo is the largest no a store can hold; the column is a 32-bit integer.
const MaxNo = math.MaxInt32

// Pokemon is a single record of the collection. No and Name are each unique
// across the collection; uniqueness is enforced by the store.
type Pokemon struct {
	ID        uuid.UUID `json:"id"         db:"id"`
	No        int       `json:"no"         db:"no"`
	Name      string    `json:"name"       db:"name"`
	CreatedAt time.Time `json:"createdAt"  db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt"  db:"updated_at"`
}

// PokemonPatch holds the fields of a partial update. Nil means unchanged.
type PokemonPatch struct {
	No   *int
	Name *string
}

// IsEmpty reports whether the patch changes nothing.
func (p PokemonPatch) IsEmpty() bool {
	return p.No == nil && p.Name == nil
}

// Apply returns a copy of pk with the patch fields merged in.
func (p PokemonPatch) Apply(pk Pokemon) Pokemon {
	if p.No != nil {
		pk.No = *p.No
	}
	if p.Name != nil {
		pk.Name = *p.Name
	}
	return pk
}

// PokemonFilter contains pagination parameters for listing records.
// Stores return records ordered by No ascending.
type PokemonFilter struct {
	Limit  int
	Offset int
}
