package seed

import (
	"strconv"
	"strings"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
	"github.com/Ramon-Molinero/pokedex/internal/provider"
)

// transform turns listing entries into records. The no is taken from the
// second-to-last path segment of the reference URL
// (".../pokemon/25/" -> 25); the name is kept as the source sent it.
// Entries whose URL yields no integer within 1..domain.MaxNo are returned
// as invalid.
func transform(items []provider.ListItem) (batch []domain.Pokemon, invalid []provider.ListItem) {
	batch = make([]domain.Pokemon, 0, len(items))
	for _, item := range items {
		no, ok := numberFromURL(item.URL)
		if !ok {
			invalid = append(invalid, item)
			continue
		}
		batch = append(batch, domain.Pokemon{No: no, Name: item.Name})
	}
	return batch, invalid
}

func numberFromURL(u string) (int, bool) {
	segments := strings.Split(u, "/")
	if len(segments) < 2 {
		return 0, false
	}
	no, err := strconv.Atoi(segments[len(segments)-2])
	if err != nil || no < 1 || no > domain.MaxNo {
		return 0, false
	}
	return no, true
}
