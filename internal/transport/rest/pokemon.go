package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Ramon-Molinero/pokedex/internal/domain"
	"github.com/Ramon-Molinero/pokedex/internal/service/pokemon"
)

type pokemonService interface {
	Create(ctx context.Context, input pokemon.CreateInput) (*domain.Pokemon, error)
	List(ctx context.Context, input pokemon.ListInput) ([]domain.Pokemon, error)
	FindOne(ctx context.Context, term string) (*domain.Pokemon, error)
	Update(ctx context.Context, term string, input pokemon.UpdateInput) (*domain.Pokemon, error)
	Delete(ctx context.Context, idToken string) error
}

// PokemonHandler serves the pokemon collection endpoints.
type PokemonHandler struct {
	svc pokemonService
	log *slog.Logger
}

// NewPokemonHandler creates a PokemonHandler.
func NewPokemonHandler(svc pokemonService, logger *slog.Logger) *PokemonHandler {
	return &PokemonHandler{svc: svc, log: logger.With("handler", "pokemon")}
}

type createPokemonRequest struct {
	No   int    `json:"no"`
	Name string `json:"name"`
}

type updatePokemonRequest struct {
	No   *int    `json:"no"`
	Name *string `json:"name"`
}

type pokemonResponse struct {
	ID        string    `json:"id"`
	No        int       `json:"no"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Create handles POST /api/v2/pokemon.
func (h *PokemonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPokemonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}

	p, err := h.svc.Create(r.Context(), pokemon.CreateInput{No: req.No, Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPokemonResponse(p))
}

// List handles GET /api/v2/pokemon?limit=&offset=.
func (h *PokemonHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListInput(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]pokemonResponse, 0, len(items))
	for i := range items {
		out = append(out, toPokemonResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// FindOne handles GET /api/v2/pokemon/{term}.
func (h *PokemonHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.FindOne(r.Context(), r.PathValue("term"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPokemonResponse(p))
}

// Update handles PATCH /api/v2/pokemon/{term}.
func (h *PokemonHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePokemonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}

	p, err := h.svc.Update(r.Context(), r.PathValue("term"), pokemon.UpdateInput{No: req.No, Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPokemonResponse(p))
}

// Delete handles DELETE /api/v2/pokemon/{id}.
func (h *PokemonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseListInput(r *http.Request) (pokemon.ListInput, error) {
	var (
		input pokemon.ListInput
		errs  []domain.FieldError
	)

	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be a positive integer"})
		}
		input.Limit = n
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be zero or positive"})
		}
		input.Offset = n
	}

	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}

func toPokemonResponse(p *domain.Pokemon) pokemonResponse {
	return pokemonResponse{
		ID:        p.ID.String(),
		No:        p.No,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
