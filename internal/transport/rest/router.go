package rest

import (
	"net/http"

	"github.com/Ramon-Molinero/pokedex/internal/transport/middleware"
)

// APIPrefix is the path prefix of the pokemon API.
const APIPrefix = "/api/v2"

// Routes bundles everything the router mounts. Metrics and Static are optional.
type Routes struct {
	Pokemon *PokemonHandler
	Seed    *SeedHandler
	Health  *HealthHandler
	Metrics http.Handler
	Static  http.Handler
}

// Register mounts all routes on mux.
func Register(mux *http.ServeMux, rt Routes) {
	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.Route(pattern, h))
	}

	handle("POST "+APIPrefix+"/pokemon", rt.Pokemon.Create)
	handle("GET "+APIPrefix+"/pokemon", rt.Pokemon.List)
	handle("GET "+APIPrefix+"/pokemon/{term}", rt.Pokemon.FindOne)
	handle("PATCH "+APIPrefix+"/pokemon/{term}", rt.Pokemon.Update)
	handle("DELETE "+APIPrefix+"/pokemon/{id}", rt.Pokemon.Delete)
	handle("GET "+APIPrefix+"/seed", rt.Seed.Execute)

	handle("GET /live", rt.Health.Live)
	handle("GET /ready", rt.Health.Ready)
	handle("GET /health", rt.Health.Health)

	if rt.Metrics != nil {
		mux.Handle("GET /metrics", middleware.Route("GET /metrics", rt.Metrics))
	}
	if rt.Static != nil {
		mux.Handle("GET /", middleware.Route("GET /", rt.Static))
	}
}
