package pokeapi

// apiList is the paginated resource listing returned by PokeAPI.
type apiList struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []apiResource `json:"results"`
}

// apiResource is a named reference to a single resource.
type apiResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
