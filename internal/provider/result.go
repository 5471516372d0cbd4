package provider

// ListItem is one entry of a paginated listing from the external source:
// a display name and the reference URL of the full resource.
type ListItem struct {
	Name string
	URL  string
}
