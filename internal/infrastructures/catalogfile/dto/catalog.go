package dto

// Document mirrors the static travel recommendation JSON file. Every field
// is optional in the wild, hence the pointer leaves.
type Document struct {
	Temples   []Place   `json:"temples"`
	Beaches   []Place   `json:"beaches"`
	Countries []Country `json:"countries"`
}

type Country struct {
	Name   *string `json:"name"`
	Cities []Place `json:"cities"`
}

type Place struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	TimeZone    *string `json:"timeZone"`
}
