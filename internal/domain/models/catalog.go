package models

// Destination is one recommendable place (temple, beach, or city).
// All fields are optional in the source document; absent values stay empty.
type Destination struct {
	Name        string
	Description string
	ImageURL    string
	TimeZone    string
}

type Country struct {
	Name   string
	Cities []Destination
}

// Catalog is the full destination dataset, loaded once per process.
type Catalog struct {
	Temples   []Destination
	Beaches   []Destination
	Countries []Country
}
