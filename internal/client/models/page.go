// Package models defines the wire DTOs exchanged with the backoffice REST
// backend. These are pass-through payloads; the backend owns their semantics.
package models

// Page is the pagination envelope used by the users, customers and
// role-assignment collections.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
