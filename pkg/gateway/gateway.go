// Package gateway is the read-only client for the catalog backend. The
// assistant and search layers depend on the CatalogGateway contract, never on
// the network directly.
package gateway

import "context"

// Offering is a normalized product offering record.
type Offering struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	Status      string
}

// Order is a normalized order record.
type Order struct {
	ID     string
	Number string
	Status string
	Total  float64
}

// User is a normalized user record.
type User struct {
	ID    string
	Name  string
	Email string
}

// CatalogGateway exposes the upstream collections the assistant reads.
type CatalogGateway interface {
	ListOfferings(ctx context.Context) ([]Offering, error)
	GetOffering(ctx context.Context, id string) (*Offering, error)
	ListOrders(ctx context.Context) ([]Order, error)
	ListUsers(ctx context.Context) ([]User, error)
}
