// Package catalog holds the demonstration entities used by loader tests
// and the example configuration. The members cover every case the engine
// distinguishes: open fields, guarded fields picked out by suffix and by
// explicit name, subclass-only fields, unexported implementation fields,
// and entity-level (static) declarations.
package catalog

import (
	"time"
)

// Product represents a sellable item. Stock and PriceCents are the
// members a guarded view is expected to make read-only: external code may
// inspect them but only the catalog's own logic adjusts them.
type Product struct {
	ID          int64
	SKU         string
	Name        string
	Description string
	PriceCents  int64
	Stock       int
	CreatedAt   time.Time

	// Rating is maintained by review aggregation; visible to extensions
	// of the catalog but not part of the published surface.
	Rating float64 `guard:"subclass"`

	internalNote string
}

// Product entity-level declarations (the static facet).
var (
	ProductDefaultCurrency = "USD"
	ProductPriceFloorCents = int64(1)
)

const ProductMaxStock = 100_000

// Customer represents a buyer. The *Raw members hold unnormalized input
// and are guarded by a suffix pattern in the example configuration.
type Customer struct {
	ID       int64
	FullName string
	IsActive bool

	EmailRaw string
	PhoneRaw string

	// Segment is computed by marketing jobs; subclass-only.
	Segment string `guard:"subclass"`

	passwordHash string
}

// Customer entity-level declarations.
var CustomerDefaultSegment = "unassigned"

// Note returns the private note attached to a product. Kept so the
// unexported field is referenced and the demo package vets clean.
func (p Product) Note() string {
	return p.internalNote
}

// HasPassword reports whether a password hash is set.
func (c Customer) HasPassword() bool {
	return c.passwordHash != ""
}
