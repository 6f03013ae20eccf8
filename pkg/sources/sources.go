// Package sources defines the catalog sources the reconciliation engine
// consumes. Exactly two source types exist: the commercial source, which is
// authoritative for price, SKU, and stock status, and the manufacturer
// source, which is authoritative for specifications, descriptions, and media.
package sources

// Type identifies one of the two product catalog sources.
type Type string

const (
	// Commercial is the distributor/retailer catalog. It carries price,
	// SKU, and stock truth.
	Commercial Type = "commercial"

	// Manufacturer is the brand's own catalog. It carries specification,
	// description, and media truth.
	Manufacturer Type = "manufacturer"
)

// String returns the string representation of the source type.
func (t Type) String() string {
	return string(t)
}

// IsValid checks if the source type is one of the two known sources.
func (t Type) IsValid() bool {
	switch t {
	case Commercial, Manufacturer:
		return true
	default:
		return false
	}
}

// All returns both source types in their canonical order.
func All() []Type {
	return []Type{Commercial, Manufacturer}
}
