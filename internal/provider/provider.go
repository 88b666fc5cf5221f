// Package provider defines the boundary to external DNS provider APIs.
//
// Concrete providers (hetzner, memory) implement Provider and register
// themselves by name; callers construct one via New. Types here are
// provider-neutral: each backend maps them onto its own wire format.
package provider

import (
	"context"
	"errors"
)

// ErrZoneNotFound is returned when the named zone does not exist at the
// provider.
var ErrZoneNotFound = errors.New("zone not found")

// ErrRecordNotFound is returned when a record lookup by ID fails.
var ErrRecordNotFound = errors.New("record not found")

// Zone is the provider-side zone entity.
type Zone struct {
	// ID is the provider-assigned zone identifier.
	ID string
	// Name is the zone domain without trailing dot.
	Name string
	// Email is the administrative contact.
	Email string
	// Kind is "primary" or "secondary".
	Kind string
	// Labels are opaque tags; providers that cannot store them may
	// drop them silently.
	Labels map[string]string
}

// Record is the provider-side record entity.
type Record struct {
	// ID is the provider-assigned record identifier, empty for
	// records that do not exist remotely yet.
	ID string
	// Host is the label within the zone; "@" or "" means the apex.
	Host string
	// Type is the record type, e.g. "A" or "AAAA".
	Type string
	// Value is the record target.
	Value string
	// TTL in seconds; 0 means provider default.
	TTL int
}

// Provider is the interface DNS backends must implement. All calls take
// a context; implementations must respect cancellation on network I/O.
type Provider interface {
	// Name returns the registered provider name.
	Name() string

	// EnsureZone creates the zone if missing and returns it.
	EnsureZone(ctx context.Context, zone Zone) (Zone, error)

	// GetZone fetches the zone by domain name. Returns
	// ErrZoneNotFound if it does not exist.
	GetZone(ctx context.Context, domain string) (Zone, error)

	// DeleteZone removes the zone and all its records.
	DeleteZone(ctx context.Context, domain string) error

	// Records lists all records in the zone.
	Records(ctx context.Context, domain string) ([]Record, error)

	// CreateRecord adds a record to the zone.
	CreateRecord(ctx context.Context, domain string, rec Record) error

	// UpdateRecord rewrites the record identified by rec.ID.
	UpdateRecord(ctx context.Context, domain string, rec Record) error

	// DeleteRecord removes the record with the given provider ID.
	DeleteRecord(ctx context.Context, domain string, recordID string) error
}

// NormalizeHost maps provider apex spellings ("@", the bare domain) to
// the empty host label used internally.
func NormalizeHost(host, domain string) string {
	if host == "@" || host == domain || host == domain+"." {
		return ""
	}
	return host
}
