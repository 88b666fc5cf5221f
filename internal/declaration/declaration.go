// Package declaration defines the desired-state zone declaration for a
// server fleet and derives the DNS record set it implies.
//
// A declaration names exactly one zone (domain, administrative contact,
// primary/secondary type, labels) and a fleet of numbered servers whose
// addresses come positionally from an externally provisioned list. The
// derived record set is a pure function of the declaration: for every
// server index i there is one apex address record and one "server{i}"
// address record, both targeting address i.
package declaration

import (
	"fmt"
	"net"
	"strings"
)

// ZoneType distinguishes primary (master) from secondary (slave) zones.
type ZoneType string

const (
	ZonePrimary   ZoneType = "primary"
	ZoneSecondary ZoneType = "secondary"
)

// DefaultTTL is applied when a declaration does not set a TTL.
const DefaultTTL = 300

// Zone describes the single DNS zone a declaration manages.
type Zone struct {
	// Domain is the zone name without trailing dot, e.g. "example.io".
	Domain string `yaml:"domain" json:"domain"`
	// SOAEmail is the administrative contact for the zone.
	SOAEmail string `yaml:"soa_email" json:"soa_email"`
	// Type is "primary" (default) or "secondary".
	Type ZoneType `yaml:"type" json:"type"`
	// Labels are opaque key/value tags forwarded to the provider.
	Labels map[string]string `yaml:"labels,omitempty" json:"labels,omitempty"`
}

// Declaration is the complete desired state for one zone.
type Declaration struct {
	Zone Zone `yaml:"zone" json:"zone"`
	// ServerCount is the number of fleet servers to publish.
	ServerCount int `yaml:"server_count" json:"server_count"`
	// Addresses holds the instance IPs, indexed by server number.
	// It may be longer than ServerCount; extra entries are ignored.
	Addresses []string `yaml:"addresses" json:"addresses"`
	// TTL in seconds for all derived records.
	TTL int `yaml:"ttl" json:"ttl"`
}

// Record is one derived DNS record.
type Record struct {
	// Host is the label within the zone; empty means the zone apex.
	Host string `json:"host"`
	// Type is "A" or "AAAA" depending on the address family.
	Type string `json:"type"`
	// Value is the target IP address.
	Value string `json:"value"`
	// TTL in seconds.
	TTL int `json:"ttl"`
}

// FQDN returns the fully qualified name of the record within zone,
// without trailing dot.
func (r Record) FQDN(zone string) string {
	if r.Host == "" {
		return zone
	}
	return r.Host + "." + zone
}

// ServerLabel returns the host label for server index i.
func ServerLabel(i int) string {
	return fmt.Sprintf("server%d", i)
}

// applyDefaults fills zero values before validation.
func (d *Declaration) applyDefaults() {
	d.Zone.Domain = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(d.Zone.Domain), "."))
	if d.Zone.Type == "" {
		d.Zone.Type = ZonePrimary
	}
	if d.TTL == 0 {
		d.TTL = DefaultTTL
	}
}

// Validate checks the declaration for internal consistency.
func (d *Declaration) Validate() error {
	if d.Zone.Domain == "" {
		return fmt.Errorf("zone.domain is required")
	}
	if !validDomain(d.Zone.Domain) {
		return fmt.Errorf("zone.domain %q is not a valid domain name", d.Zone.Domain)
	}
	switch d.Zone.Type {
	case ZonePrimary, ZoneSecondary:
	default:
		return fmt.Errorf("zone.type %q must be %q or %q", d.Zone.Type, ZonePrimary, ZoneSecondary)
	}
	if d.Zone.Type == ZonePrimary && d.Zone.SOAEmail == "" {
		return fmt.Errorf("zone.soa_email is required for primary zones")
	}
	if d.ServerCount < 0 {
		return fmt.Errorf("server_count must not be negative")
	}
	if d.ServerCount > len(d.Addresses) {
		return fmt.Errorf("server_count %d exceeds the %d available addresses", d.ServerCount, len(d.Addresses))
	}
	for i, addr := range d.Addresses {
		if net.ParseIP(addr) == nil {
			return fmt.Errorf("addresses[%d]: %q is not a valid IP address", i, addr)
		}
	}
	if d.TTL <= 0 {
		return fmt.Errorf("ttl must be positive")
	}
	return nil
}
