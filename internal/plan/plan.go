// Package plan diffs a declaration's derived record set against the
// records a provider actually holds, and applies the resulting change
// set. Plan and apply are one-shot operations; there is no background
// convergence loop.
package plan

import (
	"fmt"
	"sort"

	"github.com/jroosing/fleetdns/internal/declaration"
	"github.com/jroosing/fleetdns/internal/provider"
)

// Plan is the change set that would converge actual state to desired
// state.
type Plan struct {
	// Domain the plan applies to.
	Domain string
	// CreateZone is set when the zone itself is missing at the provider.
	CreateZone bool
	// Create holds desired records with no remote counterpart.
	Create []provider.Record
	// Update holds remote records (by ID) whose TTL drifted.
	Update []provider.Record
	// Delete holds remote managed records not in the desired set.
	Delete []provider.Record
}

// Empty reports whether applying the plan would change nothing.
func (p *Plan) Empty() bool {
	return !p.CreateZone && len(p.Create) == 0 && len(p.Update) == 0 && len(p.Delete) == 0
}

// Summary renders the terraform-style one-line change count.
func (p *Plan) Summary() string {
	return fmt.Sprintf("%d to create, %d to update, %d to delete", len(p.Create), len(p.Update), len(p.Delete))
}

// managedType reports whether FleetDNS owns records of this type.
// Everything else in the zone (NS, SOA, MX, TXT, ...) is left alone.
func managedType(t string) bool {
	return t == "A" || t == "AAAA"
}

// Desired converts the declaration's derived records to provider form.
func Desired(decl *declaration.Declaration) []provider.Record {
	derived := decl.Derive()
	records := make([]provider.Record, 0, len(derived))
	for _, rec := range derived {
		records = append(records, provider.Record{
			Host:  rec.Host,
			Type:  rec.Type,
			Value: rec.Value,
			TTL:   rec.TTL,
		})
	}
	return records
}

type recordKey struct {
	Host  string
	Type  string
	Value string
}

// Diff computes the change set between desired and actual records.
//
// Records match on (host, type, value); apex round-robin entries are
// therefore individually tracked. A matched record with a different TTL
// becomes an update carrying the remote ID. Matching is multiset-aware:
// duplicate desired entries need the same number of remote entries.
func Diff(domain string, desired, actual []provider.Record) Plan {
	p := Plan{Domain: domain}

	unmatched := make(map[recordKey][]provider.Record)
	for _, rec := range actual {
		if !managedType(rec.Type) {
			continue
		}
		key := recordKey{rec.Host, rec.Type, rec.Value}
		unmatched[key] = append(unmatched[key], rec)
	}

	for _, want := range desired {
		key := recordKey{want.Host, want.Type, want.Value}
		pool := unmatched[key]
		if len(pool) == 0 {
			p.Create = append(p.Create, want)
			continue
		}
		got := pool[0]
		unmatched[key] = pool[1:]
		if got.TTL != want.TTL {
			updated := got
			updated.TTL = want.TTL
			p.Update = append(p.Update, updated)
		}
	}

	for _, pool := range unmatched {
		p.Delete = append(p.Delete, pool...)
	}
	sort.Slice(p.Delete, func(i, j int) bool {
		a, b := p.Delete[i], p.Delete[j]
		if a.Host != b.Host {
			return a.Host < b.Host
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.Value < b.Value
	})

	return p
}
