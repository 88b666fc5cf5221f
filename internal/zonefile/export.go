// Package zonefile renders a declaration's derived record set as BIND
// zone file text. The export is a preview/debugging aid; the provider
// API remains the authoritative publishing path.
package zonefile

import (
	"fmt"
	"net"
	"strings"

	"github.com/miekg/dns"

	"github.com/jroosing/fleetdns/internal/declaration"
)

// Export renders the declaration as zone file text. Primary zones get a
// synthesized SOA at the top so the output is loadable as-is.
func Export(decl *declaration.Declaration) (string, error) {
	origin := dns.Fqdn(decl.Zone.Domain)

	var b strings.Builder
	fmt.Fprintf(&b, "$ORIGIN %s\n", origin)
	fmt.Fprintf(&b, "$TTL %d\n", decl.TTL)

	if decl.Zone.Type == declaration.ZonePrimary {
		soa := &dns.SOA{
			Hdr:     dns.RR_Header{Name: origin, Rrtype: dns.TypeSOA, Class: dns.ClassINET, Ttl: uint32(decl.TTL)},
			Ns:      "ns1." + origin,
			Mbox:    soaMbox(decl.Zone.SOAEmail),
			Serial:  1,
			Refresh: 7200,
			Retry:   3600,
			Expire:  1209600,
			Minttl:  uint32(decl.TTL),
		}
		b.WriteString(soa.String())
		b.WriteString("\n")
	}

	for _, rec := range decl.Derive() {
		rr, err := recordRR(rec, decl.Zone.Domain)
		if err != nil {
			return "", err
		}
		b.WriteString(rr.String())
		b.WriteString("\n")
	}

	return b.String(), nil
}

func recordRR(rec declaration.Record, zone string) (dns.RR, error) {
	name := dns.Fqdn(rec.FQDN(zone))
	ip := net.ParseIP(rec.Value)
	if ip == nil {
		return nil, fmt.Errorf("record %s: invalid address %q", name, rec.Value)
	}

	hdr := dns.RR_Header{Name: name, Class: dns.ClassINET, Ttl: uint32(rec.TTL)}
	if v4 := ip.To4(); v4 != nil {
		hdr.Rrtype = dns.TypeA
		return &dns.A{Hdr: hdr, A: v4}, nil
	}
	hdr.Rrtype = dns.TypeAAAA
	return &dns.AAAA{Hdr: hdr, AAAA: ip}, nil
}

// soaMbox converts an email address to SOA mailbox form
// (user@example.io -> user.example.io.).
func soaMbox(email string) string {
	mbox := strings.Replace(email, "@", ".", 1)
	return dns.Fqdn(mbox)
}
