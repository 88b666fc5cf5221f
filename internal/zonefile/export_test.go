package zonefile_test

import (
	"strings"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jroosing/fleetdns/internal/declaration"
	"github.com/jroosing/fleetdns/internal/zonefile"
)

func testDecl() *declaration.Declaration {
	return &declaration.Declaration{
		Zone: declaration.Zone{
			Domain:   "example.io",
			SOAEmail: "ops@example.io",
			Type:     declaration.ZonePrimary,
		},
		ServerCount: 2,
		Addresses:   []string{"10.0.0.1", "10.0.0.2"},
		TTL:         300,
	}
}

func TestExport_Header(t *testing.T) {
	out, err := zonefile.Export(testDecl())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "$ORIGIN example.io.\n$TTL 300\n"))
	assert.Contains(t, out, "SOA")
	assert.Contains(t, out, "ops.example.io.")
}

func TestExport_Records(t *testing.T) {
	out, err := zonefile.Export(testDecl())
	require.NoError(t, err)

	assert.Contains(t, out, "10.0.0.1")
	assert.Contains(t, out, "10.0.0.2")
	assert.Contains(t, out, "server0.example.io.")
	assert.Contains(t, out, "server1.example.io.")
}

func TestExport_SecondaryZoneHasNoSOA(t *testing.T) {
	d := testDecl()
	d.Zone.Type = declaration.ZoneSecondary

	out, err := zonefile.Export(d)
	require.NoError(t, err)
	assert.NotContains(t, out, "SOA")
}

func TestExport_ParsesBackAsZone(t *testing.T) {
	out, err := zonefile.Export(testDecl())
	require.NoError(t, err)

	zp := dns.NewZoneParser(strings.NewReader(out), "example.io.", "export")
	var aRecords int
	for rr, ok := zp.Next(); ok; rr, ok = zp.Next() {
		if rr.Header().Rrtype == dns.TypeA {
			aRecords++
		}
	}
	require.NoError(t, zp.Err())
	assert.Equal(t, 4, aRecords)
}

func TestExport_IPv6(t *testing.T) {
	d := testDecl()
	d.Addresses = []string{"2001:db8::1"}
	d.ServerCount = 1

	out, err := zonefile.Export(d)
	require.NoError(t, err)
	assert.Contains(t, out, "AAAA")
	assert.Contains(t, out, "2001:db8::1")
}
