package declaration_test

import (
	"testing"

	"github.com/jroosing/fleetdns/internal/declaration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_TwoServers(t *testing.T) {
	d := validDecl()
	records := d.Derive()

	require.Len(t, records, 4)
	assert.Equal(t, declaration.Record{Host: "", Type: "A", Value: "10.0.0.1", TTL: 300}, records[0])
	assert.Equal(t, declaration.Record{Host: "", Type: "A", Value: "10.0.0.2", TTL: 300}, records[1])
	assert.Equal(t, declaration.Record{Host: "server0", Type: "A", Value: "10.0.0.1", TTL: 300}, records[2])
	assert.Equal(t, declaration.Record{Host: "server1", Type: "A", Value: "10.0.0.2", TTL: 300}, records[3])
}

func TestDerive_CountsPerLabel(t *testing.T) {
	d := validDecl()
	d.ServerCount = 2
	records := d.Derive()

	apex, labeled := 0, 0
	for _, r := range records {
		if r.Host == "" {
			apex++
		} else {
			labeled++
		}
	}
	assert.Equal(t, d.ServerCount, apex)
	assert.Equal(t, d.ServerCount, labeled)
}

func TestDerive_PositionalTargets(t *testing.T) {
	d := validDecl()
	d.Addresses = []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"}
	d.ServerCount = 3

	records := d.Derive()
	for i := 0; i < d.ServerCount; i++ {
		assert.Equal(t, d.Addresses[i], records[i].Value, "apex record %d", i)
		assert.Equal(t, d.Addresses[i], records[d.ServerCount+i].Value, "labeled record %d", i)
		assert.Equal(t, declaration.ServerLabel(i), records[d.ServerCount+i].Host)
	}
}

func TestDerive_ZeroServers(t *testing.T) {
	d := validDecl()
	d.ServerCount = 0
	assert.Empty(t, d.Derive())
}

func TestDerive_IgnoresExtraAddresses(t *testing.T) {
	d := validDecl()
	d.Addresses = append(d.Addresses, "10.0.0.99")

	records := d.Derive()
	require.Len(t, records, 4)
	for _, r := range records {
		assert.NotEqual(t, "10.0.0.99", r.Value)
	}
}

func TestDerive_Deterministic(t *testing.T) {
	d := validDecl()
	assert.Equal(t, d.Derive(), d.Derive())
}

func TestDerive_IPv6(t *testing.T) {
	d := validDecl()
	d.Addresses = []string{"2001:db8::1"}
	d.ServerCount = 1

	records := d.Derive()
	require.Len(t, records, 2)
	assert.Equal(t, "AAAA", records[0].Type)
	assert.Equal(t, "AAAA", records[1].Type)
}

func TestServerLabel(t *testing.T) {
	assert.Equal(t, "server0", declaration.ServerLabel(0))
	assert.Equal(t, "server12", declaration.ServerLabel(12))
}
