package declaration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jroosing/fleetdns/internal/declaration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDecl() *declaration.Declaration {
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

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validDecl().Validate())
}

func TestValidate_MissingDomain(t *testing.T) {
	d := validDecl()
	d.Zone.Domain = ""
	assert.Error(t, d.Validate())
}

func TestValidate_BadDomain(t *testing.T) {
	for _, domain := range []string{"localhost", "exa mple.io", "-bad.io", "bad-.io", "under_score.io"} {
		d := validDecl()
		d.Zone.Domain = domain
		assert.Error(t, d.Validate(), "domain %q should be rejected", domain)
	}
}

func TestValidate_BadZoneType(t *testing.T) {
	d := validDecl()
	d.Zone.Type = "tertiary"
	assert.Error(t, d.Validate())
}

func TestValidate_PrimaryRequiresSOAEmail(t *testing.T) {
	d := validDecl()
	d.Zone.SOAEmail = ""
	assert.Error(t, d.Validate())

	// Secondary zones have no SOA of their own.
	d.Zone.Type = declaration.ZoneSecondary
	assert.NoError(t, d.Validate())
}

func TestValidate_CountExceedsAddresses(t *testing.T) {
	d := validDecl()
	d.ServerCount = 3
	assert.Error(t, d.Validate())
}

func TestValidate_NegativeCount(t *testing.T) {
	d := validDecl()
	d.ServerCount = -1
	assert.Error(t, d.Validate())
}

func TestValidate_BadAddress(t *testing.T) {
	d := validDecl()
	d.Addresses[1] = "10.0.0.256"
	assert.Error(t, d.Validate())
}

func TestValidate_ZeroTTL(t *testing.T) {
	d := validDecl()
	d.TTL = 0
	assert.Error(t, d.Validate())
}

func TestParse_AppliesDefaults(t *testing.T) {
	raw := `
zone:
  domain: Example.IO.
  soa_email: ops@example.io
server_count: 1
addresses:
  - 10.0.0.1
`
	d, err := declaration.Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "example.io", d.Zone.Domain)
	assert.Equal(t, declaration.ZonePrimary, d.Zone.Type)
	assert.Equal(t, declaration.DefaultTTL, d.TTL)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := declaration.Parse([]byte("zone: [oops"))
	assert.Error(t, err)
}

func TestParse_InvalidDeclaration(t *testing.T) {
	_, err := declaration.Parse([]byte("zone:\n  domain: example.io\nserver_count: 5\n"))
	assert.Error(t, err)
}

func TestLoad_RoundTrip(t *testing.T) {
	d := validDecl()
	d.Zone.Labels = map[string]string{"env": "prod"}

	data, err := d.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "zone.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := declaration.Load(path)
	require.NoError(t, err)
	assert.Equal(t, d, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := declaration.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRecordFQDN(t *testing.T) {
	apex := declaration.Record{Host: "", Type: "A", Value: "10.0.0.1"}
	assert.Equal(t, "example.io", apex.FQDN("example.io"))

	labeled := declaration.Record{Host: "server0", Type: "A", Value: "10.0.0.1"}
	assert.Equal(t, "server0.example.io", labeled.FQDN("example.io"))
}
