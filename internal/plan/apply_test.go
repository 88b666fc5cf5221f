package plan_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jroosing/fleetdns/internal/plan"
	"github.com/jroosing/fleetdns/internal/provider"
)

func TestPlan_MissingZone(t *testing.T) {
	a := plan.NewApplier(provider.NewMemory(), nil)

	p, err := a.Plan(context.Background(), fleetDecl(2, "10.0.0.1", "10.0.0.2"))
	require.NoError(t, err)
	assert.True(t, p.CreateZone)
	assert.Len(t, p.Create, 4)
}

func TestApply_FreshZone(t *testing.T) {
	ctx := context.Background()
	mem := provider.NewMemory()
	a := plan.NewApplier(mem, nil)

	result, err := a.Apply(ctx, fleetDecl(2, "10.0.0.1", "10.0.0.2"))
	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 4, result.Created)
	assert.Zero(t, result.Updated)
	assert.Zero(t, result.Deleted)

	zone, err := mem.GetZone(ctx, "example.io")
	require.NoError(t, err)
	assert.Equal(t, "primary", zone.Kind)

	records, err := mem.Records(ctx, "example.io")
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestApply_Idempotent(t *testing.T) {
	ctx := context.Background()
	mem := provider.NewMemory()
	a := plan.NewApplier(mem, nil)
	decl := fleetDecl(2, "10.0.0.1", "10.0.0.2")

	_, err := a.Apply(ctx, decl)
	require.NoError(t, err)

	// Second apply of identical inputs changes nothing.
	result, err := a.Apply(ctx, decl)
	require.NoError(t, err)
	assert.Zero(t, result.Created)
	assert.Zero(t, result.Updated)
	assert.Zero(t, result.Deleted)

	records, err := mem.Records(ctx, "example.io")
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestApply_ScaleDown(t *testing.T) {
	ctx := context.Background()
	mem := provider.NewMemory()
	a := plan.NewApplier(mem, nil)

	_, err := a.Apply(ctx, fleetDecl(2, "10.0.0.1", "10.0.0.2"))
	require.NoError(t, err)

	result, err := a.Apply(ctx, fleetDecl(1, "10.0.0.1"))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Deleted)

	records, err := mem.Records(ctx, "example.io")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestApply_AddressChange(t *testing.T) {
	ctx := context.Background()
	mem := provider.NewMemory()
	a := plan.NewApplier(mem, nil)

	_, err := a.Apply(ctx, fleetDecl(1, "10.0.0.1"))
	require.NoError(t, err)

	// Instance replaced: address changes, record count stays.
	result, err := a.Apply(ctx, fleetDecl(1, "10.0.0.9"))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 2, result.Deleted)

	records, err := mem.Records(ctx, "example.io")
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, "10.0.0.9", rec.Value)
	}
}

func TestApply_TTLChange(t *testing.T) {
	ctx := context.Background()
	mem := provider.NewMemory()
	a := plan.NewApplier(mem, nil)

	_, err := a.Apply(ctx, fleetDecl(1, "10.0.0.1"))
	require.NoError(t, err)

	decl := fleetDecl(1, "10.0.0.1")
	decl.TTL = 60
	result, err := a.Apply(ctx, decl)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Updated)

	records, err := mem.Records(ctx, "example.io")
	require.NoError(t, err)
	for _, rec := range records {
		assert.Equal(t, 60, rec.TTL)
	}
}
