package capability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
	"github.com/tamylaa/clodo-framework-sub007/internal/domain/capability"
)

func TestNewModel_AllSlotsDefaulted(t *testing.T) {
	m := capability.NewModel()

	require.Len(t, m, len(capability.Slots))
	for _, s := range capability.Slots {
		st, ok := m[s]
		require.True(t, ok, "slot %s missing", s)
		assert.False(t, st.Configured)
		assert.False(t, st.Possible)
		assert.Empty(t, st.Provider)
		assert.Zero(t, st.Quantity)
	}
}

func TestMerge_EmptyResultsYieldDefaultModel(t *testing.T) {
	assert.Equal(t, capability.NewModel(), capability.Merge(nil))
}

func TestMerge_FirstConfiguringAnalysisWinsProvider(t *testing.T) {
	results := []capability.AnalysisResult{
		{Name: "dependencies", Contributions: []capability.Contribution{
			{Slot: capability.Database, Configured: true, Provider: "drizzle", Quantity: 1},
		}},
		{Name: "descriptor", Contributions: []capability.Contribution{
			{Slot: capability.Database, Configured: true, Provider: "d1", Quantity: 2},
		}},
	}

	m := capability.Merge(results)
	st := m[capability.Database]
	assert.True(t, st.Configured)
	assert.Equal(t, "d1", st.Provider, "descriptor precedes dependencies regardless of slice order")
	assert.Equal(t, 2, st.Quantity)
}

func TestMerge_ResultIndependentOfSliceOrder(t *testing.T) {
	forward := []capability.AnalysisResult{
		{Name: "descriptor", Contributions: []capability.Contribution{
			{Slot: capability.Deployment, Configured: true, Provider: "cloudflare", Quantity: 1},
		}},
		{Name: "layout", Contributions: []capability.Contribution{
			{Slot: capability.Deployment, Configured: true, Provider: "layout", Quantity: 9},
		}},
	}
	reversed := []capability.AnalysisResult{forward[1], forward[0]}

	assert.Equal(t, capability.Merge(forward), capability.Merge(reversed))
}

func TestMerge_PossibleIsSticky(t *testing.T) {
	results := []capability.AnalysisResult{
		{Name: "permissions", Contributions: []capability.Contribution{
			{Slot: capability.Storage, Possible: true},
		}},
	}

	m := capability.Merge(results)
	st := m[capability.Storage]
	assert.False(t, st.Configured)
	assert.True(t, st.Possible)
}

func TestMerge_ConfiguredImpliesPossible(t *testing.T) {
	results := []capability.AnalysisResult{
		{Name: "descriptor", Contributions: []capability.Contribution{
			{Slot: capability.Deployment, Configured: true, Provider: "cloudflare", Quantity: 1},
		}},
	}

	st := capability.Merge(results)[capability.Deployment]
	assert.True(t, st.Configured)
	assert.True(t, st.Possible)
}

func TestMerge_UnknownAnalysisNameIgnored(t *testing.T) {
	results := []capability.AnalysisResult{
		{Name: "horoscope", Contributions: []capability.Contribution{
			{Slot: capability.Deployment, Configured: true},
		}},
	}

	assert.Equal(t, capability.NewModel(), capability.Merge(results))
}

func TestConfiguredSlots_DeclarationOrder(t *testing.T) {
	m := capability.NewModel()
	m[capability.Framework] = capability.State{Configured: true}
	m[capability.Deployment] = capability.State{Configured: true}

	assert.Equal(t, []capability.Slot{capability.Deployment, capability.Framework}, m.ConfiguredSlots())
}

func TestExpectedFor_PerServiceType(t *testing.T) {
	base := []capability.Slot{capability.Deployment, capability.Framework}

	assert.Equal(t, append(append([]capability.Slot{}, base...), capability.Database, capability.Storage),
		capability.ExpectedFor(domain.ServiceTypeData))
	assert.Equal(t, append(append([]capability.Slot{}, base...), capability.Storage, capability.Authentication),
		capability.ExpectedFor(domain.ServiceTypeAuth))
	assert.Equal(t, append(append([]capability.Slot{}, base...), capability.Storage),
		capability.ExpectedFor(domain.ServiceTypeContent))
	assert.Equal(t, append(append([]capability.Slot{}, base...), capability.Messaging),
		capability.ExpectedFor(domain.ServiceTypeGateway))
	assert.Equal(t, base, capability.ExpectedFor(domain.ServiceTypeGeneric))
}

func TestSlotForPermission(t *testing.T) {
	slot, ok := capability.SlotForPermission("database:edit")
	assert.True(t, ok)
	assert.Equal(t, capability.Database, slot)

	slot, ok = capability.SlotForPermission("  Workers:Deploy ")
	assert.True(t, ok)
	assert.Equal(t, capability.Deployment, slot)

	_, ok = capability.SlotForPermission("coffee:brew")
	assert.False(t, ok)
}
