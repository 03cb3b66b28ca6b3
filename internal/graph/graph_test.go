package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldforge/fieldforge/internal/domain"
)

func TestOrderPlacesChildrenAfterParents(t *testing.T) {
	order, err := Order(domain.Entities, domain.Parents)
	require.NoError(t, err)
	require.Len(t, order, len(domain.Entities))

	pos := make(map[string]int, len(order))
	for i, name := range order {
		pos[name] = i
	}
	for child, parents := range domain.Parents {
		for _, parent := range parents {
			assert.Less(t, pos[parent], pos[child], "%s must be generated before %s", parent, child)
		}
	}
}

func TestOrderIsDeterministic(t *testing.T) {
	first, err := Order(domain.Entities, domain.Parents)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Order(domain.Entities, domain.Parents)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestOrderKeepsDeclarationOrderWhenValid(t *testing.T) {
	// The domain declares entities in an order that already satisfies the
	// DAG, so the scheduler should reproduce it exactly.
	order, err := Order(domain.Entities, domain.Parents)
	require.NoError(t, err)
	assert.Equal(t, domain.Entities, order)
}

func TestOrderRejectsCycle(t *testing.T) {
	names := []string{"a", "b", "c"}
	deps := Dependencies{
		"a": {"c"},
		"b": {"a"},
		"c": {"b"},
	}
	_, err := Order(names, deps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestOrderRejectsUndeclaredDependency(t *testing.T) {
	names := []string{"a"}
	deps := Dependencies{
		"a": {"ghost"},
	}
	_, err := Order(names, deps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestOrderIgnoresSelfReference(t *testing.T) {
	names := []string{"a", "b"}
	deps := Dependencies{
		"a": {"a"},
		"b": {"a"},
	}
	order, err := Order(names, deps)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, order)
}
