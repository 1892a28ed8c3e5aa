package tests

import (
	"testing"

	"github.com/aretw0/brush/pkg/domain"
	"github.com/aretw0/brush/pkg/ports"
)

// TrackingSourceContractTest is a reusable test suite that verifies if an adapter complies with ports.TrackingSource.
// The source must currently report node with a resolved position.
func TrackingSourceContractTest(t *testing.T, source ports.TrackingSource, node domain.Node) {
	t.Helper()

	// 1. The tracked node is listed
	t.Run("NodeStates_Contains", func(t *testing.T) {
		found := false
		for _, s := range source.NodeStates() {
			if s.Node == node {
				found = true
				if _, ok := s.TryPosition(); !ok {
					t.Errorf("expected node %s to report a position", node)
				}
			}
		}
		if !found {
			t.Fatalf("expected node %s in node states", node)
		}
	})

	// 2. Querying does not consume the sample
	t.Run("NodeStates_Repeatable", func(t *testing.T) {
		first := source.NodeStates()
		second := source.NodeStates()
		if len(first) != len(second) {
			t.Errorf("node list changed between queries: %d vs %d", len(first), len(second))
		}
	})
}
