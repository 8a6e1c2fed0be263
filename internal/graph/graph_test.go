package graph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/courtrank/ratingengine/internal/domain"
)

func singles(id, winner, loser int64) domain.MatchResult {
	return domain.MatchResult{ID: id, Winner1: winner, Loser1: loser}
}

func doubles(id, w1, w2, l1, l2 int64) domain.MatchResult {
	return domain.MatchResult{ID: id, Winner1: w1, Winner2: w2, Loser1: l1, Loser2: l2}
}

func TestComponents(t *testing.T) {
	g := New()
	g.AddEdge(3, 1)
	g.AddEdge(1, 2)
	g.AddEdge(6, 5)
	g.AddNode(9)

	got := g.Components()
	require.Equal(t, [][]int64{{1, 2, 3}, {5, 6}, {9}}, got)
}

func TestComponentsSelfEdgeIgnored(t *testing.T) {
	g := New()
	g.AddEdge(1, 1)
	require.Empty(t, g.Components())
}

func TestFromResultsDoublesCrossEdges(t *testing.T) {
	g := FromResults([]domain.MatchResult{doubles(1, 1, 2, 3, 4)})

	// one result connects all four through the winner-loser links
	require.Equal(t, [][]int64{{1, 2, 3, 4}}, g.Components())

	// partners are not linked directly
	require.NotContains(t, g.adj[1], int64(2))
	require.NotContains(t, g.adj[3], int64(4))
	require.Contains(t, g.adj[1], int64(3))
	require.Contains(t, g.adj[1], int64(4))
}

func TestDisconnectedPools(t *testing.T) {
	chain := []domain.MatchResult{
		singles(1, 1, 2),
		singles(2, 2, 3),
		singles(3, 3, 4),
	}
	isolated := singles(4, 5, 6)

	resultsByPlayer := map[int64][]domain.MatchResult{
		1: {chain[0]},
		2: {chain[0], chain[1]},
		3: {chain[1], chain[2]},
		4: {chain[2]},
		5: {isolated},
		6: {isolated},
	}

	got := DisconnectedPools(resultsByPlayer, 3)
	require.Equal(t, []int64{5, 6}, got)
}

func TestDisconnectedPoolsDedupesSharedResults(t *testing.T) {
	r := singles(1, 1, 2)
	resultsByPlayer := map[int64][]domain.MatchResult{
		1: {r},
		2: {r},
	}

	g := FromResults([]domain.MatchResult{r, r})
	require.Len(t, g.adj[1], 2) // without dedupe the edge doubles

	got := DisconnectedPools(resultsByPlayer, 2)
	require.Equal(t, []int64{1, 2}, got)
}

func TestDisconnectedPoolsNoneBelowThreshold(t *testing.T) {
	resultsByPlayer := map[int64][]domain.MatchResult{
		1: {singles(1, 1, 2), singles(2, 1, 3), singles(3, 1, 4)},
	}
	require.Empty(t, DisconnectedPools(resultsByPlayer, 3))
}
