// Package graph finds groups of players whose results never connect them
// to the wider player pool. Ratings inside such a pool float freely
// against everyone else, so the pools are detected after a run and their
// ratings cleared.
package graph

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/courtrank/ratingengine/internal/domain"
)

// Graph is an undirected played-against graph over player ids.
type Graph struct {
	nodes mapset.Set[int64]
	adj   map[int64][]int64
}

func New() *Graph {
	return &Graph{
		nodes: mapset.NewThreadUnsafeSet[int64](),
		adj:   make(map[int64][]int64),
	}
}

func (g *Graph) AddNode(id int64) {
	g.nodes.Add(id)
}

// AddEdge links two players in both directions. Self links are ignored.
func (g *Graph) AddEdge(a, b int64) {
	if a == b {
		return
	}
	g.nodes.Add(a)
	g.nodes.Add(b)
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
}

// Components returns the connected components, each sorted ascending, in
// ascending order of their smallest member. The order is deterministic.
func (g *Graph) Components() [][]int64 {
	ids := g.nodes.ToSlice()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	seen := mapset.NewThreadUnsafeSet[int64]()
	var components [][]int64
	for _, start := range ids {
		if seen.Contains(start) {
			continue
		}
		var component []int64
		queue := []int64{start}
		seen.Add(start)
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			component = append(component, id)
			for _, next := range g.adj[id] {
				if seen.Contains(next) {
					continue
				}
				seen.Add(next)
				queue = append(queue, next)
			}
		}
		sort.Slice(component, func(i, j int) bool { return component[i] < component[j] })
		components = append(components, component)
	}
	return components
}

// FromResults builds the graph from a set of results. A doubles result
// links every winner to every loser; partners are not linked to each
// other, so a pair that only ever plays together does not connect through
// the pairing alone.
func FromResults(results []domain.MatchResult) *Graph {
	g := New()
	for i := range results {
		r := &results[i]
		winners := []int64{r.Winner1}
		if r.Winner2 != 0 {
			winners = append(winners, r.Winner2)
		}
		losers := []int64{r.Loser1}
		if r.Loser2 != 0 {
			losers = append(losers, r.Loser2)
		}
		for _, w := range winners {
			for _, l := range losers {
				g.AddEdge(w, l)
			}
		}
	}
	return g
}

// DisconnectedPools returns the ids of every player stranded in a
// component at or below the threshold size. Results appearing under
// several players are counted once.
func DisconnectedPools(resultsByPlayer map[int64][]domain.MatchResult, threshold int) []int64 {
	seen := mapset.NewThreadUnsafeSet[int64]()
	var results []domain.MatchResult
	for _, rs := range resultsByPlayer {
		for i := range rs {
			if seen.Contains(rs[i].ID) {
				continue
			}
			seen.Add(rs[i].ID)
			results = append(results, rs[i])
		}
	}
	g := FromResults(results)
	var stranded []int64
	for _, component := range g.Components() {
		if len(component) <= threshold {
			stranded = append(stranded, component...)
		}
	}
	sort.Slice(stranded, func(i, j int) bool { return stranded[i] < stranded[j] })
	return stranded
}
