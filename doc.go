// Package weft is an attributed multigraph toolkit.
//
// The heart of the module is weft/core: a single immutable Graph value that
// mixes directed and undirected edges, permits parallel edges, and attaches
// arbitrary key/value attributes to nodes and edges. Algorithm libraries
// consume it through the core.GraphReader capability interface.
//
// Start with core.NewGraph / core.NewDigraph / core.NewMultigraph /
// core.NewMultidigraph, or core.New for explicit flags.
package weft
