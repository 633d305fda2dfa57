// Package core: structural equality.
//
// Two graphs are equal when their flags, node sets, node attributes, and
// logical edge multisets (kind, canonical endpoints, attributes) agree.
// Physical edge IDs are derivation history, not structure, so they are
// deliberately excluded; this is what makes import(export(g)) equal to g.

package core

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Equal reports whether g and other are structurally equal.
// Complexity: O(V + E·A) where A bounds attribute map size.
func (g *Graph) Equal(other *Graph) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil {
		return false
	}
	if g.allowParallel != other.allowParallel || g.undirected != other.undirected {
		return false
	}
	if len(g.nodes) != len(other.nodes) {
		return false
	}
	for id := range g.nodes {
		if _, ok := other.nodes[id]; !ok {
			return false
		}
		if !reflect.DeepEqual(g.attrs[id], other.attrs[id]) {
			return false
		}
	}
	return reflect.DeepEqual(g.edgeMultiset(), other.edgeMultiset())
}

// edgeMultiset counts logical edges by a canonical fingerprint of kind,
// endpoints, and attribute map.
func (g *Graph) edgeMultiset() map[string]int {
	out := make(map[string]int)
	for _, e := range g.UniqueEdges() {
		key := fmt.Sprintf("%d|%s|%s|%s", e.kind, e.src, e.dest, fingerprintAttrs(g.attrs[e.id]))
		out[key]++
	}
	return out
}

// fingerprintAttrs renders an attribute map deterministically. fmt prints
// nested maps with sorted keys, so equal maps produce equal fingerprints.
func fingerprintAttrs(a Attrs) string {
	if len(a) == 0 {
		return ""
	}
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%#v;", k, a[k])
	}
	return b.String()
}
