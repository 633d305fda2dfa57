// Package core: the attribute store.
//
// Attributes live in one map keyed by entity identity: a node's own ID, or
// the shared ID of a logical edge. Every operation first resolves its target
// (a node ID, an edge value, or an edge description) to that identity.
// The "weight" attribute is ordinary data with a read convention: absent
// means 1.

package core

import (
	"fmt"
	"sort"
)

// WeightKey is the attribute key read by Weight. Weight is ordinary
// attribute data, mutable through the attribute API like any other key.
const WeightKey = "weight"

// Attrs returns a copy of the attribute map stored for entity, or an empty
// map when none was ever set. The entity may be a node ID (string), an Edge,
// an EdgeRef, or a 2/3-element edge description.
func (g *Graph) Attrs(entity any) (Attrs, error) {
	id, err := g.resolveEntity(entity)
	if err != nil {
		return nil, err
	}
	if a, ok := g.attrs[id]; ok {
		return a.clone(), nil
	}
	return Attrs{}, nil
}

// Attr returns the value bound to key on entity and whether it was present.
func (g *Graph) Attr(entity any, key string) (any, bool, error) {
	id, err := g.resolveEntity(entity)
	if err != nil {
		return nil, false, err
	}
	v, ok := g.attrs[id][key]
	return v, ok, nil
}

// SetAttrs replaces entity's stored attribute map wholesale and returns the
// new graph value. An empty map clears the entry.
func (g *Graph) SetAttrs(entity any, attrs Attrs) (*Graph, error) {
	id, err := g.resolveEntity(entity)
	if err != nil {
		return g, err
	}
	out := g.derive()
	out.setAttrsEntry(id, attrs.clone())
	return out, nil
}

// MergeAttrs merges the given keys into entity's attribute map; new values
// win on collision. Merging an empty map is a no-op.
func (g *Graph) MergeAttrs(entity any, attrs Attrs) (*Graph, error) {
	id, err := g.resolveEntity(entity)
	if err != nil {
		return g, err
	}
	if len(attrs) == 0 {
		return g, nil
	}
	out := g.derive()
	merged := out.attrs[id].clone()
	if merged == nil {
		merged = make(Attrs, len(attrs))
	}
	for k, v := range attrs {
		merged[k] = v
	}
	out.attrs[id] = merged
	return out, nil
}

// RemoveAttrs deletes the named keys from entity's attribute map. Keys that
// were never set are ignored.
func (g *Graph) RemoveAttrs(entity any, keys ...string) (*Graph, error) {
	id, err := g.resolveEntity(entity)
	if err != nil {
		return g, err
	}
	stored, ok := g.attrs[id]
	if !ok || len(keys) == 0 {
		return g, nil
	}
	next := stored.clone()
	for _, k := range keys {
		delete(next, k)
	}
	out := g.derive()
	out.setAttrsEntry(id, next)
	return out, nil
}

// Weight reads the "weight" attribute of an edge, edge description, or node,
// defaulting to 1 when absent. Returns ErrBadWeight for non-numeric values.
func (g *Graph) Weight(entity any) (float64, error) {
	v, ok, err := g.Attr(entity, WeightKey)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 1, nil
	}
	w, numeric := toFloat(v)
	if !numeric {
		return 0, fmt.Errorf("%w: %T", ErrBadWeight, v)
	}
	return w, nil
}

// AttrKeys lists every entity identity with stored attributes, sorted.
// Node identities are node IDs; edge identities are logical edge IDs.
func (g *Graph) AttrKeys() []string {
	keys := make([]string, 0, len(g.attrs))
	for id := range g.attrs {
		keys = append(keys, id)
	}
	sort.Strings(keys)
	return keys
}

// setAttrsEntry installs attrs under id, dropping empty entries so the store
// never carries dead keys. Only valid on private derivations.
func (g *Graph) setAttrsEntry(id string, attrs Attrs) {
	if len(attrs) == 0 {
		delete(g.attrs, id)
		return
	}
	g.attrs[id] = attrs
}

// resolveEntity maps an entity to the identity its attributes are stored
// under: an Edge yields its ID, a known node ID passes through, and anything
// else is interpreted as an edge description and resolved to the matching
// edge. A malformed description yields ErrInvalidEdgeDescriptor; a
// well-formed target that matches nothing yields ErrInvalidEntityDescriptor.
func (g *Graph) resolveEntity(entity any) (string, error) {
	switch v := entity.(type) {
	case Edge:
		if v.id == "" {
			return "", fmt.Errorf("%w: zero edge value", ErrInvalidEntityDescriptor)
		}
		return v.id, nil
	case string:
		if _, ok := g.nodes[v]; ok {
			return v, nil
		}
		return "", fmt.Errorf("%w: unknown node %q", ErrInvalidEntityDescriptor, v)
	default:
		ref, err := asEdgeRef(entity)
		if err != nil {
			return "", err
		}
		if e, ok := g.firstEdgeBetween(ref.Src, ref.Dest); ok {
			return e.id, nil
		}
		return "", fmt.Errorf("%w: no edge between %q and %q",
			ErrInvalidEntityDescriptor, ref.Src, ref.Dest)
	}
}

// asEdgeRef normalizes the edge-description shapes accepted across the API:
// EdgeRef itself, a 2-element string pair, or a 2/3-element []any whose
// third element is numeric (weight shorthand) or an attribute map.
func asEdgeRef(entity any) (EdgeRef, error) {
	switch v := entity.(type) {
	case EdgeRef:
		return v, nil
	case []string:
		if len(v) != 2 {
			return EdgeRef{}, fmt.Errorf("%w: want 2 elements, got %d", ErrInvalidEdgeDescriptor, len(v))
		}
		return EdgeRef{Src: v[0], Dest: v[1]}, nil
	case []any:
		if len(v) < 2 || len(v) > 3 {
			return EdgeRef{}, fmt.Errorf("%w: want 2 or 3 elements, got %d", ErrInvalidEdgeDescriptor, len(v))
		}
		src, okSrc := v[0].(string)
		dest, okDest := v[1].(string)
		if !okSrc || !okDest {
			return EdgeRef{}, fmt.Errorf("%w: endpoints must be strings", ErrInvalidEdgeDescriptor)
		}
		ref := EdgeRef{Src: src, Dest: dest}
		if len(v) == 3 {
			attrs, err := attrsFromThird(v[2])
			if err != nil {
				return EdgeRef{}, err
			}
			ref.Attrs = attrs
		}
		return ref, nil
	default:
		return EdgeRef{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidEdgeDescriptor, entity)
	}
}

// attrsFromThird interprets the third element of an edge description:
// numeric values are sugar for Attrs{"weight": n}, maps are taken as-is.
func attrsFromThird(v any) (Attrs, error) {
	if w, ok := toFloat(v); ok {
		return Attrs{WeightKey: w}, nil
	}
	switch m := v.(type) {
	case Attrs:
		return m.clone(), nil
	case map[string]any:
		return Attrs(m).clone(), nil
	default:
		return nil, fmt.Errorf("%w: third element must be numeric or a map, got %T",
			ErrInvalidEdgeDescriptor, v)
	}
}

// toFloat coerces the numeric types an attribute value may arrive as,
// including everything the YAML and JSON decoders produce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
