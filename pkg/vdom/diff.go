package vdom

import (
	"reflect"
	"unsafe"
)

// Diff compares two tree values and returns the patch that transforms prev
// into next, or nil when nothing changed. A nil result is the idempotence
// anchor: applying it must not touch the DOM at all.
func Diff(prev, next any) *Patch {
	pk, nk := KindOf(prev), KindOf(next)

	if pk == KindEmpty && nk == KindEmpty {
		return nil
	}
	if pk == KindEmpty {
		return &Patch{Op: OpCreate, Node: next}
	}
	if nk == KindEmpty {
		return &Patch{Op: OpRemove}
	}

	if changed(prev, next, pk, nk) {
		return &Patch{Op: OpReplace, Node: next}
	}

	// Same tag, both vnodes: compute props and children deltas.
	pn, _ := AsNode(prev)
	nn, _ := AsNode(next)

	propsChanged := !propsEqualShallow(pn.Props(), nn.Props())
	children := diffChildren(pn, nn)

	if !propsChanged && len(children) == 0 {
		return nil
	}

	p := &Patch{Op: OpUpdate, Children: children}
	if propsChanged {
		p.PrevProps = pn.Props()
		p.NextProps = nn.Props()
	}
	return p
}

// changed is the replacement predicate: differing kinds, differing primitive
// values, or differing tag names force a full remount of the subtree. There
// is no partial merge across incompatible shapes.
func changed(prev, next any, pk, nk Kind) bool {
	if pk != nk {
		return true
	}
	switch pk {
	case KindText:
		if reflect.TypeOf(prev) != reflect.TypeOf(next) {
			return true
		}
		return prev != next
	case KindNode:
		pn, _ := AsNode(prev)
		nn, _ := AsNode(next)
		return pn.Tag() != nn.Tag()
	default:
		// Two invalid values have no comparable identity; remount.
		return true
	}
}

// diffChildren aligns children by position starting at vnode position 2 and
// produces a sparse (index, patch) list. The library deliberately has no key
// system: correctness is bounded to "same position", trading some DOM churn
// on reorders for a much simpler algorithm.
func diffChildren(prev, next VNode) []ChildPatch {
	pc := prev.Children()
	nc := next.Children()

	maxLen := len(pc)
	if len(nc) > maxLen {
		maxLen = len(nc)
	}

	var out []ChildPatch
	for i := 0; i < maxLen; i++ {
		switch {
		case i >= len(pc):
			out = append(out, ChildPatch{Index: i, Patch: &Patch{Op: OpCreate, Node: nc[i]}})

		case i >= len(nc):
			out = append(out, ChildPatch{Index: i, Patch: &Patch{Op: OpRemove}})

		default:
			pv, nv := pc[i], nc[i]
			pEmpty := KindOf(pv) == KindEmpty
			nEmpty := KindOf(nv) == KindEmpty
			switch {
			case pEmpty && nEmpty:
				// Both empty slots; placeholder stays.
			case pEmpty != nEmpty:
				// Replace keeps index alignment stable rather than diffing
				// into or out of an empty slot.
				out = append(out, ChildPatch{Index: i, Patch: &Patch{Op: OpReplace, Node: nv}})
			default:
				if p := Diff(pv, nv); p != nil {
					out = append(out, ChildPatch{Index: i, Patch: p})
				}
			}
		}
	}
	return out
}

// propsEqualShallow compares two props mappings one key at a time. The style
// key is special-cased one level deep: style mappings are compared shallowly
// as their own maps.
func propsEqualShallow(a, b Props) bool {
	if len(a) != len(b) {
		return false
	}
	for key, av := range a {
		bv, ok := b[key]
		if !ok {
			return false
		}
		if key == "style" {
			if !styleEqual(av, bv) {
				return false
			}
			continue
		}
		if !propValueEqual(av, bv) {
			return false
		}
	}
	return true
}

func styleEqual(a, b any) bool {
	am, aok := styleMap(a)
	bm, bok := styleMap(b)
	if !aok || !bok {
		return propValueEqual(a, b)
	}
	if len(am) != len(bm) {
		return false
	}
	for k, av := range am {
		bv, ok := bm[k]
		if !ok || !propValueEqual(av, bv) {
			return false
		}
	}
	return true
}

func styleMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Props:
		return map[string]any(m), true
	case map[string]any:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	}
	return nil, false
}

// propValueEqual compares two prop values.
func propValueEqual(a, b any) bool {
	// Fast path for common types.
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return av == bv
		}
		return false
	case int:
		if bv, ok := b.(int); ok {
			return av == bv
		}
		return false
	case int64:
		if bv, ok := b.(int64); ok {
			return av == bv
		}
		return false
	case float64:
		if bv, ok := b.(float64); ok {
			return av == bv
		}
		return false
	case bool:
		if bv, ok := b.(bool); ok {
			return av == bv
		}
		return false
	case nil:
		return b == nil
	}

	// Functions (event handlers, tick handlers) compare by reference
	// identity. Two closures of the same function share a code pointer but
	// capture different state, so the code pointer is not enough.
	ra := reflect.ValueOf(a)
	rb := reflect.ValueOf(b)
	if ra.Kind() == reflect.Func || rb.Kind() == reflect.Func {
		if ra.Kind() != rb.Kind() {
			return false
		}
		return funcIdentity(a) == funcIdentity(b)
	}

	// Fallback to reflect for complex types.
	return reflect.DeepEqual(a, b)
}

// funcIdentity returns the data word of a func-typed interface value, which
// identifies the func value itself rather than its code.
func funcIdentity(v any) uintptr {
	type iface struct{ typ, data unsafe.Pointer }
	return uintptr((*iface)(unsafe.Pointer(&v)).data)
}
