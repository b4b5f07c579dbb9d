package vdom

import (
	"fmt"
	"strconv"
)

// FragmentTag is the sentinel tag for grouping children without a wrapper.
const FragmentTag = "fragment"

// Props holds attributes, event handlers, and special hooks.
type Props map[string]any

// VNode is the virtual node: position 0 is the tag name (or FragmentTag),
// position 1 is a Props mapping, positions 2+ are children. Children may be
// vnodes, strings, numbers, nil/false (explicit empty slots), or nested
// sequences treated as opaque single children. A VNode is plain, inspectable
// data and is never mutated once produced.
type VNode []any

// New builds a vnode from a tag, props, and children.
func New(tag string, props Props, children ...any) VNode {
	if props == nil {
		props = Props{}
	}
	n := make(VNode, 0, 2+len(children))
	n = append(n, any(tag), any(props))
	n = append(n, children...)
	return n
}

// Tag returns the tag name, or "" if the node is malformed.
func (n VNode) Tag() string {
	if len(n) > 0 {
		if s, ok := n[0].(string); ok {
			return s
		}
	}
	return ""
}

// Props returns the props mapping at position 1, or nil if absent.
func (n VNode) Props() Props {
	if len(n) > 1 {
		switch p := n[1].(type) {
		case Props:
			return p
		case map[string]any:
			return Props(p)
		}
	}
	return nil
}

// Children returns the child values at positions 2+.
func (n VNode) Children() []any {
	if len(n) > 2 {
		return []any(n[2:])
	}
	return nil
}

// IsFragment returns true if the node's tag is the fragment sentinel.
func (n VNode) IsFragment() bool {
	return n.Tag() == FragmentTag
}

// Kind classifies a value that may appear in a vnode tree.
type Kind uint8

const (
	KindEmpty   Kind = iota // nil, false, empty sequence
	KindText                // string or number
	KindNode                // sequence with a string tag
	KindInvalid             // anything else
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindText:
		return "Text"
	case KindNode:
		return "Node"
	case KindInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// KindOf classifies a tree value.
func KindOf(v any) Kind {
	switch t := v.(type) {
	case nil:
		return KindEmpty
	case bool:
		if !t {
			return KindEmpty
		}
		return KindInvalid
	case string:
		return KindText
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return KindText
	case VNode:
		return sequenceKind([]any(t))
	case []any:
		return sequenceKind(t)
	default:
		return KindInvalid
	}
}

func sequenceKind(s []any) Kind {
	if len(s) == 0 {
		return KindEmpty
	}
	if _, ok := s[0].(string); ok {
		return KindNode
	}
	return KindInvalid
}

// AsNode returns v as a VNode if it is a vnode-shaped sequence.
func AsNode(v any) (VNode, bool) {
	switch t := v.(type) {
	case VNode:
		if sequenceKind([]any(t)) == KindNode {
			return t, true
		}
	case []any:
		if sequenceKind(t) == KindNode {
			return VNode(t), true
		}
	}
	return nil, false
}

// TextOf returns the text rendering of a KindText value.
func TextOf(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", t), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}

// AttrString converts a prop value to its attribute string form.
func AttrString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
