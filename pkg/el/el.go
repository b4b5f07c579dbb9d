package el

import "github.com/arbor-ui/arbor/pkg/vdom"

// E builds a vnode for an arbitrary tag. Props arguments merge into the
// node's props; slices of vnodes splice into the child list; everything
// else is appended as a single child.
func E(tag string, args ...any) vdom.VNode {
	props := vdom.Props{}
	children := make([]any, 0, len(args))
	for _, a := range args {
		switch v := a.(type) {
		case vdom.Props:
			for k, val := range v {
				props[k] = val
			}
		case map[string]any:
			for k, val := range v {
				props[k] = val
			}
		case []vdom.VNode:
			for _, n := range v {
				children = append(children, n)
			}
		default:
			children = append(children, a)
		}
	}
	return vdom.New(tag, props, children...)
}

// Fragment groups children without a wrapper tag.
func Fragment(args ...any) vdom.VNode {
	return E(vdom.FragmentTag, args...)
}

// If returns node when the condition holds and an empty slot otherwise.
func If(condition bool, node any) any {
	if condition {
		return node
	}
	return nil
}

// IfElse returns ifTrue or ifFalse depending on the condition.
func IfElse(condition bool, ifTrue, ifFalse any) any {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When lazily builds node only when the condition holds, for branches that
// are expensive or invalid to construct otherwise.
func When(condition bool, fn func() vdom.VNode) any {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the negation of If.
func Unless(condition bool, node any) any {
	return If(!condition, node)
}

// Range maps items to a spliceable vnode list.
func Range[T any](items []T, fn func(item T, index int) vdom.VNode) []vdom.VNode {
	out := make([]vdom.VNode, len(items))
	for i, it := range items {
		out[i] = fn(it, i)
	}
	return out
}

// Repeat builds n vnodes from an index function.
func Repeat(n int, fn func(i int) vdom.VNode) []vdom.VNode {
	out := make([]vdom.VNode, n)
	for i := range out {
		out[i] = fn(i)
	}
	return out
}
