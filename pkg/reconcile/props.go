package reconcile

import (
	"strings"

	"github.com/arbor-ui/arbor/pkg/dom"
	"github.com/arbor-ui/arbor/pkg/vdom"
)

// propRule is one entry of the ordered props dispatch table. Rules are
// evaluated first-match-wins and are mutually exclusive.
type propRule struct {
	match  func(el *dom.Node, key string, val any) bool
	assign func(c *Context, el *dom.Node, key string, val any)
	clear  func(c *Context, el *dom.Node, key string, prev any)
}

// propRules is populated in init; several rule closures call back into
// Context methods that consult the table, so a composite literal here
// would form an initialization cycle.
var propRules []propRule

func init() {
	propRules = []propRule{
		{ // ontick registers with the tick engine, it is not a DOM event
			match: func(_ *dom.Node, key string, _ any) bool { return key == "ontick" },
			assign: func(c *Context, el *dom.Node, _ string, val any) {
				h, ready, ok := tickValue(val)
				if !ok {
					c.log.Error("ontick value is not a tick handler", "tag", el.Tag())
					return
				}
				c.StartTick(el, h, ready)
			},
			clear: func(c *Context, el *dom.Node, _ string, _ any) {
				c.StopTick(el)
			},
		},
		{ // on*-keyed function values become live handlers via the event bridge
			match: func(_ *dom.Node, key string, val any) bool {
				return strings.HasPrefix(key, "on") && isHandlerValue(val)
			},
			assign: func(c *Context, el *dom.Node, key string, val any) {
				name := strings.TrimPrefix(key, "on")
				el.SetHandler(name, c.bridgeHandler(el, name, val))
			},
			clear: func(_ *Context, el *dom.Node, key string, _ any) {
				el.SetHandler(strings.TrimPrefix(key, "on"), nil)
			},
		},
		{ // style objects merge onto the live inline style
			match: func(_ *dom.Node, key string, val any) bool {
				return key == "style" && styleValue(val) != nil
			},
			assign: func(_ *Context, el *dom.Node, _ string, val any) {
				for name, v := range styleValue(val) {
					el.SetStyle(name, vdom.AttrString(v))
				}
			},
			clear: func(_ *Context, el *dom.Node, _ string, _ any) {
				el.ClearStyle()
			},
		},
		{ // innerHTML assigns raw markup; declared children are ignored
			match: func(_ *dom.Node, key string, _ any) bool { return key == "innerHTML" },
			assign: func(c *Context, el *dom.Node, _ string, val any) {
				if err := el.SetInnerHTML(vdom.AttrString(val)); err != nil && c.debug {
					c.log.Warn("innerHTML assignment failed", "tag", el.Tag(), "error", err)
				}
			},
			clear: func(_ *Context, el *dom.Node, _ string, _ any) {
				el.SetInnerHTML("")
			},
		},
		{ // property exceptions assign as DOM properties, not attributes
			match: func(el *dom.Node, key string, _ any) bool { return el.HasProperty(key) },
			assign: func(_ *Context, el *dom.Node, key string, val any) {
				el.SetProperty(key, val)
			},
			clear: func(_ *Context, el *dom.Node, key string, _ any) {
				el.SetProperty(key, nil) // resets to the tag's default
			},
		},
		{ // everything else is a plain attribute
			match: func(_ *dom.Node, _ string, _ any) bool { return true },
			assign: func(c *Context, el *dom.Node, key string, val any) {
				if err := el.SetAttribute(key, vdom.AttrString(val)); err != nil && c.debug {
					c.log.Warn("attribute assignment failed", "tag", el.Tag(), "name", key, "error", err)
				}
			},
			clear: func(_ *Context, el *dom.Node, key string, _ any) {
				el.RemoveAttribute(key)
			},
		},
	}
}

// assignProps applies every key of props to el per the dispatch table.
func (c *Context) assignProps(el *dom.Node, props vdom.Props) {
	for key, val := range props {
		for _, r := range propRules {
			if r.match(el, key, val) {
				r.assign(c, el, key, val)
				break
			}
		}
	}
}

// clearMissing erases the effect of every key present in prev but absent
// from next.
func (c *Context) clearMissing(el *dom.Node, prev, next vdom.Props) {
	for key, val := range prev {
		if _, ok := next[key]; ok {
			continue
		}
		for _, r := range propRules {
			if r.match(el, key, val) {
				r.clear(c, el, key, val)
				break
			}
		}
	}
}

// styleValue normalizes the accepted style mapping shapes.
func styleValue(v any) map[string]any {
	switch m := v.(type) {
	case vdom.Props:
		return map[string]any(m)
	case map[string]any:
		return m
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out
	default:
		return nil
	}
}
