package dom

// elementProperties lists, per tag, the names that are assigned as DOM
// properties rather than content attributes. Everything else falls through
// to SetAttribute.
var elementProperties = map[string]map[string]bool{
	"input":    {"value": true, "checked": true, "disabled": true, "indeterminate": true},
	"textarea": {"value": true, "disabled": true},
	"select":   {"value": true, "disabled": true, "multiple": true},
	"option":   {"value": true, "selected": true, "disabled": true},
	"button":   {"value": true, "disabled": true},
	"optgroup": {"disabled": true},
	"fieldset": {"disabled": true},
	"output":   {"value": true},
	"progress": {"value": true},
	"meter":    {"value": true},
	"audio":    {"muted": true, "volume": true, "currentTime": true, "playbackRate": true},
	"video":    {"muted": true, "volume": true, "currentTime": true, "playbackRate": true},
	"details":  {"open": true},
	"dialog":   {"open": true},
}

// propertyDefaults gives the value a DOM property snaps back to when it is
// cleared. Properties without an entry default to nil.
var propertyDefaults = map[string]any{
	"value":         "",
	"checked":       false,
	"selected":      false,
	"disabled":      false,
	"multiple":      false,
	"indeterminate": false,
	"open":          false,
	"muted":         false,
	"volume":        float64(1),
	"currentTime":   float64(0),
	"playbackRate":  float64(1),
}

func propertyDefault(name string) any {
	return propertyDefaults[name]
}
