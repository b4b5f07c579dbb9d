package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Input Errors (E100-E199)
	// ============================================

	"E101": {
		Category: CategoryInput,
		Message:  "Malformed vnode",
		Detail:   "A vnode must be a sequence whose first position is a string tag name. The offending value was rendered as a comment placeholder.",
		DocURL:   "https://arbor-ui.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryInput,
		Message:  "Non-string tag name",
		Detail:   "Position 0 of a vnode must be a tag name string or \"fragment\".",
		DocURL:   "https://arbor-ui.dev/docs/errors/E102",
	},

	// ============================================
	// DOM Errors (E200-E299)
	// ============================================

	"E201": {
		Category: CategoryDOM,
		Message:  "Attribute assignment failed",
		Detail:   "The attribute could not be set on the element. The attribute was skipped; rendering continued.",
		DocURL:   "https://arbor-ui.dev/docs/errors/E201",
	},

	// ============================================
	// Component Errors (E300-E399)
	// ============================================

	"E301": {
		Category: CategoryComponent,
		Message:  "Component function panicked",
		Detail:   "A component render function panicked. The component was replaced with an error placeholder so the rest of the tree could continue rendering.",
		DocURL:   "https://arbor-ui.dev/docs/errors/E301",
	},

	// ============================================
	// Event Errors (E400-E449)
	// ============================================

	"E401": {
		Category: CategoryEvent,
		Message:  "Event handler returned a non-renderable value",
		Detail:   "A value that is neither a vnode nor a passive result (nil, false, \"\") was returned from an event handler. Return a vnode to re-render the nearest root, or nothing at all.",
		DocURL:   "https://arbor-ui.dev/docs/errors/E401",
	},

	// ============================================
	// Tick Errors (E450-E499)
	// ============================================

	"E451": {
		Category: CategoryTick,
		Message:  "Tick handler returned a thenable",
		Detail:   "ontick handlers must be synchronous; per-frame pacing assumes immediate completion. The tick loop for this element was stopped.",
		DocURL:   "https://arbor-ui.dev/docs/errors/E451",
	},
	"E452": {
		Category: CategoryTick,
		Message:  "Tick handler panicked",
		Detail:   "The tick loop for this element was stopped and the panic re-raised to the frame scheduler's caller.",
		DocURL:   "https://arbor-ui.dev/docs/errors/E452",
	},

	// ============================================
	// Render Errors (E500-E599)
	// ============================================

	"E501": {
		Category: CategoryRender,
		Message:  "No resolvable render container",
		Detail:   "Render was called without a container and the vnode is not an \"html\" root.",
		DocURL:   "https://arbor-ui.dev/docs/errors/E501",
	},

	// ============================================
	// Config Errors (E600-E699)
	// ============================================

	"E601": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "arbor.json could not be parsed.",
		DocURL:   "https://arbor-ui.dev/docs/errors/E601",
	},
	"E602": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No arbor.json was found in the current directory or any parent directory.",
		DocURL:   "https://arbor-ui.dev/docs/errors/E602",
	},
}

// Lookup returns the template for a code, if registered.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
