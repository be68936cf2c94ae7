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
	// Reconcile Errors (E001-E099)
	// ============================================

	"E001": {
		Category: CategoryReconcile,
		Message:  "Event property value is not callable",
		Detail:   "Event properties accept a vdom.Handler, a func(vdom.Event), or a vdom.LinkedEvent. Any other value is ignored by the reconciler.",
		DocURL:   "https://lumen-ui.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryReconcile,
		Message:  "Style value is neither a string nor a map",
		Detail:   "The style property accepts a CSS text string or a vdom.Style map of property names to values. Other values are ignored.",
		DocURL:   "https://lumen-ui.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryReconcile,
		Message:  "Raw HTML payload has an invalid type",
		Detail:   "The unsafeHTML property accepts a vdom.RawHTML value or a plain string.",
		DocURL:   "https://lumen-ui.dev/docs/errors/E003",
	},

	// ============================================
	// Scenario Errors (E100-E199)
	// ============================================

	"E101": {
		Category: CategoryScenario,
		Message:  "Scenario file could not be read",
		Detail:   "The scenario file does not exist or is not readable.",
		DocURL:   "https://lumen-ui.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryScenario,
		Message:  "Scenario file has an unsupported extension",
		Detail:   "Scenario files must end in .json, .yaml, or .yml.",
		DocURL:   "https://lumen-ui.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryScenario,
		Message:  "Scenario file is malformed",
		Detail:   "The scenario file could not be parsed. Check the syntax against the documented scenario format.",
		DocURL:   "https://lumen-ui.dev/docs/errors/E103",
	},
	"E104": {
		Category: CategoryScenario,
		Message:  "Scenario has no element tag",
		Detail:   "Every scenario must name the host element tag its properties apply to.",
		DocURL:   "https://lumen-ui.dev/docs/errors/E104",
	},

	// ============================================
	// Config Errors (E140-E159)
	// ============================================

	"E141": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No lumen.json was found in the directory or any parent directory.",
		DocURL:   "https://lumen-ui.dev/docs/errors/E141",
	},
	"E142": {
		Category: CategoryConfig,
		Message:  "Configuration file is malformed",
		Detail:   "lumen.json could not be parsed. Check that it is valid JSON.",
		DocURL:   "https://lumen-ui.dev/docs/errors/E142",
	},
	"E143": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		DocURL:   "https://lumen-ui.dev/docs/errors/E143",
	},

	// ============================================
	// CLI Errors (E200-E299)
	// ============================================

	"E201": {
		Category: CategoryCLI,
		Message:  "Invalid listen address",
		Detail:   "The inspector address must be a host:port pair, e.g. localhost:8920.",
		DocURL:   "https://lumen-ui.dev/docs/errors/E201",
	},
}

// Register adds or replaces an error template.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}

// GetTemplate returns the template for a code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	template, ok := registry[code]
	return template, ok
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}
