package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
// These constants ensure consistency across UI handlers and template mapping.
const (
	PageLogin     = "login"
	PageBlueprint = "blueprint"
	PageSamples   = "samples"
	PageGenerate  = "generate"
)

// Cookie names used by the auth flow.
const (
	// SessionCookieName carries the opaque server-side session identifier.
	SessionCookieName = "session_id"
	// FlashCookieName carries a one-shot notification between redirects.
	FlashCookieName = "flash"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup for templates; avoids per-call allocations
var contentTemplates = map[string]string{
	PageLogin:     "login-content",
	PageBlueprint: "blueprint-content",
	PageSamples:   "samples-content",
	PageGenerate:  "generate-content",
}

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to blueprint-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "blueprint-content"
}
