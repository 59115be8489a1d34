package config

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8000"

	// DefaultDatabaseURL is empty; must be provided via flag or environment.
	DefaultDatabaseURL = ""

	// DefaultClipboardPermission is reported for clipboard-write queries
	// when no policy is configured. Prompt lets the write proceed.
	DefaultClipboardPermission = "prompt"

	// DefaultTailwindVariant is the style-build preset served by default.
	DefaultTailwindVariant = "components"

	// DefaultSourceElement is the form field copied by the web page.
	DefaultSourceElement = "prompt"

	// DefaultEventsLimit and MaxEventsLimit bound copy history pages.
	DefaultEventsLimit = 50
	MaxEventsLimit     = 200
)
