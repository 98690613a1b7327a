package hexcomb

import _ "embed"

// Version is the current hexcomb release, read from the VERSION file.
// It may carry a trailing newline; trim before display.
//
//go:embed VERSION
var Version string
