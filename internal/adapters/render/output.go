// Package render draws the human-readable dependency tree.
package render

import (
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for tree output.
// NO_COLOR always downgrades to plain ASCII; otherwise the terminal's
// capabilities are detected automatically.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}
