// Package assets holds static text embedded into the binary.
package assets

import (
	_ "embed"
	"strings"
)

//go:embed banner.txt
var banner string

// Banner returns the title art without trailing blank lines.
func Banner() string {
	return strings.TrimRight(banner, "\n")
}
