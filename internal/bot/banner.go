package bot

import (
	"fmt"
	"strings"

	"github.com/mazznoer/colorgrad"
)

// GetBanner returns the startup banner, colored left to right
func GetBanner(version string) string {
	banner := `
              _
  __ _  _   _(_)_ __
 / _' || | | | | '_ \
| (_| || |_| | | |_) |
 \__, | \__,_|_| .__/
    |_|        |_|
 .  .  .  say  the  word  [v` + version + `]
`
	grad, err := colorgrad.NewGradient().
		HtmlColors("#f0a211ff", "#fdfdfdff").
		Build()
	if err != nil {
		return banner
	}

	lines := strings.Split(strings.TrimPrefix(banner, "\n"), "\n")
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	colors := grad.Colors(uint(width))

	var out strings.Builder
	for _, line := range lines {
		for i, ch := range line {
			r, g, b, _ := colors[i].RGBA255()
			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm%c", r, g, b, ch)
		}
		out.WriteString("\x1b[0m\n")
	}
	return out.String()
}
