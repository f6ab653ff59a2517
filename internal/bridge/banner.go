package bridge

import (
	"fmt"
	"strings"

	"github.com/mazznoer/colorgrad"
)

const bannerArt = `
            _  _             _      _
  _ __ ___ | || |__  _ __ (_) __| | __ _  ___
 | '_ ' _ \| || '_ \| '__|| |/ _' |/ _' |/ _ \
 | | | | | | || |_) | |   | | (_| | (_| |  __/
 |_| |_| |_|_||_.__/|_|   |_|\__,_|\__, |\___|
  .  .  .  connecting models since |___/  [v%s]
`

// GetBanner renders the startup banner with a horizontal color gradient.
func GetBanner(version string) string {
	grad, _ := colorgrad.NewGradient().
		HtmlColors("#f07011ff", "#fdfdfdff").
		Build()

	art := fmt.Sprintf(bannerArt, version)

	width := 0
	for _, line := range strings.Split(art, "\n") {
		if len(line) > width {
			width = len(line)
		}
	}

	var out strings.Builder
	for _, line := range strings.Split(art, "\n") {
		for col, ch := range line {
			r, g, b, _ := grad.At(float64(col) / float64(width)).RGBA255()
			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm%c", r, g, b, ch)
		}
		out.WriteString("\x1b[0m\n")
	}
	return out.String()
}
