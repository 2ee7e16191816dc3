package formatter

import (
	"fmt"
	"strings"
)

// TaskProgress draws done/total as a bar, e.g. [██████░░░░] 3/5 done.
// Less than a third done is red, less than two thirds yellow.
func TaskProgress(done, total, width int) string {
	width = max(width, 2)
	if total <= 0 {
		return fmt.Sprintf("[%s] %s", StyleDim.Render(strings.Repeat("░", width)), Dim("no tasks"))
	}
	done = min(max(done, 0), total)

	share := float64(done) / float64(total)
	filled := int(share * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	style := StyleGreen
	switch {
	case share < 1.0/3:
		style = StyleRed
	case share < 2.0/3:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %d/%d done", style.Render(bar), done, total)
}
