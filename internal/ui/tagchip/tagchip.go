// Package tagchip renders committed tags as chips and lays them out in
// wrapping rows.
package tagchip

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/taginput/internal/ui/styles"
)

// RemoveGlyph is the remove affordance drawn after removable tags.
const RemoveGlyph = "×"

// Chip describes one tag to draw.
type Chip struct {
	Text      string
	Removable bool   // draw the remove affordance
	Selected  bool   // keyboard selection highlight
	ZoneID    string // click zone for the remove affordance; empty disables mouse
	MaxWidth  int    // truncate text beyond this many cells (0 = no limit)
}

// Render draws a single chip.
func Render(c Chip) string {
	text := c.Text
	if c.MaxWidth > 0 && lipgloss.Width(text) > c.MaxWidth {
		text = truncate.StringWithTail(text, uint(c.MaxWidth), "…") //nolint:gosec // MaxWidth checked positive
	}

	style := styles.TagStyle
	if c.Selected {
		style = styles.TagSelectedStyle
	}

	if !c.Removable {
		return style.Render(text)
	}

	remove := styles.TagRemoveStyle.Inherit(style).Render(RemoveGlyph)
	if c.ZoneID != "" {
		remove = zone.Mark(c.ZoneID, remove)
	}
	return style.Render(text+" ") + remove
}

// Wrap joins rendered chips with a single space, starting a new line whenever
// the next chip would overflow width. The trailing line is left open for the
// text field, which is placed after the last chip. width <= 0 disables wrapping.
func Wrap(chips []string, width int) []string {
	if len(chips) == 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, chip := range chips {
		w := lipgloss.Width(chip)
		if lineWidth > 0 && width > 0 && lineWidth+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteString(" ")
			lineWidth++
		}
		line.WriteString(chip)
		lineWidth += w
	}
	return append(lines, line.String())
}
