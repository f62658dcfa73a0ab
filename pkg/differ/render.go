package differ

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/agentstation/cragsync/pkg/constants"
	"github.com/agentstation/cragsync/pkg/logbook"
)

// RenderOptions controls report rendering.
type RenderOptions struct {
	// Color wraps missing entries in red and extraneous entries in green.
	Color bool
}

// palette holds the colorizers for one render pass.
type palette struct {
	missing    *color.Color
	extraneous *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		missing:    color.New(color.FgRed),
		extraneous: color.New(color.FgGreen),
	}
	if enabled {
		p.missing.EnableColor()
		p.extraneous.EnableColor()
	} else {
		p.missing.DisableColor()
		p.extraneous.DisableColor()
	}
	return p
}

// Lines renders one report line per changed date:
//
//	-2023-04-29: Felsklettern (Weissenstein)   day missing from the journal
//	+2023-04-30: Felsklettern (Arco)           day extraneous in the journal
//	2023-05-01: -A, +C                         crags differ
func (c *Changeset) Lines(opts RenderOptions) []string {
	p := newPalette(opts.Color)
	lines := make([]string, 0, len(c.Changes))
	for _, change := range c.Changes {
		switch change.Type {
		case ChangeTypeDayMissing:
			lines = append(lines, p.missing.Sprint("-"+logbook.FormatLine(change.Date, change.Missing)))
		case ChangeTypeDayExtraneous:
			lines = append(lines, p.extraneous.Sprint("+"+logbook.FormatLine(change.Date, change.Extraneous)))
		default:
			parts := make([]string, 0, len(change.Missing)+len(change.Extraneous))
			for _, crag := range change.Missing {
				parts = append(parts, p.missing.Sprint("-"+crag))
			}
			for _, crag := range change.Extraneous {
				parts = append(parts, p.extraneous.Sprint("+"+crag))
			}
			lines = append(lines, change.Date.String()+": "+strings.Join(parts, constants.CragSeparator))
		}
	}
	return lines
}

// Render writes the report to w, one newline-terminated line per changed
// date. Nothing is written for an empty changeset.
func (c *Changeset) Render(w io.Writer, opts RenderOptions) error {
	for _, line := range c.Lines(opts) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// String returns the uncolored report, or "" when there are no discrepancies.
func (c *Changeset) String() string {
	var b strings.Builder
	_ = c.Render(&b, RenderOptions{})
	return b.String()
}
