package pagereader

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"slotpage/pkg/debug/ui"
	"slotpage/pkg/storage/page"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	zoneWidth    = 64
	previewBytes = 24
)

// Render formats r as styled text.
func Render(r *Report) string {
	var b strings.Builder

	title := "Page Inspector"
	if !r.Path.IsEmpty() {
		title += "  " + r.Path.String()
	}
	b.WriteString(ui.RenderTitle(title) + "\n")

	b.WriteString(ui.RenderHeaderWithCount("Header", -1) + "\n")
	h := r.Header
	fields := []struct {
		label string
		value any
	}{
		{"lsn", h.LSN},
		{"checksum", h.Checksum},
		{"flags", h.Flags},
		{"lower", h.Lower},
		{"higher", h.Higher},
		{"special", h.SpecialSpace},
	}
	for _, f := range fields {
		b.WriteString(ui.RenderField(f.label, f.value) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(ui.RenderHeaderWithCount("Space", -1) + "\n")
	if r.FileID.IsValid() {
		b.WriteString(ui.RenderField("file id", r.FileID) + "\n")
	}
	b.WriteString(ui.RenderField("file size", humanize.IBytes(uint64(r.FileSize))) + "\n")
	b.WriteString(ui.RenderField("free", fmt.Sprintf("%s (%d bytes)",
		humanize.IBytes(uint64(h.FreeSpace())), h.FreeSpace())) + "\n")
	b.WriteString(ui.RenderField("used", fmt.Sprintf("%.1f%%",
		100*float64(r.UsedBytes())/float64(page.PageSize))) + "\n")
	b.WriteString(ui.RenderField("blake3", r.Digest) + "\n")
	b.WriteString(ZoneMap(h) + "\n\n")

	if r.Problem != nil {
		b.WriteString(ui.RenderError(fmt.Errorf("page does not validate: %w", r.Problem)) + "\n")
		return b.String()
	}

	b.WriteString(ui.RenderHeaderWithCount("Directory", len(r.Entries)) + "\n")
	if len(r.Entries) == 0 {
		b.WriteString(ui.HelpStyle.Render("no records") + "\n")
		return b.String()
	}

	rows := make([][]string, len(r.Entries))
	for i, e := range r.Entries {
		rows[i] = []string{
			strconv.Itoa(int(e.Slot)),
			strconv.Itoa(e.Offset),
			fmt.Sprintf("[%d, %d)", e.Offset, e.Offset+e.Length),
			strconv.Itoa(e.Length),
			Preview(e.Data),
		}
	}
	b.WriteString(ui.RenderTable([]string{"slot", "offset", "span", "bytes", "preview"}, rows))
	return b.String()
}

// ZoneMap draws the page as a bar of zoneWidth cells: header, directory,
// free space and the record area, each in its own style.
func ZoneMap(h page.Header) string {
	cell := func(n int) int {
		if n <= 0 {
			return 0
		}
		c := n * zoneWidth / page.PageSize
		if c == 0 {
			c = 1
		}
		return c
	}

	lower, higher := int(h.Lower), int(h.Higher)
	if lower > page.PageSize {
		lower = page.PageSize
	}
	if higher > page.PageSize {
		higher = page.PageSize
	}
	if higher < lower {
		higher = lower
	}

	header := cell(page.HeaderSize)
	dir := cell(lower - page.HeaderSize)
	records := cell(page.PageSize - higher)
	free := zoneWidth - header - dir - records
	if free < 0 {
		free = 0
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		ui.ZoneHeaderStyle.Render(strings.Repeat("█", header)),
		ui.ZoneDirectoryStyle.Render(strings.Repeat("▓", dir)),
		ui.ZoneFreeStyle.Render(strings.Repeat("░", free)),
		ui.ZoneRecordsStyle.Render(strings.Repeat("█", records)),
	)

	legend := fmt.Sprintf("header 0-%d  directory %d-%d  free %d-%d  records %d-%d",
		page.HeaderSize, page.HeaderSize, lower, lower, higher, higher, page.PageSize)
	return bar + "\n" + ui.HelpStyle.Render(legend)
}

// Preview shows the first bytes of a record, printable ASCII as text and
// everything else as '.'.
func Preview(data []byte) string {
	n := len(data)
	if n > previewBytes {
		n = previewBytes
	}

	var b strings.Builder
	for _, c := range data[:n] {
		if c < unicode.MaxASCII && unicode.IsPrint(rune(c)) {
			b.WriteByte(c)
		} else {
			b.WriteByte('.')
		}
	}
	if len(data) > n {
		b.WriteString("...")
	}
	return b.String()
}
