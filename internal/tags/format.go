package tags

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/krail/prototags/internal/scan"
)

// Format names accepted by the CLI and config.
const (
	FormatTags   = "tags"
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

func Write(w io.Writer, format string, ts []Tag) error {
	switch format {
	case FormatTags:
		return WriteCtags(w, ts)
	case FormatPretty:
		return WritePretty(w, ts)
	case FormatJSON:
		return WriteJSON(w, ts)
	}
	return fmt.Errorf("unknown output format `%s`", format)
}

// WriteCtags writes classic sorted tag-file lines:
// name<TAB>file<TAB>line;"<TAB>kind-letter
func WriteCtags(w io.Writer, ts []Tag) error {
	sorted := make([]Tag, len(ts))
	copy(sorted, ts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		if sorted[i].File != sorted[j].File {
			return sorted[i].File < sorted[j].File
		}
		return sorted[i].Line < sorted[j].Line
	})

	for _, t := range sorted {
		_, err := fmt.Fprintf(w, "%s\t%s\t%d;\"\t%c\n", t.Name, t.File, t.Line, t.Kind.Letter())
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes one JSON object per line, in document order.
func WriteJSON(w io.Writer, ts []Tag) error {
	enc := json.NewEncoder(w)
	for _, t := range ts {
		if err := enc.Encode(t); err != nil {
			return err
		}
	}
	return nil
}

var kindColors = map[scan.Kind]color.Attribute{
	scan.KindPackage:      color.FgMagenta,
	scan.KindMessage:      color.FgBlue,
	scan.KindField:        color.FgCyan,
	scan.KindEnum:         color.FgYellow,
	scan.KindEnumConstant: color.FgYellow,
	scan.KindService:      color.FgGreen,
	scan.KindRpc:          color.FgGreen,
}

// WritePretty writes a colored listing grouped by file, in document order.
func WritePretty(w io.Writer, ts []Tag) error {
	white := color.New(color.FgWhite, color.Bold).SprintFunc()

	lastFile := ""
	for _, t := range ts {
		if t.File != lastFile {
			if _, err := fmt.Fprintf(w, "%s\n", white(t.File)); err != nil {
				return err
			}
			lastFile = t.File
		}
		label := color.New(kindColors[t.Kind], color.Bold).SprintFunc()
		_, err := fmt.Fprintf(w, "    %s %s (line %d)\n", label("["+t.Kind.Name()+"]"), t.Name, t.Line)
		if err != nil {
			return err
		}
	}
	return nil
}
