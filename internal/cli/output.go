package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/ihcc-events/internal/event"
	"github.com/pfrederiksen/ihcc-events/internal/importer"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains one batch's data to be output
type OutputResult struct {
	GeneratedAt   time.Time      `json:"generated_at"`
	Source        string         `json:"source"`
	Events        []*event.Event `json:"events"`
	Stats         importer.Stats `json:"stats"`
	RejectedCount int            `json:"rejected_count"`
	UsedFallback  bool           `json:"used_fallback,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *OutputResult) error {
	if result.UsedFallback {
		fmt.Fprintln(w, "⚠ Source unreachable; showing placeholder events")
		fmt.Fprintln(w)
	}

	if len(result.Events) == 0 {
		fmt.Fprintf(w, "No events imported from %s (%d rejected)\n", result.Source, result.RejectedCount)
		return nil
	}

	fmt.Fprintf(w, "Imported %d events from %s (%d rejected)\n\n", len(result.Events), result.Source, result.RejectedCount)

	for _, evt := range result.Events {
		fmt.Fprintf(w, "  %s %s  [%-7s]  %-40s $%d\n",
			evt.Date, evt.Time[:5], evt.Category, truncate(evt.Title, 40), evt.Price)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "By category:")
	for _, cat := range event.Categories() {
		if count, ok := result.Stats[cat]; ok {
			fmt.Fprintf(w, "  %-8s %d\n", cat, count)
		}
	}

	return nil
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
