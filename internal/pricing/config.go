package pricing

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/ihcc-events/internal/event"
)

// LoadRanges reads per-category price ranges from a YAML file, keyed by
// category name (case-insensitive). Categories absent from the file keep
// their defaults, so a file can override just one range.
func LoadRanges(path string) (map[event.Category]Range, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading price ranges: %w", err)
	}

	var raw map[string]Range
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing price ranges: %w", err)
	}

	ranges := DefaultRanges()
	for name, r := range raw {
		cat, ok := categoryByName(name)
		if !ok {
			return nil, fmt.Errorf("invalid price ranges %s: unknown category %q", path, name)
		}
		ranges[cat] = r
	}

	if err := Validate(ranges); err != nil {
		return nil, fmt.Errorf("invalid price ranges %s: %w", path, err)
	}

	return ranges, nil
}

func categoryByName(name string) (event.Category, bool) {
	for _, cat := range event.Categories() {
		if strings.EqualFold(name, string(cat)) {
			return cat, true
		}
	}
	return "", false
}
