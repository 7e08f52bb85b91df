package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadReadingExceptions parses a JSON object of surface -> canonical
// reading pairs (SPEC_FULL §6 "a small reading-exception table (JSON)
// consulted by the pronunciation pass"), consumed via
// pkg/njdset.ApplyReadingExceptions. Grounded on this package's original
// LoadJMdictSimplified, which decodes a JSON source file the same way;
// the reading-exception format is a flat object rather than JMdict's
// nested entry array, since it carries a single string per surface.
func LoadReadingExceptions(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var exceptions map[string]string
	if err := json.NewDecoder(f).Decode(&exceptions); err != nil {
		return nil, fmt.Errorf("dictionary: parse reading exceptions: %w", err)
	}
	return exceptions, nil
}
