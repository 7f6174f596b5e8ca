package board

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LayoutFile is the on-disk format for a set of named positions:
//
//	layouts:
//	  corner-trap:
//	    - [0, 2, 0, 0, 0, 0, 0, 0]
//	    ...
type LayoutFile struct {
	Layouts map[string]Layout `yaml:"layouts"`
}

// LoadLayouts reads a YAML layout file. Every layout is validated; the first
// bad one fails the whole load.
func LoadLayouts(r io.Reader) (map[string]Layout, error) {
	var lf LayoutFile
	if err := yaml.NewDecoder(r).Decode(&lf); err != nil {
		return nil, fmt.Errorf("decoding layouts: %w", err)
	}
	for name, l := range lf.Layouts {
		if _, err := FromLayout(l); err != nil {
			return nil, fmt.Errorf("layout %q: %w", name, err)
		}
	}
	return lf.Layouts, nil
}

// WriteLayouts is the inverse of LoadLayouts.
func WriteLayouts(w io.Writer, layouts map[string]Layout) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(LayoutFile{Layouts: layouts})
}
