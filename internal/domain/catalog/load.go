package catalog

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load reads a catalog document from a YAML file and validates it.
// Used when a deployment overrides the built-in catalog; an empty path
// would be a caller bug, deployments that want the default call Default.
func Load(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCatalog, err)
	}

	var doc Document
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCatalog, err)
	}

	return New(doc)
}

// Default returns the built-in organization catalog. The built-in data is
// authored to the same invariants Load enforces, so a failure here is a
// programming error.
func Default() *Catalog {
	c, err := New(defaultDocument())
	if err != nil {
		panic("built-in catalog invalid: " + err.Error())
	}
	return c
}
