package ratetables

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	cache         sync.Map // path -> *Tables
)

// Default returns the embedded table set. It panics if the embedded document is
// invalid, which can only happen through a broken build.
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := Parse(defaultsYAML)
		if err != nil {
			panic(fmt.Sprintf("ratetables: embedded defaults: %v", err))
		}
		defaultTables = t
	})
	return defaultTables
}

// Get returns the table set stored at path, loading it on first use. An empty
// path selects the embedded defaults.
func Get(path string) (*Tables, error) {
	if path == "" {
		return Default(), nil
	}
	if t, ok := cache.Load(path); ok {
		return t.(*Tables), nil
	}

	t, err := Load(path)
	if err != nil {
		return nil, err
	}
	actual, _ := cache.LoadOrStore(path, t)
	return actual.(*Tables), nil
}

func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rate tables %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rate tables %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a YAML table document.
func Parse(data []byte) (*Tables, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	for k, c := range doc.Contracts {
		c.Key = k
		doc.Contracts[k] = c
	}
	for k, a := range doc.Agreements {
		a.Key = k
		doc.Agreements[k] = a
	}
	for k, r := range doc.Regions {
		r.Key = k
		doc.Regions[k] = r
	}
	for k, m := range doc.Municipalities {
		m.Key = k
		doc.Municipalities[k] = m
	}

	if err := validate(&doc); err != nil {
		return nil, err
	}
	return &Tables{doc: doc}, nil
}
