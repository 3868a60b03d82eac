package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"cmdwiki/internal/domain"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Builtin returns the provider for the embedded CKAD reference catalog
func Builtin() Provider {
	return ProviderFunc(func() (*domain.Catalog, error) {
		return Parse(bytes.NewReader(builtinYAML))
	})
}

// Parse decodes a YAML catalog and validates it
func Parse(r io.Reader) (*domain.Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c domain.Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &domain.Catalog{}, nil
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Encode writes a catalog (or any view of one) as YAML
func Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
