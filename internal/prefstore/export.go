package prefstore

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Snapshot возвращает настройки в виде простого дерева.
// Ключи с точками не раскладываются по вложенным таблицам.
func (s *Store) Snapshot() map[string]any {
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v.Interface()
	}
	return out
}

// WriteYAML пишет Snapshot в YAML
func (s *Store) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s.Snapshot()); err != nil {
		return fmt.Errorf("кодирование yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("кодирование yaml: %w", err)
	}
	return nil
}

// WriteTOML пишет Snapshot в TOML
func (s *Store) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(s.Snapshot()); err != nil {
		return fmt.Errorf("кодирование toml: %w", err)
	}
	return nil
}
