// Package templates holds the reference PlantUML snippets embedded in
// generation prompts.
package templates

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Set maps a diagram type to an example diagram.
type Set map[string]string

// Defaults returns the built-in set.
func Defaults() (Set, error) {
	return parse(defaultsYAML)
}

// Load reads a YAML set from path. An empty path yields the defaults.
func Load(path string) (Set, error) {
	if path == "" {
		return Defaults()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	set, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse templates %s: %w", path, err)
	}
	return set, nil
}

func parse(data []byte) (Set, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, errors.New("template set is empty")
	}
	return set, nil
}

// JSON renders the set as the opaque blob the prompt carries. Arrows such as
// "<|--" are kept literal.
func (s Set) JSON() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// Types lists the diagram types in the set, sorted.
func (s Set) Types() []string {
	types := make([]string, 0, len(s))
	for t := range s {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
