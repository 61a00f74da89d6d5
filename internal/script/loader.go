package script

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	cerrors "github.com/zhubert/calccraft/internal/errors"
)

//go:embed examples/*.yaml
var examples embed.FS

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cerrors.ScriptLoadFailed(path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, cerrors.E(cerrors.Op("script.Load"), cerrors.KindInvalid, path, err)
	}
	return s, nil
}

// Parse decodes a script from YAML. It does not validate the steps.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return &s, nil
}

// Example returns the built-in script called name.
func Example(name string) (*Script, error) {
	file := "examples/" + name + ".yaml"
	data, err := examples.ReadFile(file)
	if err != nil {
		return nil, cerrors.ScriptLoadFailed(file, err)
	}
	return Parse(data)
}

// ExampleNames lists the built-in scripts in alphabetical order.
func ExampleNames() []string {
	entries, err := examples.ReadDir("examples")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}
