package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed workloads.yaml
var workloadsYAML []byte

var (
	presetsOnce sync.Once
	presets     map[string]*Workloads
	presetsErr  error
)

// Parse decodes a document of named presets. Each preset starts from
// DefaultWorkloads, so fields it omits keep their defaults.
func Parse(data []byte) (map[string]*Workloads, error) {
	var raw map[string]yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("config: decode presets: %w", err)
	}

	out := make(map[string]*Workloads, len(raw))
	for name, node := range raw {
		w := DefaultWorkloads()
		if err := node.Decode(w); err != nil {
			return nil, fmt.Errorf("config: preset %q: %w", name, err)
		}
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		out[name] = w
	}
	return out, nil
}

func loadPresets() (map[string]*Workloads, error) {
	presetsOnce.Do(func() {
		presets, presetsErr = Parse(workloadsYAML)
	})
	return presets, presetsErr
}

// GetPreset returns a copy of the named preset.
func GetPreset(name string) (*Workloads, error) {
	all, err := loadPresets()
	if err != nil {
		return nil, err
	}
	w, ok := all[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, presetNames(all))
	}
	cp := *w
	return &cp, nil
}

// Reference returns the workloads every command runs.
func Reference() (*Workloads, error) {
	return GetPreset(referencePresetKey)
}

// ListPresets returns the sorted preset names, or the error that kept the
// embedded presets from loading.
func ListPresets() ([]string, error) {
	all, err := loadPresets()
	if err != nil {
		return nil, err
	}
	return presetNames(all), nil
}

func presetNames(all map[string]*Workloads) []string {
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
