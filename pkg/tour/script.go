// Package tour interprets externally authored walkthrough scripts: ordered
// steps that click elements, wait for elements, and insert text.
package tour

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Step is one entry in a tour script. All keys are optional; unknown keys in
// the source document are ignored rather than rejected.
type Step struct {
	Title      string   `yaml:"title"`
	Preclick   []string `yaml:"preclick"`
	Element    string   `yaml:"element"`
	TextInsert string   `yaml:"textinsert"`
	Postclick  []string `yaml:"postclick"`
}

// Script is an ordered list of steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Parse decodes a tour document.
func Parse(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse tour script: %w", err)
	}
	return &script, nil
}

// Load reads and decodes a tour document from disk.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tour script: %w", err)
	}
	return Parse(data)
}

// Callback is invoked after each executed step, before its postclicks. Step
// indices are the step's original position in the script; skipped steps keep
// their slot.
type Callback interface {
	HandleStep(step Step, stepIndex int)
}

// NullCallback ignores every step.
type NullCallback struct{}

// HandleStep does nothing.
func (NullCallback) HandleStep(step Step, stepIndex int) {}
