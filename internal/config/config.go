// Package config holds the tunables the semantic core needs but spec.md
// leaves as "implementation-defined" (the loop-generate iteration bound,
// §9 Open Question 3) or as an embedder preference (diagnostic caps).
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultLoopGenerateBound is the conservative default iteration cap for a
// single loop-generate construct (spec.md §9, Open Question 3).
const DefaultLoopGenerateBound = 1 << 20

// Elaboration holds the options threaded through a single compilation's
// RootSymbol. The zero value is invalid; use Default() or Load().
type Elaboration struct {
	// LoopGenerateBound caps the iterations a single LoopGenerate construct
	// may perform before GenerateLoopTooManyIterations is raised.
	LoopGenerateBound int `yaml:"loopGenerateBound"`

	// MaxErrors stops further diagnostic collection once reached; 0 means
	// unbounded. Mirrors the teacher's diagnostics.DiagnosticManager caps.
	// CyclicDependency reports raised by a lazy cell go to the sink directly
	// and are neither counted nor capped.
	MaxErrors int `yaml:"maxErrors"`

	// FatalDuplicateDefinitions treats DuplicateDefinition as aborting
	// further member-list construction for the offending scope instead of
	// keeping both symbols in member_list (spec.md §4.3 still applies
	// either way; this only controls whether elaboration proceeds past it).
	FatalDuplicateDefinitions bool `yaml:"fatalDuplicateDefinitions"`
}

// Default returns the options a RootSymbol uses when none are supplied.
func Default() Elaboration {
	return Elaboration{
		LoopGenerateBound: DefaultLoopGenerateBound,
		MaxErrors:         0,
		FatalDuplicateDefinitions: false,
	}
}

// Load reads elaboration options from a YAML file, falling back to Default
// for any field the file omits.
func Load(path string) (Elaboration, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.LoopGenerateBound <= 0 {
		cfg.LoopGenerateBound = DefaultLoopGenerateBound
	}
	return cfg, nil
}
