// Package preset holds the named base distributions the explorer starts
// from: a prompt, the candidate next tokens and their probabilities.
package preset

import (
	"fmt"
	"sort"
	"sync"

	"github.com/papercomputeco/explorer/pkg/distribution"
)

// Preset is a prompt with a base next-token distribution.
type Preset struct {
	Name          string    `json:"name" toml:"name"`
	Prompt        string    `json:"prompt" toml:"prompt"`
	Description   string    `json:"description,omitempty" toml:"description"`
	Vocabulary    []string  `json:"vocabulary" toml:"vocabulary"`
	Probabilities []float64 `json:"probabilities" toml:"probabilities"`
}

// Normalized validates p and returns a copy whose probabilities sum to one.
func (p Preset) Normalized() (Preset, error) {
	if p.Name == "" {
		return p, fmt.Errorf("preset has no name")
	}
	if len(p.Vocabulary) != len(p.Probabilities) {
		return p, fmt.Errorf("preset %s: %d labels but %d probabilities: %w",
			p.Name, len(p.Vocabulary), len(p.Probabilities), distribution.ErrInvalidDistribution)
	}

	seen := make(map[string]struct{}, len(p.Vocabulary))
	for _, label := range p.Vocabulary {
		if _, dup := seen[label]; dup {
			return p, fmt.Errorf("preset %s: duplicate label %q", p.Name, label)
		}
		seen[label] = struct{}{}
	}

	probs, err := distribution.Normalize(p.Probabilities)
	if err != nil {
		return p, fmt.Errorf("preset %s: %w", p.Name, err)
	}

	out := p
	out.Vocabulary = append([]string(nil), p.Vocabulary...)
	out.Probabilities = probs
	return out, nil
}

// Registry is a concurrency-safe set of presets keyed by name.
type Registry struct {
	mu      sync.RWMutex
	presets map[string]Preset
}

// NewRegistry returns a registry holding presets, each normalized. It fails on
// the first invalid or duplicate preset.
func NewRegistry(presets ...Preset) (*Registry, error) {
	r := &Registry{}
	if err := r.Replace(presets); err != nil {
		return nil, err
	}
	return r, nil
}

// Get returns the preset called name.
func (r *Registry) Get(name string) (Preset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.presets[name]
	return p, ok
}

// List returns all presets ordered by name.
func (r *Registry) List() []Preset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Preset, 0, len(r.presets))
	for _, p := range r.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Replace swaps the registry contents for presets. On error the registry is
// left unchanged.
func (r *Registry) Replace(presets []Preset) error {
	next := make(map[string]Preset, len(presets))
	for _, p := range presets {
		norm, err := p.Normalized()
		if err != nil {
			return err
		}
		if _, dup := next[norm.Name]; dup {
			return fmt.Errorf("duplicate preset %s", norm.Name)
		}
		next[norm.Name] = norm
	}

	r.mu.Lock()
	r.presets = next
	r.mu.Unlock()
	return nil
}
