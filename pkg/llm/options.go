package llm

import "github.com/papercomputeco/explorer/pkg/distribution"

// Options contains the sampling parameters applied to a base distribution.
// Unset parameters leave the distribution untouched.
type Options struct {
	Temperature *float64 `json:"temperature,omitempty" toml:"temperature"` // Sharpness (0.01-2.0 in the explorer)
	TopK        *int     `json:"top_k,omitempty" toml:"top_k"`             // Keep the k most probable tokens
	TopP        *float64 `json:"top_p,omitempty" toml:"top_p"`             // Nucleus sampling threshold
	MinP        *float64 `json:"min_p,omitempty" toml:"min_p"`             // Relative threshold against the top token
	Seed        *uint64  `json:"seed,omitempty" toml:"seed"`               // Random seed for reproducibility
}

// Chain returns the transforms selected by o in the order temperature,
// top-k, top-p, min-p. A nil receiver yields an empty chain.
func (o *Options) Chain() distribution.Chain {
	if o == nil {
		return nil
	}

	var chain distribution.Chain
	if o.Temperature != nil {
		chain = append(chain, distribution.Temperature(*o.Temperature))
	}
	if o.TopK != nil {
		chain = append(chain, distribution.TopKFilter(*o.TopK))
	}
	if o.TopP != nil {
		chain = append(chain, distribution.TopPFilter(*o.TopP))
	}
	if o.MinP != nil {
		chain = append(chain, distribution.MinPFilter(*o.MinP))
	}
	return chain
}
