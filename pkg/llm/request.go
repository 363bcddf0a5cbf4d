package llm

// Base selects the distribution a request operates on: either a named preset
// or an explicit vocabulary with its probabilities. Explicit probabilities are
// normalized before use.
type Base struct {
	Preset        string    `json:"preset,omitempty"`
	Vocabulary    []string  `json:"vocabulary,omitempty"`
	Probabilities []float64 `json:"probabilities,omitempty"`
}

// TransformRequest applies a single transform to a base distribution.
type TransformRequest struct {
	Base

	Transform string  `json:"transform"` // "temperature", "top_k", "top_p", "min_p" or "none"
	Value     float64 `json:"value"`     // The transform's parameter
}

// PipelineRequest applies every transform selected by Options.
type PipelineRequest struct {
	Base

	Options *Options `json:"options,omitempty"`
}

// SampleRequest draws samples from a base distribution after applying Options.
type SampleRequest struct {
	Base

	Options *Options `json:"options,omitempty"`
	Samples int      `json:"samples"` // Number of draws (default from configuration)
}

// EmpiricalRequest converts drawn labels into a frequency distribution.
type EmpiricalRequest struct {
	Samples    []string `json:"samples"`
	Vocabulary []string `json:"vocabulary"`
}
