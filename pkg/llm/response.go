package llm

// TransformResponse carries a base distribution next to its transformed form,
// ready to be rendered as a bar comparison.
type TransformResponse struct {
	Prompt      string    `json:"prompt,omitempty"`
	Vocabulary  []string  `json:"vocabulary"`
	Original    []float64 `json:"original"`
	Transformed []float64 `json:"transformed"`
	Transform   string    `json:"transform"`  // Applied transform, e.g. "top_p=0.9"
	Support     int       `json:"support"`    // Entries with non-zero probability after transforming
	Experiment  string    `json:"experiment"` // Hash of the recorded experiment node
}

// SampleResponse reports drawn samples and how well their frequencies match
// the distribution they were drawn from.
type SampleResponse struct {
	TransformResponse

	Samples    []string  `json:"samples"`     // Drawn labels in draw order
	Empirical  []float64 `json:"empirical"`   // Relative frequency per vocabulary entry
	ChiSquared float64   `json:"chi_squared"` // Pearson statistic against the transformed distribution
	PValue     float64   `json:"p_value"`
	Seed       uint64    `json:"seed"` // Seed that reproduces the draws
}

// EmpiricalResponse is the frequency distribution of a sample sequence.
type EmpiricalResponse struct {
	Vocabulary []string  `json:"vocabulary"`
	Empirical  []float64 `json:"empirical"`
}
