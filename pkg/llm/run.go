package llm

// Run is a complete explorer run, from base distribution to drawn samples,
// as recorded in the experiment log.
type Run struct {
	Prompt      string    `json:"prompt,omitempty"`
	Vocabulary  []string  `json:"vocabulary"`
	Original    []float64 `json:"original"`
	Transform   string    `json:"transform"`
	Transformed []float64 `json:"transformed"`
	Samples     []string  `json:"samples,omitempty"`
	Empirical   []float64 `json:"empirical,omitempty"`
	Seed        *uint64   `json:"seed,omitempty"`
}
