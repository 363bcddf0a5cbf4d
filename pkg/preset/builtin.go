package preset

// Builtin returns the presets shipped with the explorer. The "i-have-a"
// probabilities come from the ten most likely next tokens reported by a chat
// completion API for the prompt "I have a".
func Builtin() []Preset {
	return []Preset{
		{
			Name:        "i-have-a",
			Prompt:      "I have a",
			Description: "Top ten next tokens with probabilities from real log probabilities",
			Vocabulary:  []string{"dog", "cat", "dream", "book", "question", "plan", "car", "pen", "pet", "idea"},
			Probabilities: []float64{
				0.45853809710312615, 0.40465845041054327, 0.07031908764647739,
				0.015690313995143465, 0.015690313995143465, 0.012219628826053952,
				0.010783784589726049, 0.0050938991521505715, 0.002406187582511743,
				0.0006893842845350389,
			},
		},
		{
			Name:          "i-have-a-simple",
			Prompt:        "I have a",
			Description:   "Ten candidate words with a smooth, hand-picked distribution",
			Vocabulary:    []string{"cat", "dog", "house", "car", "dream", "pen", "book", "friend", "idea", "problem"},
			Probabilities: []float64{0.2, 0.18, 0.15, 0.12, 0.08, 0.07, 0.06, 0.05, 0.05, 0.04},
		},
	}
}

// DefaultName is the preset used when none is requested.
const DefaultName = "i-have-a"
