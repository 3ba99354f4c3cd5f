package domain

// Verdict is the validator's pass/fail judgment over a selection.
// Errors keeps the order the rules were evaluated in, so messages
// are deterministic for the presentation layer.
type Verdict struct {
	IsValid bool
	Errors  []string
}

func ValidVerdict() Verdict {
	return Verdict{IsValid: true}
}

func InvalidVerdict(reasons ...string) Verdict {
	return Verdict{IsValid: false, Errors: reasons}
}
