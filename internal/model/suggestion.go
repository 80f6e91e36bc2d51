package model

// Strategy names a pure item-list transformation a suggestion can carry.
type Strategy int

const (
	// StrategyNone marks an informational suggestion.
	StrategyNone Strategy = iota
	// StrategyReduceTopCost decrements quantities of the costliest lines.
	StrategyReduceTopCost
	// StrategySwapLemonade trades one lemonade concentrate for drink mix.
	StrategySwapLemonade
)

// String returns the stable name used in CLI output and logs.
func (s Strategy) String() string {
	switch s {
	case StrategyReduceTopCost:
		return "reduce-top-cost"
	case StrategySwapLemonade:
		return "swap-lemonade"
	default:
		return "none"
	}
}

// Suggestion is a read-only budget recommendation. A suggestion with
// StrategyNone is informational; any other strategy is actionable and is
// dispatched by the caller through budget.Apply.
type Suggestion struct {
	Message  string   `json:"message"`
	Strategy Strategy `json:"strategy"`
	// Cap is the budget cap the suggestion was generated against.
	Cap float64 `json:"cap"`
}

// Actionable reports whether the suggestion carries a transformation.
func (s Suggestion) Actionable() bool {
	return s.Strategy != StrategyNone
}
