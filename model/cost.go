package model

// Usage tracks token consumption across one or more requests.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Add adds the given usage to this usage.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
}

// TotalTokens returns the total tokens used.
func (u Usage) TotalTokens() int {
	return u.InputTokens + u.OutputTokens
}

// Pricing holds per-million-token USD pricing for a model.
type Pricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// Prices contains current pricing for supported models.
var Prices = map[Name]Pricing{
	Opus:   {InputPerMillion: 15.0, OutputPerMillion: 75.0},
	Sonnet: {InputPerMillion: 3.0, OutputPerMillion: 15.0},
	Haiku:  {InputPerMillion: 0.80, OutputPerMillion: 4.0},
}

// Cost calculates the USD cost for a request against the given model.
// Unknown model identifiers cost exactly zero; callers must not assume a
// nonzero figure for unrecognized models.
func Cost(model string, inputTokens, outputTokens int) float64 {
	p, ok := Prices[Name(model)]
	if !ok {
		return 0
	}
	return (float64(inputTokens)*p.InputPerMillion + float64(outputTokens)*p.OutputPerMillion) / 1_000_000
}

// CostUsage is Cost over an accumulated Usage.
func CostUsage(model string, u Usage) float64 {
	return Cost(model, u.InputTokens, u.OutputTokens)
}
