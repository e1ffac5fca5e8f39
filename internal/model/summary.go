package model

// LengthTier selects how long a generated summary may be.
type LengthTier string

const (
	LengthShort  LengthTier = "short"
	LengthMedium LengthTier = "medium"
	LengthLong   LengthTier = "long"
)

// SummaryStyle selects the instruction prepended to the text.
type SummaryStyle string

const (
	StyleNeutral   SummaryStyle = "neutral"
	StyleBullet    SummaryStyle = "bullet"
	StyleFormal    SummaryStyle = "formal"
	StyleCasual    SummaryStyle = "casual"
	StyleTechnical SummaryStyle = "technical"
)

const (
	// DefaultLength is used when the request names no tier
	DefaultLength = LengthMedium
	// DefaultTemperature is used when the request sends no temperature
	DefaultTemperature = 1.0
	// MinTemperature and MaxTemperature bound the accepted temperature
	MinTemperature = 0.0
	MaxTemperature = 2.0
)

// SummarizationRequest is the body of POST /summarize.
// Both maxWords and targetWordCount are accepted; maxWords wins when both are set.
type SummarizationRequest struct {
	Text            string   `json:"text"`
	MaxWords        *int     `json:"maxWords,omitempty"`
	TargetWordCount *int     `json:"targetWordCount,omitempty"`
	Length          string   `json:"length,omitempty"`
	SummaryStyle    string   `json:"summaryStyle,omitempty"`
	Style           string   `json:"style,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
}

// WordBudget returns the requested word budget, 0 meaning unbounded.
func (r *SummarizationRequest) WordBudget() int {
	if r.MaxWords != nil {
		return *r.MaxWords
	}
	if r.TargetWordCount != nil {
		return *r.TargetWordCount
	}
	return 0
}

// LengthTier returns the requested tier or the default.
func (r *SummarizationRequest) LengthTier() LengthTier {
	if r.Length == "" {
		return DefaultLength
	}
	return LengthTier(r.Length)
}

// StyleName returns the requested style or neutral.
func (r *SummarizationRequest) StyleName() SummaryStyle {
	switch {
	case r.SummaryStyle != "":
		return SummaryStyle(r.SummaryStyle)
	case r.Style != "":
		return SummaryStyle(r.Style)
	default:
		return StyleNeutral
	}
}

// TemperatureOrDefault returns the requested temperature or the default.
func (r *SummarizationRequest) TemperatureOrDefault() float64 {
	if r.Temperature == nil {
		return DefaultTemperature
	}
	return *r.Temperature
}

// SummarizationResult is the body of a successful response.
type SummarizationResult struct {
	Summary string `json:"summary"`
}

// ErrorResponse is the body of every failed response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
