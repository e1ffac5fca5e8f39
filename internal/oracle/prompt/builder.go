package prompt

import (
	"fmt"
	"math"

	"summarizer/backend/internal/model"
)

// InstructionPrefix returns the instruction for style, or "" for neutral.
func InstructionPrefix(style model.SummaryStyle) string {
	switch style {
	case model.StyleBullet:
		return BulletInstruction
	case model.StyleFormal:
		return FormalInstruction
	case model.StyleCasual:
		return CasualInstruction
	case model.StyleTechnical:
		return TechnicalInstruction
	default:
		return ""
	}
}

// KnownStyle reports whether style has a defined instruction.
func KnownStyle(style model.SummaryStyle) bool {
	return style == model.StyleNeutral || InstructionPrefix(style) != ""
}

// WithInstruction prepends the style instruction to text.
func WithInstruction(text string, style model.SummaryStyle) string {
	return InstructionPrefix(style) + text
}

// GenerationOptions carries the length knobs a chat model can only be told about.
type GenerationOptions struct {
	MinTokens     int
	MaxTokens     int
	LengthPenalty float64
}

// TargetTokens maps the length penalty onto the [min, max] range: 1.0 lands
// in the middle, larger values lean longer, smaller values shorter.
func (o GenerationOptions) TargetTokens() int {
	if o.MaxTokens <= o.MinTokens {
		return o.MaxTokens
	}
	lp := o.LengthPenalty
	if lp <= 0 {
		lp = 1
	}
	frac := math.Min(math.Max(lp/2, 0), 1)
	return o.MinTokens + int(math.Round(frac*float64(o.MaxTokens-o.MinTokens)))
}

// BuildGenerationPrompt renders the chat prompt for text.
func BuildGenerationPrompt(text string, opts GenerationOptions) string {
	return fmt.Sprintf(GenerationPromptTemplate, opts.MinTokens, opts.MaxTokens, opts.TargetTokens(), text)
}
