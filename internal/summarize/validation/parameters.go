package validation

import (
	"context"
	"fmt"

	"summarizer/backend/internal/model"
	"summarizer/backend/internal/oracle/prompt"
)

// TemperatureValidator keeps temperature inside [0, 2]
type TemperatureValidator struct{}

func NewTemperatureValidator() *TemperatureValidator {
	return &TemperatureValidator{}
}

func (v *TemperatureValidator) Name() string {
	return "TemperatureValidator"
}

func (v *TemperatureValidator) Validate(ctx context.Context, input Input) Result {
	t := input.Request.TemperatureOrDefault()
	if t < model.MinTemperature || t > model.MaxTemperature {
		return Fail(fmt.Sprintf("temperature must be between %g and %g", model.MinTemperature, model.MaxTemperature))
	}
	return OK()
}

// WordBudgetValidator rejects negative word budgets
type WordBudgetValidator struct{}

func NewWordBudgetValidator() *WordBudgetValidator {
	return &WordBudgetValidator{}
}

func (v *WordBudgetValidator) Name() string {
	return "WordBudgetValidator"
}

func (v *WordBudgetValidator) Validate(ctx context.Context, input Input) Result {
	if input.Request.WordBudget() < 0 {
		return Fail("maxWords must be zero or positive")
	}
	return OK()
}

// LengthTierValidator accepts short, medium and long
type LengthTierValidator struct{}

func NewLengthTierValidator() *LengthTierValidator {
	return &LengthTierValidator{}
}

func (v *LengthTierValidator) Name() string {
	return "LengthTierValidator"
}

func (v *LengthTierValidator) Validate(ctx context.Context, input Input) Result {
	switch input.Request.LengthTier() {
	case model.LengthShort, model.LengthMedium, model.LengthLong:
		return OK()
	}
	return Fail(fmt.Sprintf("length must be one of short, medium, long (got %q)", input.Request.Length))
}

// StyleValidator accepts styles that have an instruction defined
type StyleValidator struct{}

func NewStyleValidator() *StyleValidator {
	return &StyleValidator{}
}

func (v *StyleValidator) Name() string {
	return "StyleValidator"
}

func (v *StyleValidator) Validate(ctx context.Context, input Input) Result {
	style := input.Request.StyleName()
	if !prompt.KnownStyle(style) {
		return Fail(fmt.Sprintf("unknown summary style %q", style))
	}
	return OK()
}
