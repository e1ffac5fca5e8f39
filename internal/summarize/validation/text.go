package validation

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// TextRequiredValidator rejects empty and whitespace-only text
type TextRequiredValidator struct{}

func NewTextRequiredValidator() *TextRequiredValidator {
	return &TextRequiredValidator{}
}

func (v *TextRequiredValidator) Name() string {
	return "TextRequiredValidator"
}

func (v *TextRequiredValidator) Validate(ctx context.Context, input Input) Result {
	if strings.TrimSpace(input.Request.Text) == "" {
		return Fail("text must not be empty")
	}
	return OK()
}

// TextLengthValidator enforces the character ceiling
type TextLengthValidator struct{}

func NewTextLengthValidator() *TextLengthValidator {
	return &TextLengthValidator{}
}

func (v *TextLengthValidator) Name() string {
	return "TextLengthValidator"
}

func (v *TextLengthValidator) Validate(ctx context.Context, input Input) Result {
	if input.MaxTextChars <= 0 {
		return OK()
	}
	if n := utf8.RuneCountInString(input.Request.Text); n > input.MaxTextChars {
		return Fail(fmt.Sprintf("text is too long (%d characters, max %d)", n, input.MaxTextChars))
	}
	return OK()
}
