package prompt

// Instruction prefixes prepended to the input text for non-neutral styles.
// Seq2seq backends read them as part of the input; chat backends see them
// inside the generation prompt.
const (
	BulletInstruction    = "Summarize the following text as a short list of bullet points: "
	FormalInstruction    = "Summarize the following text in a formal, professional tone: "
	CasualInstruction    = "Summarize the following text in a casual, conversational tone: "
	TechnicalInstruction = "Summarize the following text for a technical audience, keeping key terms: "
)

// GenerationPromptTemplate is sent to chat backends.
// Args: min tokens, max tokens, target tokens, text.
const GenerationPromptTemplate = `Write an abstractive summary of the text below.
- Use between %d and %d tokens; aim for about %d.
- Do not repeat phrases.
- Reply with the summary only, without a heading or preamble.

Text:
%s`
