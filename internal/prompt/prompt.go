// Package prompt builds the grounded question prompt sent to the chat model.
package prompt

import "strings"

// Template is the benchmark prompt. The text is part of the benchmark
// contract: results are sensitive to it, so it must not be reworded.
const Template = `Answer to the following question, based ONLY on the context i'll give you.

Question:---
{{question}}
---

Context:---
{{information}}
--- end context ---

IF you have no useful information from context, answer with 'I can't provide any answer.'.
Don't use any other general knowledge to give information outside the context.
`

// Separator joins retrieved context segments inside the information slot.
const Separator = "\n--\n"

// JoinContext concatenates retrieved texts in the order given. An empty
// slice yields an empty information block; the prompt is still sent.
func JoinContext(texts []string) string {
	return strings.Join(texts, Separator)
}

// Render instantiates the template with the question and the joined
// context. Plain substitution keeps the surrounding bytes exact.
func Render(question, information string) string {
	out := strings.ReplaceAll(Template, "{{question}}", question)
	return strings.ReplaceAll(out, "{{information}}", information)
}
