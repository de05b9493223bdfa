package assistant

import "fmt"

// promptTemplate is the fixed template the retrieved context and the user
// question are substituted into. The completion is returned verbatim.
const promptTemplate = `Use the following context to answer the user's question.

Context: %s

Question: %s

Answer as clearly and concisely as possible, referring only to the given context.`

// renderPrompt fills the template with the joined context block and the
// question.
func renderPrompt(contextBlock, question string) string {
	return fmt.Sprintf(promptTemplate, contextBlock, question)
}
