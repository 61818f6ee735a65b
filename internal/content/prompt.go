package content

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert English tutor generating reading materials.

Rules:
- Write a single self-contained reading passage for the given topic and proficiency level.
- Respect the STRICT LENGTH CONSTRAINT exactly. Count words, not characters.
- Separate paragraphs with a blank line. Use a single space after each period.
- When questions are requested, every question must be answerable from the passage alone.
- Each question has 2-5 answer options with exactly one correct option, and a short explanation of why it is correct.
- Number question ids starting at 1.
- Always include a short 'summary' field capturing the passage in two or three sentences.`

// buildUserMessage assembles the generation request for one
// (topic, difficulty) pair from the static tables.
func buildUserMessage(topic Topic, difficulty Difficulty, p Profile) string {
	var b strings.Builder

	b.WriteString("Create a reading practice session.\n")
	fmt.Fprintf(&b, "%s\n", p.Style)
	fmt.Fprintf(&b, "STRICT LENGTH CONSTRAINT: %d-%d words.\n", p.MinWords, p.MaxWords)
	fmt.Fprintf(&b, "%s\n", registers[difficulty])
	fmt.Fprintf(&b, "Set avgTime to %q.\n", p.AvgTime)

	if p.QuestionCount == 0 {
		b.WriteString("Do NOT generate questions. Return an empty questions array.\n")
	} else {
		fmt.Fprintf(&b, "Generate EXACTLY %d multiple-choice questions.\n", p.QuestionCount)
	}

	return b.String()
}
