package lesson

import (
	"fmt"
	"regexp"
	"strings"

	model "github.com/howtolabs/howto-teacher/internal/model/lesson"
)

// emptyAnswerPlaceholder stands in for a generation that cleaned down
// to nothing.
const emptyAnswerPlaceholder = "(no text returned)"

// mdHeadingRe matches the markdown heading lines some generations put
// above the lesson body.
var mdHeadingRe = regexp.MustCompile(`^\s*(\*{2}Lesson:|#{1,6})`)

// buildLessonPrompt assembles the prompt for a fresh lesson: numbered
// reference snippets, when any were found, then the teaching
// instructions.
func buildLessonPrompt(question string, snippets []string) string {
	var b strings.Builder

	if len(snippets) > 0 {
		b.WriteString("Reference snippets:\n")
		for i, s := range snippets {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "You are a seasoned teacher explaining step by step how to %s.\n", question)
	b.WriteString("Begin with a concise introduction explaining the goal and context.\n")
	b.WriteString("Then provide a clear sequence of numbered steps, using simple examples or analogies.\n")
	b.WriteString("Finish with a brief summary of the key ideas.\n\n")
	b.WriteString("Lesson:\n")

	return b.String()
}

// buildFollowUpPrompt assembles the prompt for a follow-up question:
// the full dialogue so far as plain text, then the new question.
// History is included whole; long sessions will eventually outgrow the
// model's prompt window.
func buildFollowUpPrompt(turns []model.Turn, question string) string {
	var b strings.Builder

	b.WriteString("You are a seasoned teacher continuing a lesson with a student. The conversation so far:\n\n")
	for _, turn := range turns {
		fmt.Fprintf(&b, "Student: %s\n", turn.Question)
		fmt.Fprintf(&b, "Teacher: %s\n\n", turn.Answer)
	}
	fmt.Fprintf(&b, "Student: %s\n\n", question)
	b.WriteString("Answer the student's latest question as a direct continuation of the lesson above.\n\n")
	b.WriteString("Teacher:\n")

	return b.String()
}

// cleanAnswer drops any leading markdown heading lines from the
// generated text and trims it. An all-heading generation cleans to "".
func cleanAnswer(raw string) string {
	lines := strings.Split(raw, "\n")
	for len(lines) > 0 && mdHeadingRe.MatchString(lines[0]) {
		lines = lines[1:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
