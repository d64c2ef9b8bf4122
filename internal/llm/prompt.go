package llm

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a professional and friendly AI interviewer. Your role is to conduct a structured interview
with a student/candidate. You should:

1. Be professional yet warm and encouraging
2. Ask the provided questions one at a time
3. Listen carefully to the candidate's responses
4. Ask relevant follow-up questions when appropriate
5. Provide smooth transitions between topics
6. Keep track of which questions have been asked
7. Manage the interview time effectively
8. End the interview gracefully when all questions are covered

IMPORTANT RULES:
- Only ask ONE question at a time
- Wait for the candidate's response before moving to the next question
- Be encouraging and create a comfortable environment
- If the candidate seems confused, rephrase the question
- Keep your responses concise and professional`

// BuildSystemPrompt renders the interviewer system prompt with session context
// and the scripted question list.
func BuildSystemPrompt(req Request) string {
	var b strings.Builder
	b.WriteString(systemPrompt)

	b.WriteString("\n\nINTERVIEW CONTEXT:\n")
	if req.SessionTitle != "" {
		fmt.Fprintf(&b, "- title: %s\n", req.SessionTitle)
	}
	if req.StudentName != "" {
		fmt.Fprintf(&b, "- student_name: %s\n", req.StudentName)
	}
	if req.DurationMinutes > 0 {
		fmt.Fprintf(&b, "- duration: %d minutes\n", req.DurationMinutes)
	}

	b.WriteString("\nQUESTIONS TO ASK (in order):\n")
	for i, q := range req.Questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}

	return b.String()
}

// BuildUserPrompt renders the stage-specific instruction sent after the history.
func BuildUserPrompt(req Request) string {
	switch req.Stage {
	case StageGreeting:
		return "Start the interview with a warm greeting and ask the first question: " + req.NextQuestion
	case StageClosing:
		return "The interview is now complete. Thank the candidate and provide a professional closing statement."
	default:
		var b strings.Builder
		if req.StudentResponse != "" {
			fmt.Fprintf(&b, "The candidate answered: %s\n\n", req.StudentResponse)
		}
		fmt.Fprintf(&b, "Acknowledge the answer briefly, then ask the next question: %s", req.NextQuestion)
		return b.String()
	}
}
