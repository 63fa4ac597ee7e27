package recommend

import (
	"fmt"
	"strings"

	"github.com/booktrackapp/booktrack-server/internal/domain"
)

// promptTemplate instructs the model to emit exactly the delimited layout
// that Parse consumes.
const promptTemplate = `You are an expert book curator. Based on a user's reading history, recommend 5 diverse books they might enjoy.

User's completed books:
%s

Currently reading:
%s

Want to read:
%s

Provide exactly 5 book recommendations with variety in genres. For each recommendation, use this EXACT format:

Title: [Book Title]
Author: [Author Name]
Reason: [One sentence explaining why they'd enjoy this based on their reading history]
---

Make sure to separate each recommendation with exactly three dashes (---) on a new line.`

// BuildPrompt renders the reading history into the curator instruction
// template. Pure function of its input.
func BuildPrompt(history domain.ReadingHistory) string {
	return fmt.Sprintf(promptTemplate,
		joinOrNone(history.Completed),
		joinOrNone(history.Reading),
		joinOrNone(history.WantToRead),
	)
}

func joinOrNone(lines []string) string {
	if len(lines) == 0 {
		return "None yet"
	}
	return strings.Join(lines, ", ")
}
