package seed

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the instruction sent to the model for req.
func BuildPrompt(req Request) string {
	var b strings.Builder

	noun := "records"
	if req.Count == 1 {
		noun = "record"
	}

	b.WriteString(fmt.Sprintf("Generate exactly %d synthetic %s of test data for a software system.\n", req.Count, noun))
	b.WriteString(fmt.Sprintf("Each record must be a JSON object with exactly these fields, in this order: %s.\n", strings.Join(req.Fields, ", ")))
	b.WriteString("Do not add any other fields.\n")
	b.WriteString("Use realistic, varied values that fit each field name.\n")
	b.WriteString("\nOutput: only a bare JSON array of the records.\n")
	b.WriteString("No markdown code blocks (```json), no introductory or explanatory text.")

	return b.String()
}
