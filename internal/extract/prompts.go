package extract

import (
	"strings"

	"github.com/kmlxly/splitit-app-sub001/internal/model"
)

// Instruction builds the extraction instruction for a request. The batch
// template is used for multi-transaction documents (bank statements); the
// single template for one receipt.
//
// The field names and category set emitted here are the contract with the
// normalizer: both must change together or extracted records stop mapping
// onto the canonical transaction shape.
func Instruction(batch bool) string {
	var b strings.Builder

	if batch {
		b.WriteString("You are a bank statement parser.\n\n")
		b.WriteString("Task:\n")
		b.WriteString("- Parse ALL transactions in the attached statement, across every page.\n")
		b.WriteString("- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n")
		b.WriteString("- Output a JSON array of objects, one per transaction.\n\n")
		b.WriteString("Each object must have these fields:\n")
	} else {
		b.WriteString("You are a receipt parser.\n\n")
		b.WriteString("Task:\n")
		b.WriteString("- Read the attached receipt photo and extract one transaction.\n")
		b.WriteString("- Output STRICT JSON only (no comments, no extra text).\n")
		b.WriteString("- Output a single JSON object.\n\n")
		b.WriteString("The object must have these fields:\n")
	}

	b.WriteString("- \"title\": string, the merchant or a short description\n")
	b.WriteString("- \"amount\": number, ALWAYS a positive magnitude regardless of direction\n")
	b.WriteString("- \"category\": string, exactly one of the categories below\n")
	b.WriteString("- \"date\": string, day and short month, e.g. \"12 Jan\" or \"12 Jan 2025\"; include the year only if printed\n\n")

	b.WriteString("Use ONLY these categories:\n")
	for _, c := range model.Categories() {
		b.WriteString("- " + string(c) + "\n")
	}
	b.WriteString("\nRules:\n")
	b.WriteString("- Use \"Income\" only when the document clearly shows money received.\n")
	b.WriteString("- If no category fits, use \"Other\".\n")
	b.WriteString("- Return ONLY valid raw JSON.\n")
	b.WriteString("- Do NOT wrap the response in code fences.\n")
	b.WriteString("- Do NOT use ```json or any Markdown.\n")

	return b.String()
}
