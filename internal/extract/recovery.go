package extract

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MalformedError indicates the recovered candidate could not be parsed as
// structured data. It is terminal for the attempt; Raw is kept verbatim so
// the user can see exactly what the model returned.
type MalformedError struct {
	Err error
	Raw string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed extraction response: %v", e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Recover pulls a JSON candidate out of a model response that may wrap it in
// prose or code fencing. It first looks for a balanced top-level object or
// array (greedy: first opening bracket to the last matching closer); failing
// that it strips code-fence markers and trims. The candidate is then parse
// checked; there is no further fallback past that.
func Recover(raw string) (json.RawMessage, error) {
	candidate := bracketSpan(raw)
	if candidate == "" {
		candidate = stripFences(raw)
	}

	var probe any
	if err := json.Unmarshal([]byte(candidate), &probe); err != nil {
		return nil, &MalformedError{Err: err, Raw: raw}
	}

	return json.RawMessage(candidate), nil
}

// bracketSpan returns the substring from the first top-level opening bracket
// to the last matching closer, or "" when no such span exists.
func bracketSpan(s string) string {
	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")

	start := objStart
	closer := "}"
	if start == -1 || (arrStart != -1 && arrStart < start) {
		start = arrStart
		closer = "]"
	}
	if start == -1 {
		return ""
	}

	end := strings.LastIndex(s, closer)
	if end <= start {
		return ""
	}

	return strings.TrimSpace(s[start : end+1])
}

// stripFences removes common Markdown code-fence wrappers.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the opening fence line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}
