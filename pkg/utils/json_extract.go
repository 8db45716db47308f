package utils

import "strings"

// ExtractJSONObject recovers a single JSON object embedded in free-form
// model output: markdown fences and surrounding prose are tolerated, but a
// text with no object at all is an ErrNoJSONFound, never a silent empty
// result.
func ExtractJSONObject(raw string) (string, error) {
	return extractJSON(raw, '{', '}')
}

// ExtractJSONArray is ExtractJSONObject for top-level arrays.
func ExtractJSONArray(raw string) (string, error) {
	return extractJSON(raw, '[', ']')
}

func extractJSON(raw string, open, close byte) (string, error) {
	text := StripMarkdownFences(raw)

	start := strings.IndexByte(text, open)
	if start == -1 {
		return "", ErrNoJSONFound
	}

	end := findMatching(text, start, open, close)
	if end == -1 {
		// Unbalanced output, e.g. a truncated completion. Fall back to the
		// last close bracket so a trailing-noise-only defect still parses.
		end = strings.LastIndexByte(text, close)
		if end <= start {
			return "", ErrNoJSONFound
		}
	}

	return text[start : end+1], nil
}

// StripMarkdownFences removes ```json / ``` markers anywhere in the text,
// not just at the boundaries; models routinely fence only part of a reply.
func StripMarkdownFences(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```JSON", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

// findMatching returns the index of the close bracket matching the open
// bracket at start, honoring JSON string literals and escapes, or -1.
func findMatching(s string, start int, open, close byte) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]

		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
