package ai

import "fmt"

// extractFirstJSON returns the first balanced brace-delimited span in s. The
// backend may wrap the JSON in commentary or markdown fences, so a plain
// json.Unmarshal of the whole response is not enough; and a greedy
// first-{-to-last-} slice breaks when the model appends a second object or a
// stray closing brace. The scanner tracks string literals and escapes so
// braces inside extracted text do not unbalance the count.
func extractFirstJSON(s string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range s {
		if start == -1 {
			if r == '{' {
				start = i
				depth = 1
			}
			continue
		}

		if escaped {
			escaped = false
			continue
		}

		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1], nil
				}
			}
		}
	}

	if start == -1 {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return "", fmt.Errorf("unbalanced JSON object in response")
}
