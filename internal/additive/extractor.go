package additive

import (
	"regexp"
	"strings"
)

// codePattern recognises E-prefixed and INS-prefixed codes: three or four
// digits with an optional trailing letter, optional space after the prefix.
var codePattern = regexp.MustCompile(`(?i)(?:E\s?(\d{3,4}[a-z]?)|INS\s?(\d{3,4}[a-z]?))`)

// Candidate is a code-shaped token found in label text.
type Candidate struct {
	Raw  string `json:"raw"`
	Code string `json:"code"`
}

// ExtractCodes returns every code-shaped token in text in order of
// appearance. Duplicates are kept. The pattern is deliberately loose and will
// pick up false positives such as "e100" inside "Type100"; the matcher sorts
// those into the unmatched list.
func ExtractCodes(text string) []Candidate {
	matches := codePattern.FindAllStringSubmatch(text, -1)
	out := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		digits := m[1]
		if digits == "" {
			digits = m[2]
		}
		out = append(out, Candidate{
			Raw:  m[0],
			Code: "E" + strings.ToUpper(digits),
		})
	}
	return out
}
