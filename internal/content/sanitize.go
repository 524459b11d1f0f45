package content

import (
	"regexp"
	"strings"
)

var (
	fenceOpenRe  = regexp.MustCompile(`(?i)^` + "```" + `json\s*`)
	fenceBareRe  = regexp.MustCompile(`^` + "```" + `\s*`)
	fenceCloseRe = regexp.MustCompile("```" + `\s*$`)
)

// sanitizeJSON extracts the JSON object from model output. Models
// sometimes wrap the payload in markdown code fences or prose; the
// substring from the first '{' to the last '}' wins when both exist.
func sanitizeJSON(text string) string {
	if text == "" {
		return ""
	}
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first != -1 && last != -1 && last > first {
		return text[first : last+1]
	}
	text = fenceOpenRe.ReplaceAllString(text, "")
	text = fenceBareRe.ReplaceAllString(text, "")
	text = fenceCloseRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
