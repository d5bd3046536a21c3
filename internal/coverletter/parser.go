package coverletter

import (
	"regexp"
	"strings"
)

// The parser and llm.ComposePrompt form one versioned unit: the labels and
// separator matched here are exactly what the prompt instructs the model to
// emit. Change them together.
var (
	labelRe     = regexp.MustCompile(`^[\s*_#>]*([A-Za-z][A-Za-z ]*?)[\s*_.]*:\s*(.*?)[\s*_]*$`)
	separatorRe = regexp.MustCompile(`^\s*[-*_]{3,}\s*$`)
)

// ParseResult turns raw completion text into a Result. It is total: when no
// labels are found the entire input is the letter body and the metadata
// fields stay empty. Label matching tolerates case variation, surrounding
// whitespace, markdown decoration, and trailing punctuation.
func ParseResult(raw string) Result {
	lines := strings.Split(raw, "\n")

	var res Result
	found := false
	body := len(lines)

scan:
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if separatorRe.MatchString(line) {
			body = i + 1
			break
		}
		m := labelRe.FindStringSubmatch(line)
		if m == nil {
			body = i
			break
		}
		value := strings.TrimSpace(m[2])
		switch normalizeLabel(m[1]) {
		case "company", "company name":
			res.CompanyName = value
			found = true
		case "role", "role applied", "position":
			res.RoleApplied = value
			found = true
		case "job id", "jobid", "job identifier":
			res.JobID = value
			found = true
		default:
			// A colon line that is not one of ours starts the body.
			body = i
			break scan
		}
	}

	if !found {
		// No recognizable header; every byte belongs to the letter.
		return Result{CoverLetter: raw}
	}
	res.CoverLetter = strings.TrimSpace(strings.Join(lines[body:], "\n"))
	return res
}

func normalizeLabel(raw string) string {
	label := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	return strings.TrimRight(label, ".,;:-")
}
