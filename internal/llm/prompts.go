package llm

import "strings"

// promptOutputVersion pins the labeled-output contract shared with the
// cover letter parser. Bump it whenever the output format below changes,
// and change the parser in the same commit.
const promptOutputVersion = "v1"

// PromptOutputVersion reports the current prompt/parser contract version.
func PromptOutputVersion() string {
	return promptOutputVersion
}

// ComposePrompt builds the provider-agnostic instruction payload from the
// resume text and job description. Both inputs are embedded verbatim; the
// output format instructions are what the parser relies on.
func ComposePrompt(resumeText, jobDescription string) string {
	var sb strings.Builder
	sb.WriteString("You are an experienced career coach who writes tailored, specific cover letters.\n")
	sb.WriteString("Write a cover letter for the candidate below, addressed to the company in the job posting.\n")
	sb.WriteString("Ground every claim in the resume; do not invent experience the candidate does not have.\n")
	sb.WriteString("Keep it to three or four short paragraphs, professional but not stiff.\n")
	sb.WriteString("\n")
	sb.WriteString("Respond in exactly this format, with no other commentary:\n")
	sb.WriteString("Company: <company name from the job posting>\n")
	sb.WriteString("Role: <role title from the job posting>\n")
	sb.WriteString("Job ID: <job or requisition identifier, blank if the posting has none>\n")
	sb.WriteString("---\n")
	sb.WriteString("<the cover letter body>\n")
	sb.WriteString("\n")
	sb.WriteString("Resume:\n")
	sb.WriteString(resumeText)
	sb.WriteString("\n\n")
	sb.WriteString("Job description:\n")
	sb.WriteString(jobDescription)
	sb.WriteString("\n")
	return sb.String()
}
