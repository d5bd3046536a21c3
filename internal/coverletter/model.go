package coverletter

// Result is the structured outcome of one generation. CoverLetter is never
// empty on success; the metadata fields degrade to empty strings when the
// completion does not carry them.
type Result struct {
	CoverLetter string `json:"cover_letter"`
	CompanyName string `json:"company_name"`
	RoleApplied string `json:"role_applied"`
	JobID       string `json:"job_id"`
}
