package extraction

// EmptyInputError is returned by ParseResumeContent when the whole document
// text is empty or whitespace-only. It is the only fatal extraction error;
// everything else degrades to empty or partial fields.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "resume text is empty"
}
