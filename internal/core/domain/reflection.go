package domain

// CounselorPrompt is the system persona used for diary reflections.
const CounselorPrompt = "You are a warm counselor. Reply briefly and offer encouragement."

// ValidateDiaryContent rejects an empty diary entry. Whitespace is content
// and is passed through to the model.
func ValidateDiaryContent(content string) error {
	if content == "" {
		return ErrEmptyContent
	}
	return nil
}
