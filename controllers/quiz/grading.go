package controllers

// AnswerKeyEntry is the authoritative grading data for one MCQ question.
// CorrectOptionID is zero when the question has no single correct option
// (zero or several options flagged correct) — such questions still count
// toward the maximum score but can never earn credit.
type AnswerKeyEntry struct {
	Points          int
	CorrectOptionID uint
}

// AnswerKey maps question ID to its grading data, restricted to the MCQ
// questions of one quiz.
type AnswerKey map[uint]AnswerKeyEntry

// SubmittedAnswer is one student response as decoded from the submission
// payload. SelectedOptionID is nil for written answers.
type SubmittedAnswer struct {
	QuestionID       uint    `json:"questionId"`
	SelectedOptionID *uint   `json:"selected_option_id"`
	AnswerText       *string `json:"answer_text"`
}

// GradeSubmission scores a submission against an answer key.
//
// Each answer earns the question's points iff its selected option equals the
// key's correct option. Written answers and answers for unknown questions
// earn nothing. Duplicate answers for the same question are each scored
// independently. The maximum score is the point sum over the whole key and
// does not depend on what was submitted.
func GradeSubmission(key AnswerKey, answers []SubmittedAnswer) (score, totalPossible int) {
	for _, entry := range key {
		totalPossible += entry.Points
	}

	for _, answer := range answers {
		if answer.SelectedOptionID == nil {
			continue
		}
		entry, ok := key[answer.QuestionID]
		if !ok || entry.CorrectOptionID == 0 {
			continue
		}
		if *answer.SelectedOptionID == entry.CorrectOptionID {
			score += entry.Points
		}
	}
	return score, totalPossible
}
