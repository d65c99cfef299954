package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func optionID(id uint) *uint { return &id }

func TestGradeSubmissionScoresCorrectSelections(t *testing.T) {
	key := AnswerKey{
		1: {Points: 5, CorrectOptionID: 11},
		2: {Points: 10, CorrectOptionID: 22},
	}
	answers := []SubmittedAnswer{
		{QuestionID: 1, SelectedOptionID: optionID(11)},
		{QuestionID: 2, SelectedOptionID: optionID(99)},
	}

	score, total := GradeSubmission(key, answers)
	assert.Equal(t, 5, score)
	assert.Equal(t, 15, total)
}

func TestGradeSubmissionEmptySubmission(t *testing.T) {
	key := AnswerKey{
		1: {Points: 12, CorrectOptionID: 3},
		2: {Points: 8, CorrectOptionID: 7},
	}

	score, total := GradeSubmission(key, nil)
	assert.Equal(t, 0, score)
	assert.Equal(t, 20, total)
}

func TestGradeSubmissionEmptyKey(t *testing.T) {
	answers := []SubmittedAnswer{
		{QuestionID: 1, SelectedOptionID: optionID(11)},
	}

	score, total := GradeSubmission(AnswerKey{}, answers)
	assert.Equal(t, 0, score)
	assert.Equal(t, 0, total)
}

func TestGradeSubmissionOrderInvariant(t *testing.T) {
	key := AnswerKey{
		1: {Points: 5, CorrectOptionID: 11},
		2: {Points: 10, CorrectOptionID: 22},
		3: {Points: 3, CorrectOptionID: 31},
	}
	answers := []SubmittedAnswer{
		{QuestionID: 1, SelectedOptionID: optionID(11)},
		{QuestionID: 2, SelectedOptionID: optionID(22)},
		{QuestionID: 3, SelectedOptionID: optionID(30)},
	}
	reversed := []SubmittedAnswer{answers[2], answers[1], answers[0]}

	score, total := GradeSubmission(key, answers)
	scoreRev, totalRev := GradeSubmission(key, reversed)
	assert.Equal(t, score, scoreRev)
	assert.Equal(t, total, totalRev)
	assert.Equal(t, 15, score)
}

func TestGradeSubmissionTotalIndependentOfAnswers(t *testing.T) {
	key := AnswerKey{
		1: {Points: 5, CorrectOptionID: 11},
		2: {Points: 10, CorrectOptionID: 22},
	}

	_, totalEmpty := GradeSubmission(key, nil)
	_, totalFull := GradeSubmission(key, []SubmittedAnswer{
		{QuestionID: 1, SelectedOptionID: optionID(11)},
		{QuestionID: 2, SelectedOptionID: optionID(22)},
	})
	assert.Equal(t, totalEmpty, totalFull)
}

func TestGradeSubmissionIgnoresWrittenAndUnknownAnswers(t *testing.T) {
	text := "some essay"
	key := AnswerKey{
		1: {Points: 5, CorrectOptionID: 11},
	}
	answers := []SubmittedAnswer{
		{QuestionID: 1, AnswerText: &text},               // written answer for an MCQ question
		{QuestionID: 42, SelectedOptionID: optionID(11)}, // question not in key
		{QuestionID: 1, SelectedOptionID: optionID(11)},  // the one that counts
	}

	score, total := GradeSubmission(key, answers)
	assert.Equal(t, 5, score)
	assert.Equal(t, 5, total)
}

func TestGradeSubmissionDoubleCountsDuplicates(t *testing.T) {
	key := AnswerKey{
		1: {Points: 5, CorrectOptionID: 11},
	}
	answers := []SubmittedAnswer{
		{QuestionID: 1, SelectedOptionID: optionID(11)},
		{QuestionID: 1, SelectedOptionID: optionID(11)},
	}

	score, _ := GradeSubmission(key, answers)
	assert.Equal(t, 10, score)
}

func TestGradeSubmissionUngradableQuestionEarnsNothing(t *testing.T) {
	// CorrectOptionID zero models a question with no (or several) options
	// flagged correct: it still counts toward the maximum.
	key := AnswerKey{
		1: {Points: 5},
		2: {Points: 10, CorrectOptionID: 22},
	}
	answers := []SubmittedAnswer{
		{QuestionID: 1, SelectedOptionID: optionID(7)},
		{QuestionID: 2, SelectedOptionID: optionID(22)},
	}

	score, total := GradeSubmission(key, answers)
	assert.Equal(t, 10, score)
	assert.Equal(t, 15, total)
}

func TestGradeSubmissionScoreNeverExceedsTotal(t *testing.T) {
	key := AnswerKey{
		1: {Points: 5, CorrectOptionID: 11},
		2: {Points: 10, CorrectOptionID: 22},
	}
	answers := []SubmittedAnswer{
		{QuestionID: 1, SelectedOptionID: optionID(11)},
		{QuestionID: 2, SelectedOptionID: optionID(22)},
	}

	score, total := GradeSubmission(key, answers)
	assert.LessOrEqual(t, score, total)
	assert.Equal(t, total, score)
}
