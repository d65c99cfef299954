package quizValidator

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quizControllers "madrasa/controllers/quiz"
)

func newSubmitApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/quizzes/:quizId/submit", SubmitQuiz(), func(c *fiber.Ctx) error {
		payload := c.Locals("validatedSubmission").(*quizControllers.SubmissionPayload)
		return c.JSON(fiber.Map{
			"quiz_id":      payload.QuizID,
			"student_id":   payload.StudentID,
			"answer_count": len(payload.Answers),
		})
	})
	return app
}

func submissionRequest(t *testing.T, target string, fields map[string]string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestSubmitQuizValidatorAcceptsWellFormedPayload(t *testing.T) {
	app := newSubmitApp()

	req := submissionRequest(t, "/api/quizzes/3/submit", map[string]string{
		"studentId": "7",
		"answers":   `[{"questionId":1,"selected_option_id":11},{"questionId":2,"answer_text":"إجابة مكتوبة"}]`,
		"startTime": "1704096000000",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSubmitQuizValidatorRejectsMalformedAnswers(t *testing.T) {
	app := newSubmitApp()

	req := submissionRequest(t, "/api/quizzes/3/submit", map[string]string{
		"studentId": "7",
		"answers":   `{"not":"a list"`,
		"startTime": "1704096000000",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubmitQuizValidatorRejectsAnswerWithoutQuestionID(t *testing.T) {
	app := newSubmitApp()

	req := submissionRequest(t, "/api/quizzes/3/submit", map[string]string{
		"studentId": "7",
		"answers":   `[{"selected_option_id":11}]`,
		"startTime": "1704096000000",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubmitQuizValidatorRejectsMissingFields(t *testing.T) {
	app := newSubmitApp()

	for name, fields := range map[string]map[string]string{
		"no student": {"answers": `[]`, "startTime": "1704096000000"},
		"no answers": {"studentId": "7", "startTime": "1704096000000"},
		"no start":   {"studentId": "7", "answers": `[]`},
	} {
		req := submissionRequest(t, "/api/quizzes/3/submit", fields)
		resp, err := app.Test(req)
		require.NoError(t, err, name)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, name)
	}
}

func TestSubmitQuizValidatorRejectsBadQuizID(t *testing.T) {
	app := newSubmitApp()

	req := submissionRequest(t, "/api/quizzes/abc/submit", map[string]string{
		"studentId": "7",
		"answers":   `[]`,
		"startTime": "1704096000000",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubmitQuizValidatorRejectsBadStartTime(t *testing.T) {
	app := newSubmitApp()

	req := submissionRequest(t, "/api/quizzes/3/submit", map[string]string{
		"studentId": "7",
		"answers":   `[]`,
		"startTime": "yesterday",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
