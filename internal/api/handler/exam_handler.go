package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/exam-api/internal/core/domain"
	"github.com/99minutos/exam-api/internal/core/ports"
)

const msgInvalidSubmission = "Submission must be a JSON array of answers"

type ExamHandler struct {
	exam ports.ExamService
	log  zerolog.Logger
}

func NewExamHandler(exam ports.ExamService, log zerolog.Logger) *ExamHandler {
	return &ExamHandler{exam: exam, log: log}
}

// Questions lists the exam questions without their correct answers.
//
// @Summary      List exam questions
// @Tags         exam
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   questionResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/questions [get]
func (h *ExamHandler) Questions(c echo.Context) error {
	views := h.exam.ListQuestions()
	resp := make([]questionResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, questionResponse{ID: v.ID, Question: v.Prompt, Options: v.Options})
	}
	return c.JSON(http.StatusOK, resp)
}

// Submit scores a list of answers against the question bank.
//
// @Summary      Submit answers
// @Tags         exam
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []answerRequest  true  "Selected option per question id"
// @Success      200   {object}  scoreResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/submit [post]
func (h *ExamHandler) Submit(c echo.Context) error {
	var req submitRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req.Answers); err != nil || req.Answers == nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidSubmission)
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	submissions := make([]domain.AnswerSubmission, len(req.Answers))
	for i, a := range req.Answers {
		submissions[i] = domain.AnswerSubmission{QuestionID: *a.ID, SelectedOption: *a.SelectedOption}
	}

	result := h.exam.Score(submissions)

	h.log.Info().
		Str("username", ctxUsername(c)).
		Int("score", result.Score).
		Int("total", result.Total).
		Msg("exam submitted")

	return c.JSON(http.StatusOK, scoreResponse{
		Score:          result.Score,
		Total:          result.Total,
		CorrectAnswers: result.CorrectAnswers,
	})
}
