package handler

import (
	"quizmaster/internal/domain"
	"quizmaster/internal/middleware"
	"quizmaster/internal/service"
	"quizmaster/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-taking and result HTTP requests
type QuizHandler struct {
	catalog   service.CatalogService
	grading   service.GradingService
	results   service.ResultService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(catalog service.CatalogService, grading service.GradingService, results service.ResultService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		catalog:   catalog,
		grading:   grading,
		results:   results,
		validator: validator,
	}
}

// ListQuizzes godoc
// @Summary List quizzes
// @Description Returns active quizzes, newest first
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizSummaryResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	quizzes, err := h.catalog.ListQuizzes(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(quizzes)
}

// GetQuiz godoc
// @Summary Get a quiz to take
// @Description Returns the quiz with its questions and answer options in order. Correctness is not included.
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizContentResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quizID, err := h.validator.ValidateID("quiz_id", c.Params("id"))
	if err != nil {
		return err
	}
	quiz, err := h.catalog.GetQuizContent(c.UserContext(), quizID)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// SubmitQuiz godoc
// @Summary Submit answers for grading
// @Description Grades a submission mapping question ids to selected answer ids and records the attempt.
// @Description Malformed entries inside the mapping are ignored; unanswered questions count as incorrect.
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param submission body map[string][]int true "Question id to selected answer ids"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/{id}/submit [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	quizID, err := h.validator.ValidateID("quiz_id", c.Params("id"))
	if err != nil {
		return err
	}

	var raw map[string]interface{}
	if err := c.App().Config().JSONDecoder(c.Body(), &raw); err != nil || raw == nil {
		return domain.NewValidationError("submission must be a JSON object mapping question ids to answer ids")
	}

	resp, err := h.grading.Submit(c.UserContext(), principal.UserID, quizID, domain.NewSubmission(raw))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetLatestResult godoc
// @Summary Get the latest result
// @Description Returns the caller's most recent attempt on the quiz with question and answer texts.
// @Description A warning is set when the stored details could not be read.
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.ResultDetailResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id}/result [get]
func (h *QuizHandler) GetLatestResult(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	quizID, err := h.validator.ValidateID("quiz_id", c.Params("id"))
	if err != nil {
		return err
	}
	result, err := h.results.LatestResult(c.UserContext(), principal.UserID, quizID)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// ListResults godoc
// @Summary List attempts
// @Description Returns every attempt of the caller on the quiz, most recent first
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {array} dto.ResultSummaryResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id}/results [get]
func (h *QuizHandler) ListResults(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	quizID, err := h.validator.ValidateID("quiz_id", c.Params("id"))
	if err != nil {
		return err
	}
	results, err := h.results.ListResults(c.UserContext(), principal.UserID, quizID)
	if err != nil {
		return err
	}
	return c.JSON(results)
}

// GetResult godoc
// @Summary Get one attempt
// @Description Returns a specific attempt of the caller with question and answer texts
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param resultID path string true "Result ID (ULID)"
// @Success 200 {object} dto.ResultDetailResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /results/{resultID} [get]
func (h *QuizHandler) GetResult(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	resultID := c.Params("resultID")
	if err := h.validator.ValidateResultID(resultID); err != nil {
		return err
	}
	result, err := h.results.ResultByID(c.UserContext(), principal.UserID, resultID)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func requirePrincipal(c *fiber.Ctx) (domain.Principal, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return domain.Principal{}, domain.NewUnauthorizedError("authentication required")
	}
	return principal, nil
}

