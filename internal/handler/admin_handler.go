package handler

import (
	"quizmaster/internal/domain"
	"quizmaster/internal/dto"
	"quizmaster/internal/service"
	"quizmaster/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles catalog authoring requests
type AdminHandler struct {
	catalog   service.CatalogService
	validator *validation.Validator
}

// NewAdminHandler creates a new AdminHandler instance
func NewAdminHandler(catalog service.CatalogService, validator *validation.Validator) *AdminHandler {
	return &AdminHandler{catalog: catalog, validator: validator}
}

func (h *AdminHandler) parse(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	return h.validator.ValidateStruct(req)
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz body dto.CreateQuizRequest true "Quiz"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /admin/quizzes [post]
func (h *AdminHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := h.parse(c, &req); err != nil {
		return err
	}
	id, err := h.catalog.CreateQuiz(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// UpdateQuiz godoc
// @Summary Update quiz details
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param quiz body dto.UpdateQuizRequest true "Quiz details"
// @Success 204
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/quizzes/{id} [put]
func (h *AdminHandler) UpdateQuiz(c *fiber.Ctx) error {
	quizID, err := h.validator.ValidateID("quiz_id", c.Params("id"))
	if err != nil {
		return err
	}
	var req dto.UpdateQuizRequest
	if err := h.parse(c, &req); err != nil {
		return err
	}
	if err := h.catalog.UpdateQuiz(c.UserContext(), quizID, req.Title, req.Description, *req.IsActive); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddQuestion godoc
// @Summary Append a question
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param question body dto.QuestionRequest true "Question"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/quizzes/{id}/questions [post]
func (h *AdminHandler) AddQuestion(c *fiber.Ctx) error {
	quizID, err := h.validator.ValidateID("quiz_id", c.Params("id"))
	if err != nil {
		return err
	}
	var req dto.QuestionRequest
	if err := h.parse(c, &req); err != nil {
		return err
	}
	question := req.ToDomain()
	id, err := h.catalog.AddQuestion(c.UserContext(), quizID, &question)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// ReplaceQuestion godoc
// @Summary Replace a question
// @Description Rewrites the question text and replaces all of its answers
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param questionID path int true "Question ID"
// @Param question body dto.QuestionRequest true "Question"
// @Success 204
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/quizzes/{id}/questions/{questionID} [put]
func (h *AdminHandler) ReplaceQuestion(c *fiber.Ctx) error {
	quizID, err := h.validator.ValidateID("quiz_id", c.Params("id"))
	if err != nil {
		return err
	}
	questionID, err := h.validator.ValidateID("question_id", c.Params("questionID"))
	if err != nil {
		return err
	}
	var req dto.QuestionRequest
	if err := h.parse(c, &req); err != nil {
		return err
	}
	question := req.ToDomain()
	if err := h.catalog.ReplaceQuestion(c.UserContext(), quizID, questionID, &question); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReorderQuestions godoc
// @Summary Reorder questions
// @Description Every question of the quiz must be listed once with orders forming 1..n
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param order body dto.ReorderQuestionsRequest true "New order"
// @Success 204
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/quizzes/{id}/order [put]
func (h *AdminHandler) ReorderQuestions(c *fiber.Ctx) error {
	quizID, err := h.validator.ValidateID("quiz_id", c.Params("id"))
	if err != nil {
		return err
	}
	var req dto.ReorderQuestionsRequest
	if err := h.parse(c, &req); err != nil {
		return err
	}
	orders, err := req.ToMap()
	if err != nil {
		return err
	}
	if err := h.catalog.ReorderQuestions(c.UserContext(), quizID, orders); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Removes the quiz with its questions, answers and recorded results
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/quizzes/{id} [delete]
func (h *AdminHandler) DeleteQuiz(c *fiber.Ctx) error {
	quizID, err := h.validator.ValidateID("quiz_id", c.Params("id"))
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteQuiz(c.UserContext(), quizID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
