package handler

import (
	"quizmaster/internal/middleware"
	"quizmaster/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Routes groups what RegisterRoutes needs to mount the API.
type Routes struct {
	Quiz        *QuizHandler
	Admin       *AdminHandler
	Tokens      service.TokenService
	SubmitLimit fiber.Handler
	Logger      *zap.Logger
}

// RegisterRoutes mounts the /api tree on app. Every route requires a bearer
// token; /api/admin additionally requires the admin role.
func RegisterRoutes(app *fiber.App, r Routes) {
	api := app.Group("/api", middleware.Protected(r.Tokens, r.Logger))

	api.Get("/quizzes", r.Quiz.ListQuizzes)
	api.Get("/quizzes/:id", r.Quiz.GetQuiz)
	if r.SubmitLimit != nil {
		api.Post("/quizzes/:id/submit", r.SubmitLimit, r.Quiz.SubmitQuiz)
	} else {
		api.Post("/quizzes/:id/submit", r.Quiz.SubmitQuiz)
	}
	api.Get("/quizzes/:id/result", r.Quiz.GetLatestResult)
	api.Get("/quizzes/:id/results", r.Quiz.ListResults)
	api.Get("/results/:resultID", r.Quiz.GetResult)

	admin := api.Group("/admin", middleware.RequireAdmin())
	admin.Post("/quizzes", r.Admin.CreateQuiz)
	admin.Put("/quizzes/:id", r.Admin.UpdateQuiz)
	admin.Delete("/quizzes/:id", r.Admin.DeleteQuiz)
	admin.Post("/quizzes/:id/questions", r.Admin.AddQuestion)
	admin.Put("/quizzes/:id/questions/:questionID", r.Admin.ReplaceQuestion)
	admin.Put("/quizzes/:id/order", r.Admin.ReorderQuestions)
}
