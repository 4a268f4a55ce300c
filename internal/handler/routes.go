package handler

import (
	"neet-quiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the quiz API on app.
func RegisterRoutes(app fiber.Router, h *QuizHandler, vm *middleware.ValidationMiddleware) {
	app.Get("/health", h.Health)
	app.Post("/generate_quiz", vm.ValidateGenerateQuiz(), h.GenerateQuiz)
	app.Post("/analyze_results", vm.ValidateAnalyzeResults(), h.AnalyzeResults)
}
