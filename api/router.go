package api

import "github.com/gofiber/fiber/v2"

func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/mlfq", handler.MultilevelFeedbackQueue)
		v1.Post("/all", handler.AllAlgorithms)

		v1.Get("/processes", handler.ListProcesses)
		v1.Post("/processes", handler.AddProcess)
		v1.Delete("/processes/:index", handler.RemoveProcess)
	}

	return app
}
