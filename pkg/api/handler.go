package api

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sherine-k/schedsim/pkg/config"
	"github.com/sherine-k/schedsim/pkg/log"
	"github.com/sherine-k/schedsim/pkg/simulation"
)

// Handler serves the simulation engine over HTTP.
type Handler struct {
	defaultQuantum int
	maxHorizon     int
	logger         *slog.Logger
}

// NewHandler creates a handler. defaultQuantum is used for round robin when a
// request omits it; workloads that could run past maxHorizon are rejected.
func NewHandler(defaultQuantum, maxHorizon int, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = log.Discard()
	}
	return &Handler{defaultQuantum: defaultQuantum, maxHorizon: maxHorizon, logger: logger}
}

// NewApp wires the handler routes under /api/v1.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "schedsim",
		DisableStartupMessage: true,
	})
	app.Use(h.logRequest)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Get("/algorithms", h.Algorithms)
		v1.Post("/schedule/:algorithm", h.Schedule)
		v1.Post("/compare", h.Compare)
	}

	return app
}

// Serve listens on addr until ctx is cancelled.
func Serve(ctx context.Context, app *fiber.App, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return app.Shutdown()
	}
}

func (h *Handler) logRequest(ctx *fiber.Ctx) error {
	err := ctx.Next()
	h.logger.Info("request",
		log.StringAttr("method", ctx.Method()),
		log.StringAttr("path", ctx.Path()),
		log.IntAttr("status", ctx.Response().StatusCode()),
	)
	return err
}

// Algorithms lists the supported policies.
func (h *Handler) Algorithms(ctx *fiber.Ctx) error {
	names := make([]fiber.Map, 0, len(config.Algorithms))
	for _, alg := range config.Algorithms {
		names = append(names, fiber.Map{
			"name":       alg,
			"title":      alg.Title(),
			"preemptive": alg.Preemptive(),
		})
	}
	return ctx.JSON(fiber.Map{"algorithms": names})
}

// Schedule runs the policy named in the path over the request processes.
func (h *Handler) Schedule(ctx *fiber.Ctx) error {
	alg, err := config.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	var request ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	processes, err := h.processes(request)
	if err != nil {
		return h.fail(ctx, err)
	}

	result, err := simulation.Run(alg, h.quantum(request), processes)
	if err != nil {
		return h.fail(ctx, err)
	}

	return ctx.JSON(newScheduleResponse(result))
}

// Compare runs every policy over the request processes.
func (h *Handler) Compare(ctx *fiber.Ctx) error {
	var request ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	processes, err := h.processes(request)
	if err != nil {
		return h.fail(ctx, err)
	}

	results, err := simulation.Compare(h.quantum(request), processes)
	if err != nil {
		return h.fail(ctx, err)
	}

	response := CompareResponse{Results: make([]ScheduleResponse, 0, len(results))}
	for _, result := range results {
		response.Results = append(response.Results, newScheduleResponse(result))
	}
	return ctx.JSON(response)
}

func (h *Handler) processes(request ScheduleRequest) ([]simulation.Process, error) {
	processes := simulation.NewProcesses(request.Processes)
	if err := simulation.CheckHorizon(processes, h.maxHorizon); err != nil {
		return nil, err
	}
	return processes, nil
}

func (h *Handler) quantum(request ScheduleRequest) int {
	if request.Quantum == 0 {
		return h.defaultQuantum
	}
	return request.Quantum
}

func (h *Handler) fail(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	if errors.Is(err, simulation.ErrInvariantViolation) {
		status = fiber.StatusInternalServerError
		h.logger.Error("simulation failed", log.ErrAttr(err))
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
