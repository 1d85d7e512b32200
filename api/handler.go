package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error

	ListProcesses(ctx *fiber.Ctx) error
	AddProcess(ctx *fiber.Ctx) error
	RemoveProcess(ctx *fiber.Ctx) error
}

// SchedulerHandlerImpl serves simulations over either the jobs posted with the
// request or, when none are posted, the processes held in its registry.
type SchedulerHandlerImpl struct {
	config   *config.SchedulerConfig
	registry *core.Registry
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, registry *core.Registry) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, registry: registry}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelFeedbackQueue)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	processes, opts, err := s.parseRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	results, err := schedulers.RunAll(schedulers.Algorithms, processes, opts)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]responses.ScheduleResponse, 0, len(results))
	for _, result := range results {
		response = append(response, responses.NewScheduleResponse(result))
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ListProcesses(ctx *fiber.Ctx) error {
	return ctx.JSON(responses.ProcessListResponse{Processes: s.registry.List()})
}

func (s *SchedulerHandlerImpl) AddProcess(ctx *fiber.Ctx) error {
	var request requests.AddProcessRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	process, err := s.registry.Add(request.ProcessId, request.ArrivalTime, request.BurstTime, request.Priority)
	if err != nil {
		return writeError(ctx, err)
	}
	logrus.WithField("pid", process.ID).Info("process registered")
	return ctx.Status(fiber.StatusCreated).JSON(process)
}

func (s *SchedulerHandlerImpl) RemoveProcess(ctx *fiber.Ctx) error {
	index, err := strconv.Atoi(ctx.Params("index"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "index must be an integer"})
	}
	if err := s.registry.Remove(index); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	processes, opts, err := s.parseRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	result, err := schedulers.Run(algorithm, processes, opts)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(responses.NewScheduleResponse(result))
}

// parseRequest resolves the process snapshot and algorithm options. A zero or
// omitted quantum falls back to the configured one; negative values are passed
// through so the scheduler rejects them.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) ([]core.Process, schedulers.Options, error) {
	var request requests.ScheduleRequests
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&request); err != nil {
			return nil, schedulers.Options{}, errInvalidFormat
		}
	}

	opts := schedulers.Options{
		Quantum:     request.Quantum,
		LevelQuanta: request.LevelsTimeQuantum,
	}
	if opts.Quantum == 0 {
		opts.Quantum = s.config.RoundRobinTimeQuantum
	}
	if len(opts.LevelQuanta) == 0 {
		opts.LevelQuanta = s.config.MultilevelFeedbackQueueLevelsTimeQuantum
	}

	if len(request.Jobs) == 0 {
		return s.registry.List(), opts, nil
	}
	processes, err := request.Processes()
	return processes, opts, err
}

var errInvalidFormat = errors.New("invalid request format")

func writeError(ctx *fiber.Ctx, err error) error {
	var (
		validationErr    *core.ValidationError
		configurationErr *core.ConfigurationError
		emptyErr         *core.EmptyInputError
	)
	kind := ""
	switch {
	case errors.Is(err, errInvalidFormat):
		kind = "format"
	case errors.As(err, &validationErr):
		kind = "validation"
	case errors.As(err, &configurationErr):
		kind = "configuration"
	case errors.As(err, &emptyErr):
		kind = "empty_input"
	default:
		logrus.WithError(err).Error("can not process request")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "kind": kind})
}
