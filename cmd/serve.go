package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
	"github.com/schedsim/schedsim/sim/workload"
)

var serverConfigPath string

// ScheduleRequest is the body of POST /api/v1/schedule/:algorithm and /api/v1/compare.
type ScheduleRequest struct {
	Quantum   int64                  `json:"quantum"`
	Trace     string                 `json:"trace"`
	Processes []workload.ProcessSpec `json:"processes"`
}

// scheduleHandler serves scheduling requests under one ServerConfig.
type scheduleHandler struct {
	config *ServerConfig
}

// NewServer builds the HTTP API.
func NewServer(config *ServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	h := &scheduleHandler{config: config}

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Get("/algorithms", h.Algorithms)
		v1.Post("/schedule/:algorithm", h.Schedule)
		v1.Post("/compare", h.Compare)
	}
	return app
}

// Algorithms lists the accepted algorithm names.
func (h *scheduleHandler) Algorithms(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"algorithms":      sim.AlgorithmNames(),
		"aliases":         sim.ValidAlgorithmNames(),
		"default_quantum": h.config.DefaultQuantum,
	})
}

// Schedule replays the posted process set under the algorithm in the path.
func (h *scheduleHandler) Schedule(ctx *fiber.Ctx) error {
	req, err := h.parse(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	if !trace.IsValidTraceLevel(req.Trace) {
		return respondError(ctx, fmt.Errorf("%w: unknown trace level %q", sim.ErrInvalidInput, req.Trace))
	}
	alg, err := sim.NewAlgorithm(ctx.Params("algorithm"), h.quantum(req))
	if err != nil {
		return respondError(ctx, err)
	}
	procs := (&workload.ProcessSetSpec{Processes: req.Processes}).ToProcesses()
	res, err := simulate(alg, procs, trace.TraceLevel(req.Trace))
	if err != nil {
		return respondError(ctx, err)
	}
	logrus.Debugf("served %s schedule for %d processes", alg.Name(), len(procs))
	return ctx.JSON(res)
}

// Compare replays the posted process set under every algorithm.
func (h *scheduleHandler) Compare(ctx *fiber.Ctx) error {
	req, err := h.parse(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	procs := (&workload.ProcessSetSpec{Processes: req.Processes}).ToProcesses()
	metrics, err := compareAlgorithms(procs, h.quantum(req))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"metrics": metrics})
}

func (h *scheduleHandler) parse(ctx *fiber.Ctx) (*ScheduleRequest, error) {
	req := new(ScheduleRequest)
	if err := ctx.BodyParser(req); err != nil {
		return nil, fmt.Errorf("%w: invalid request format: %v", sim.ErrInvalidInput, err)
	}
	if len(req.Processes) == 0 {
		return nil, fmt.Errorf("%w: processes must not be empty", sim.ErrInvalidInput)
	}
	if len(req.Processes) > h.config.MaxProcesses {
		return nil, fmt.Errorf("%w: %d processes exceeds the limit of %d",
			sim.ErrInvalidInput, len(req.Processes), h.config.MaxProcesses)
	}
	// A Round Robin run makes up to one dispatch per time unit of burst.
	var total int64
	for _, p := range req.Processes {
		if p.Burst <= 0 {
			continue // rejected by validation
		}
		if p.Burst > h.config.MaxTotalBurst-total {
			return nil, fmt.Errorf("%w: total burst_time exceeds the limit of %d",
				sim.ErrInvalidInput, h.config.MaxTotalBurst)
		}
		total += p.Burst
	}
	return req, nil
}

func (h *scheduleHandler) quantum(req *ScheduleRequest) int64 {
	if req.Quantum == 0 {
		return h.config.DefaultQuantum
	}
	return req.Quantum
}

// respondError maps validation failures to 400 and everything else to 500.
func respondError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, sim.ErrInvalidInput) {
		status = fiber.StatusBadRequest
	} else {
		logrus.Errorf("request failed: %v", err)
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduler over an HTTP JSON API",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := LoadServerConfig(serverConfigPath)
		if err != nil {
			logrus.Fatalf("unable to load server config: %v", err)
		}
		app := NewServer(config)

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-stop
			logrus.Info("Shutting down server")
			if err := app.Shutdown(); err != nil {
				logrus.Errorf("shutdown: %v", err)
			}
		}()

		logrus.Infof("Listening on :%d", config.Port)
		if err := app.Listen(fmt.Sprintf(":%d", config.Port)); err != nil {
			logrus.Fatalf("server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverConfigPath, "config", "", "Server config file (YAML); SCHEDSIM_* env vars override")
	rootCmd.AddCommand(serveCmd)
}
