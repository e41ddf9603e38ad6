// Package job runs background work on Asynq.
//
// Asynq is a Redis-backed queue: the API enqueues tasks through
// JobService.Client and the worker server started by JobService.Start
// processes them.
package job

import (
	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue) and server (workers).
type JobService struct {
	Client *asynq.Client

	server   *asynq.Server
	notifier ContactNotifier
	logger   *zerolog.Logger
}

// NewJobService creates the client and worker server for the Redis in cfg.
// Workers are weighted critical:default:low = 6:3:1.
func NewJobService(logger *zerolog.Logger, cfg *config.Config, notifier ContactNotifier) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger:   newAsynqLogger(logger),
			LogLevel: asynq.WarnLevel,
		},
	)

	return &JobService{
		Client:   client,
		server:   server,
		notifier: notifier,
		logger:   logger,
	}
}

// Mux routes task types to their handlers.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskContactNotify, j.handleContactNotifyTask)
	return mux
}

// Start launches the workers in the background and returns.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(j.Mux()); err != nil {
		return err
	}

	return nil
}

// Stop waits for running tasks and closes the Redis connections.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
