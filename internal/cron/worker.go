package cron

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"facility-admin/internal/config"
	"facility-admin/internal/domain/account"
	"facility-admin/internal/logging"
)

const TypeAccountsExpire = "accounts:expire"

// expireSchedule fires once a day at midnight UTC.
const expireSchedule = "0 0 * * *"

// InitExpiryWorker starts the async worker and the scheduler that enqueues
// the daily account-expiry sweep. Both run in background goroutines.
func InitExpiryWorker(cfg config.Config, accounts *account.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAccountsExpire, handleExpireTask(accounts))

	go monitorRedisConnection(cfg)

	go func() {
		log := logging.L()
		log.Info("starting expiry worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Error("failed to start expiry worker",
					zap.Int("attempt", attempts),
					zap.Int("maxAttempts", maxAttempts),
					zap.Error(err))

				if attempts == maxAttempts {
					log.Fatal("expiry worker could not start, giving up")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runScheduler(redisOpts)
}

// runScheduler registers the daily sweep task. asynq stores schedules in
// Redis, so multiple instances dedupe on the task ID within the window.
func runScheduler(redisOpts asynq.RedisClientOpt) {
	log := logging.L()

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{
		Location: time.UTC,
	})

	task := asynq.NewTask(TypeAccountsExpire, nil)
	if _, err := scheduler.Register(expireSchedule, task, asynq.TaskID(TypeAccountsExpire)); err != nil {
		log.Error("failed to register expiry schedule", zap.Error(err))
		return
	}

	if err := scheduler.Run(); err != nil {
		log.Error("expiry scheduler stopped", zap.Error(err))
	}
}

func handleExpireTask(accounts *account.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		log := logging.L()
		log.Info("running account expiry sweep")

		marked, disabled, err := accounts.SweepExpired(ctx)
		if err != nil {
			log.Error("account expiry sweep failed", zap.Error(err))
			return err
		}

		log.Info("account expiry sweep finished",
			zap.Int("marked", marked),
			zap.Int("disabled", disabled))
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection(cfg config.Config) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			logging.L().Warn("redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
