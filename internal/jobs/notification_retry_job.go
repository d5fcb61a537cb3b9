package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// notificationRetrier redispatches notifications whose sends failed.
type notificationRetrier interface {
	RetryParked(ctx context.Context) int
}

// NotificationRetryJob periodically re-enqueues parked notifications.
// Runs every minute; a failed send therefore gets its next attempt within
// a minute rather than immediately hammering the mail server.
type NotificationRetryJob struct {
	retrier  notificationRetrier
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewNotificationRetryJob creates the retry job for the given dispatcher.
func NewNotificationRetryJob(retrier notificationRetrier, logger *slog.Logger) *NotificationRetryJob {
	return &NotificationRetryJob{
		retrier:  retrier,
		cron:     cron.New(),
		schedule: "* * * * *",
		logger:   logger.With("component", "notification_retry_job"),
	}
}

// Start begins the retry job to run every minute.
func (j *NotificationRetryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.retryTick)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retry job started (running every minute)")
	return nil
}

// Stop stops the notification retry job and waits for an in-flight tick to
// finish, so a retry never races the dispatcher's own shutdown.
func (j *NotificationRetryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification retry job stopped")
}

func (j *NotificationRetryJob) retryTick() {
	ctx := context.Background()

	if retried := j.retrier.RetryParked(ctx); retried > 0 {
		j.logger.InfoContext(ctx, "Re-enqueued failed notifications", "count", retried)
	}
}
