package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"brightwater/models"
	"brightwater/services/notification"
	"brightwater/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeBookingReminder = "reminder:booking"

// reminderSendHour is the local hour at which pending-booking reminders fire.
const reminderSendHour = 9

type bookingReminderPayload struct {
	BookingID     string `json:"bookingId"`
	ClientName    string `json:"clientName"`
	ServiceType   string `json:"serviceType"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Location      string `json:"location"`
}

// ReminderScheduler enqueues pending-booking reminder tasks.
type ReminderScheduler struct {
	client *asynq.Client
	loc    *time.Location
}

func NewReminderScheduler(redisOpt asynq.RedisClientOpt, loc *time.Location) *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(redisOpt),
		loc:    loc,
	}
}

// ScheduleBookingReminder schedules a reminder for 09:00 local time the day
// before the booking's preferred date. A date already that close runs the
// task immediately.
func (s *ReminderScheduler) ScheduleBookingReminder(ctx context.Context, sub models.BookingSubmission) error {
	payload, err := json.Marshal(bookingReminderPayload{
		BookingID:     sub.ID,
		ClientName:    fmt.Sprintf("%s %s", sub.ClientFirstName, sub.ClientLastName),
		ServiceType:   sub.ServiceType,
		PreferredDate: sub.PreferredDate.Format("Monday, 2 January 2006"),
		PreferredTime: sub.PreferredTime,
		Location:      sub.Location,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeBookingReminder, payload)
	opts := []asynq.Option{asynq.Queue("default")}
	if runAt := reminderRunAt(sub.PreferredDate, s.loc); runAt.After(time.Now()) {
		opts = append(opts, asynq.ProcessAt(runAt))
	}

	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue booking reminder: %w", err)
	}
	return nil
}

// reminderRunAt returns 09:00 local time the day before the preferred date.
func reminderRunAt(preferredDate time.Time, loc *time.Location) time.Time {
	dayBefore := preferredDate.AddDate(0, 0, -1)
	return time.Date(dayBefore.Year(), dayBefore.Month(), dayBefore.Day(),
		reminderSendHour, 0, 0, 0, loc)
}

// InitReminderWorker runs the async worker in background. Reminder emails go
// to the business address only.
func InitReminderWorker(sender notification.Sender, businessEmail string, redisOpts asynq.RedisClientOpt) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingReminder, handleBookingReminder(sender, businessEmail))

	go func() {
		logger.Info("ReminderWorker: starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("ReminderWorker: failed to start worker",
				zap.Int("attempt", attempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Warn("ReminderWorker: giving up, booking reminders disabled")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

func handleBookingReminder(sender notification.Sender, businessEmail string) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p bookingReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("ReminderWorker: invalid payload", zap.Error(err))
			return err
		}

		err := sender.Send(ctx, notification.Message{
			To:       businessEmail,
			Subject:  fmt.Sprintf("Pending booking: %s, %s", p.ClientName, p.PreferredDate),
			Template: notification.TemplateBookingReminder,
			Data: map[string]any{
				"bookingId":     p.BookingID,
				"clientName":    p.ClientName,
				"serviceType":   p.ServiceType,
				"preferredDate": p.PreferredDate,
				"preferredTime": p.PreferredTime,
				"location":      p.Location,
			},
		})
		if err != nil {
			logger.Error("ReminderWorker: failed to send reminder",
				zap.String("bookingId", p.BookingID), zap.Error(err))
		}
		return err
	}
}
