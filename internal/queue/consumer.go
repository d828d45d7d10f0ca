package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/24svcs/svcs-api/config"
	"github.com/24svcs/svcs-api/internal/cache"
	"github.com/24svcs/svcs-api/internal/model"
	"github.com/24svcs/svcs-api/internal/repository"
	"github.com/24svcs/svcs-api/pkg/logger"
	"github.com/24svcs/svcs-api/pkg/snowflake"
	"github.com/24svcs/svcs-api/storage/mq"
)

// AlertConsumer 消费考勤事件并写入告警记录
type AlertConsumer struct {
	orgs      *repository.OrganizationRepo
	employees *repository.EmployeeRepo
	alerts    *repository.AlertRepo
}

func NewAlertConsumer(
	orgs *repository.OrganizationRepo,
	employees *repository.EmployeeRepo,
	alerts *repository.AlertRepo,
) *AlertConsumer {
	return &AlertConsumer{orgs: orgs, employees: employees, alerts: alerts}
}

// Start 阻塞消费告警队列
func (c *AlertConsumer) Start(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg model.AttendanceEventMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal attendance event: %w", err)
		}

		processing, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
			// 检查失败时继续处理，告警写入有数据库层幂等兜底
		} else if !processing {
			logger.Logger.Info("Message already processed, skipping",
				zap.String("message_id", msg.MessageID),
			)
			return nil
		}

		if err := c.process(ctx, msg); err != nil {
			if unmarkErr := cache.UnmarkMessageProcessing(ctx, msg.MessageID); unmarkErr != nil {
				logger.Logger.Warn("Failed to unmark message",
					zap.String("message_id", msg.MessageID),
					zap.Error(unmarkErr),
				)
			}
			return err
		}

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message as processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}
		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         config.Cfg.AttendanceAlertQueue,
		ConsumerTag:   "attendance_alert_consumer",
		PrefetchCount: 10,
		Handler:       handler,
	})
}

func (c *AlertConsumer) process(ctx context.Context, msg model.AttendanceEventMessage) error {
	prefs, err := c.orgs.GetPreferences(ctx, msg.OrganizationID)
	if err != nil {
		return fmt.Errorf("failed to load organization preferences: %w", err)
	}

	alertOnLate := prefs == nil || prefs.AlertOnLate
	alertOnHalfDay := prefs == nil || prefs.AlertOnHalfDay

	emp, err := c.employees.GetByID(ctx, msg.OrganizationID, msg.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to load employee: %w", err)
	}

	name := fmt.Sprintf("employee %d", msg.EmployeeID)
	if emp != nil {
		name = emp.FullName()
	}

	if msg.EventType == model.AttendanceEventCheckIn &&
		msg.Status == model.AttendanceStatusLate && alertOnLate {
		message := fmt.Sprintf("%s checked in late on %s at %s", name, msg.Date, msg.TimeIn)
		if err := c.createAlert(ctx, msg, model.AlertKindLateArrival, message); err != nil {
			return err
		}
	}

	if msg.EventType == model.AttendanceEventCheckOut && alertOnHalfDay && hasHalfDayWarning(msg.Warnings) {
		message := fmt.Sprintf("%s worked less than half of the scheduled shift on %s (%s - %s)",
			name, msg.Date, msg.TimeIn, msg.TimeOut)
		if err := c.createAlert(ctx, msg, model.AlertKindHalfDay, message); err != nil {
			return err
		}
	}

	return nil
}

// createAlert 写入告警，同一条考勤同一类告警只写一次
func (c *AlertConsumer) createAlert(ctx context.Context, msg model.AttendanceEventMessage, kind model.AlertKind, message string) error {
	exists, err := c.alerts.ExistsForAttendance(ctx, msg.AttendanceID, kind)
	if err != nil {
		return fmt.Errorf("failed to check existing alert: %w", err)
	}
	if exists {
		return nil
	}

	id, err := snowflake.NextID()
	if err != nil {
		return err
	}

	alert := &model.NotificationAlert{
		BaseModel:      model.BaseModel{ID: id},
		OrganizationID: msg.OrganizationID,
		EmployeeID:     msg.EmployeeID,
		AttendanceID:   msg.AttendanceID,
		Kind:           kind,
		Message:        message,
	}
	if err := c.alerts.Create(ctx, alert); err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	logger.Logger.Info("Attendance alert created",
		zap.String("kind", string(kind)),
		zap.Int64("attendance_id", msg.AttendanceID),
	)
	return nil
}

func hasHalfDayWarning(warnings []string) bool {
	for _, w := range warnings {
		if strings.Contains(w, "less than half") {
			return true
		}
	}
	return false
}
