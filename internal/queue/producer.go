package queue

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/24svcs/svcs-api/config"
	"github.com/24svcs/svcs-api/internal/model"
	"github.com/24svcs/svcs-api/pkg/logger"
	"github.com/24svcs/svcs-api/storage/mq"
)

// Producer 考勤事件生产者，事件类型直接作为 routing key
type Producer struct{}

func NewProducer() *Producer {
	return &Producer{}
}

// PublishAttendanceEvent 发布考勤事件
func (p *Producer) PublishAttendanceEvent(ctx context.Context, msg model.AttendanceEventMessage) error {
	if msg.MessageID == "" {
		msg.MessageID = uuid.NewString()
	}

	err := mq.PublishMessage(
		config.Cfg.AttendanceExchange,
		string(msg.EventType),
		msg,
	)
	if err != nil {
		logger.Logger.Error("Failed to publish attendance event",
			zap.String("message_id", msg.MessageID),
			zap.String("event_type", string(msg.EventType)),
			zap.Int64("attendance_id", msg.AttendanceID),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published attendance event",
		zap.String("message_id", msg.MessageID),
		zap.String("event_type", string(msg.EventType)),
		zap.Int64("employee_id", msg.EmployeeID),
		zap.String("date", msg.Date),
	)

	return nil
}
