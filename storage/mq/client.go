package mq

import (
	"context"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/24svcs/svcs-api/config"
)

var (
	conn     *amqp.Connection
	connOnce sync.Once
	connErr  error
)

func Init() error {
	connOnce.Do(func() {
		conn, connErr = amqp.Dial(config.Cfg.GetRabbitMQURL())
		if connErr != nil {
			return
		}

		connErr = declareTopology()
	})

	return connErr
}

// Connection 返回底层 RabbitMQ 连接
func Connection() *amqp.Connection {
	return conn
}

// declareTopology 声明考勤事件 exchange 和告警队列的绑定
func declareTopology() error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		config.Cfg.AttendanceExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(
		config.Cfg.AttendanceAlertQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return err
	}

	return ch.QueueBind(
		config.Cfg.AttendanceAlertQueue,
		"attendance.*",
		config.Cfg.AttendanceExchange,
		false,
		nil,
	)
}

func Close(ctx context.Context) error {
	if conn == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
