package commander

import "context"

//go:generate mockery --name RabbitMQPublisher --filename rabbitmqpublisher.go

// RabbitMQPublisher publishes messages to a RabbitMQ routing key.
type RabbitMQPublisher interface {
	Publish(context.Context, string, []byte) error
}

// RabbitMQSender delivers encoded run commands to the agent's runs
// routing key. It satisfies Sender, so RunCommander can publish runs
// over RabbitMQ.
type RabbitMQSender struct {
	publisher      RabbitMQPublisher
	runsRoutingKey string
}

// NewRabbitMQSender returns new RabbitMQSender publishing run commands to provided routing key.
func NewRabbitMQSender(publisher RabbitMQPublisher, runsRoutingKey string) RabbitMQSender {
	return RabbitMQSender{
		publisher:      publisher,
		runsRoutingKey: runsRoutingKey,
	}
}

// Send publishes an encoded run command to the runs routing key.
func (s RabbitMQSender) Send(ctx context.Context, msg []byte) error {
	return s.publisher.Publish(ctx, s.runsRoutingKey, msg)
}
