package emergency

import (
	"context"
	"fmt"

	"porter-saathi/pkg/fcm"
	"porter-saathi/pkg/log"
)

// RoutingKey is the AMQP routing key emergency alerts are published with.
const RoutingKey = "emergency.alert"

// LogNotifier records alerts in the service log.
type LogNotifier struct {
	l log.Logger
}

func NewLogNotifier(l log.Logger) *LogNotifier {
	return &LogNotifier{l: l}
}

func (n *LogNotifier) Notify(ctx context.Context, alert Alert) error {
	n.l.Warnf(ctx, "EMERGENCY %s: driver=%s (%s) contact=%s phone=%s location=%q type=%s",
		alert.ID, alert.DriverID, alert.DriverName, alert.ContactName, alert.ContactPhone, alert.Location, alert.Type)
	return nil
}

// Publisher is satisfied by *rabbitmq.Publisher.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, v any) error
}

// QueueNotifier publishes alerts to a message broker.
type QueueNotifier struct {
	pub Publisher
}

func NewQueueNotifier(pub Publisher) *QueueNotifier {
	return &QueueNotifier{pub: pub}
}

func (n *QueueNotifier) Notify(ctx context.Context, alert Alert) error {
	return n.pub.Publish(ctx, RoutingKey, alert)
}

// PushSender is satisfied by *fcm.Client.
type PushSender interface {
	Send(ctx context.Context, msg fcm.Message) (string, error)
}

// PushNotifier sends alerts as push notifications to a topic.
type PushNotifier struct {
	sender PushSender
	topic  string
}

func NewPushNotifier(sender PushSender, topic string) *PushNotifier {
	return &PushNotifier{sender: sender, topic: topic}
}

func (n *PushNotifier) Notify(ctx context.Context, alert Alert) error {
	body := fmt.Sprintf("%s ko madad chahiye.", alert.DriverName)
	if alert.Location != "" {
		body = fmt.Sprintf("%s ko madad chahiye. Location: %s", alert.DriverName, alert.Location)
	}

	_, err := n.sender.Send(ctx, fcm.Message{
		Topic: n.topic,
		Title: "Porter Saathi Emergency",
		Body:  body,
		Data: map[string]string{
			"alert_id":      alert.ID,
			"driver_id":     alert.DriverID,
			"contact_name":  alert.ContactName,
			"contact_phone": alert.ContactPhone,
			"type":          alert.Type,
		},
	})
	return err
}
