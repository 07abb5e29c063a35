package broker

import (
	"time"

	"notelist-app/notelist/config"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// EventTypeHeader carries the event type so subscribers can filter without
// decoding the payload.
const EventTypeHeader = "Event-Type"

type Producer interface {
	PublishMessage(subject string, eventType string, data []byte) error
	Close()
}

type NatsProducer struct {
	conn *nats.Conn
}

func InitProducer(cfg config.Config) (*NatsProducer, error) {
	conn, err := nats.Connect(cfg.NATSURL,
		nats.Name("notelist-api"),
		nats.MaxReconnects(10),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				zap.L().Warn("nats disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			zap.L().Info("nats reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, err
	}

	zap.L().Info("nats producer initialized", zap.String("url", conn.ConnectedUrl()))
	return &NatsProducer{conn: conn}, nil
}

func (p *NatsProducer) PublishMessage(subject string, eventType string, data []byte) error {
	msg := nats.NewMsg(subject)
	msg.Header.Set(EventTypeHeader, eventType)
	msg.Data = data

	if err := p.conn.PublishMsg(msg); err != nil {
		return err
	}
	zap.L().Debug("published message", zap.String("subject", subject), zap.String("event", eventType))
	return nil
}

func (p *NatsProducer) Close() {
	if p.conn == nil {
		return
	}
	if err := p.conn.Drain(); err != nil {
		zap.L().Warn("failed to drain nats connection", zap.Error(err))
		p.conn.Close()
	}
}
