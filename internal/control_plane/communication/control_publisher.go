package communication

import (
	"context"
	"log/slog"
	"smokeguard-server/internal/control_plane/communication/internal"
	"smokeguard-server/internal/control_plane/domain"
	"smokeguard-server/internal/control_plane/usecases"
	"smokeguard-server/internal/infra/mqtt"
	"strings"
)

const DefaultControlTopicPrefix = "smokeguard/sensors"

type ControlTopicPrefix string

func NewControlPublisher(client mqtt.Client, prefix ControlTopicPrefix) *ControlPublisher {
	if prefix == "" {
		prefix = DefaultControlTopicPrefix
	}

	return &ControlPublisher{
		client: client,
		prefix: strings.TrimSuffix(string(prefix), "/"),
	}
}

var _ usecases.ControlPublisher = (*ControlPublisher)(nil)

// ControlPublisher sends fire-and-forget commands to a sensor's control
// topic.
type ControlPublisher struct {
	client mqtt.Client
	prefix string
}

func (p *ControlPublisher) Topic(id domain.ID) string {
	return p.prefix + "/" + id.String() + "/control"
}

func (p *ControlPublisher) Dispatch(_ context.Context, cmd domain.ControlCommand) {
	topic := p.Topic(cmd.SensorID)
	err := p.client.Publish(topic, internal.FromControlCommand(cmd))
	if err != nil {
		slog.Error("publishing control command",
			slog.String("topic", topic),
			slog.String("sensor_id", cmd.SensorID.String()),
			slog.String("error", err.Error()))
		return
	}

	slog.Info("control command sent",
		slog.String("topic", topic),
		slog.Bool("is_active", cmd.IsActive))
}
