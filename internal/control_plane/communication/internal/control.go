package internal

import "smokeguard-server/internal/control_plane/domain"

// Control is the payload sent on a sensor's control topic.
type Control struct {
	SensorID string  `json:"sensor_id"`
	Room     *string `json:"room"`
	IsActive bool    `json:"is_active"`
}

func FromControlCommand(cmd domain.ControlCommand) Control {
	control := Control{
		SensorID: cmd.SensorID.String(),
		IsActive: cmd.IsActive,
	}

	if cmd.Room != nil {
		room := cmd.Room.String()
		control.Room = &room
	}

	return control
}
