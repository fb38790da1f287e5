package usecases

import (
	"context"
	"smokeguard-server/internal/control_plane/domain"
)

//go:generate mockgen -source=port.go -destination=../../../test/unit/doubles/control_plane/usecases/port_mock.go -package=usecases

// ImageUploader turns a base64 image into a hosted URL. A nil result means
// there was nothing to upload or the upload failed.
type ImageUploader interface {
	Upload(ctx context.Context, image string) *string
}

// ControlPublisher delivers a command to a device. Failures are logged by
// the implementation.
type ControlPublisher interface {
	Dispatch(context.Context, domain.ControlCommand)
}

type ConnectivityProbe interface {
	IsConnected() bool
}
