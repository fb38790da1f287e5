package wire

import (
	"smokeguard-server/internal/control_plane/usecases"
	"smokeguard-server/internal/data_plane/workers"
	"smokeguard-server/internal/infra/async"
	"smokeguard-server/internal/infra/httpserver"
	"smokeguard-server/internal/infra/mqtt"
)

// Application holds the long running parts of the server. Workers share
// the store, the sensor state cache and the broker session.
type Application struct {
	HTTPServer *httpserver.StandardServer
	Supervisor *mqtt.Supervisor
	Workers    []async.Worker
}

func newApplication(
	server *httpserver.StandardServer,
	supervisor *mqtt.Supervisor,
	ingestion *workers.SensorIngestionWorker,
	cacheSync *usecases.CacheSyncWorker,
) *Application {
	return &Application{
		HTTPServer: server,
		Supervisor: supervisor,
		Workers:    []async.Worker{supervisor, ingestion, cacheSync},
	}
}
