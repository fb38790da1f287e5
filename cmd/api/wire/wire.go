//go:build wireinject
// +build wireinject

package wire

import (
	"fmt"
	"smokeguard-server/cmd/config"
	"smokeguard-server/internal/control_plane/communication"
	"smokeguard-server/internal/control_plane/httpapi"
	"smokeguard-server/internal/control_plane/persistence"
	"smokeguard-server/internal/control_plane/usecases"
	"smokeguard-server/internal/data_plane/workers"
	"smokeguard-server/internal/infra/cache"
	"smokeguard-server/internal/infra/httpserver"
	"smokeguard-server/internal/infra/imagehost"
	"smokeguard-server/internal/infra/mqtt"
	"smokeguard-server/internal/infra/node"
	"smokeguard-server/internal/infra/sql"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/wire"
)

func InitializeApplication(cfg config.AppConfig) (*Application, error) {
	wire.Build(
		provideDatabase,
		PersistenceSet,
		provideSensorStateCache,
		usecases.NewRoomResolver,
		provideImgBBConfig,
		imagehost.NewImgBBClient,
		wire.Bind(new(usecases.ImageUploader), new(*imagehost.ImgBBClient)),
		MQTTSet,
		usecases.NewIngestionService,
		wire.Bind(new(usecases.IngestionService), new(*usecases.SimpleIngestionService)),
		provideTopics,
		workers.NewSensorIngestionWorker,
		provideReconnectConfig,
		mqtt.NewReconnectPolicy,
		provideSupervisor,
		wire.Bind(new(usecases.ConnectivityProbe), new(*mqtt.Supervisor)),
		usecases.NewSensorService,
		wire.Bind(new(usecases.SensorService), new(*usecases.SimpleSensorService)),
		usecases.NewRoomService,
		wire.Bind(new(usecases.RoomService), new(*usecases.SimpleRoomService)),
		httpapi.NewSensorController,
		httpapi.NewRoomController,
		provideServerConfig,
		provideHTTPServer,
		provideCacheSyncSchedule,
		usecases.NewCacheSyncWorker,
		newApplication,
	)
	return nil, nil
}

var PersistenceSet = wire.NewSet(
	persistence.NewSensorRepository,
	wire.Bind(new(usecases.SensorRepository), new(*persistence.SimpleSensorRepository)),
	persistence.NewRoomRepository,
	wire.Bind(new(usecases.RoomRepository), new(*persistence.SimpleRoomRepository)),
	persistence.NewHistoryRepository,
	wire.Bind(new(usecases.HistoryRepository), new(*persistence.SimpleHistoryRepository)),
	persistence.NewAlertRepository,
	wire.Bind(new(usecases.AlertRepository), new(*persistence.SimpleAlertRepository)),
)

var MQTTSet = wire.NewSet(
	provideSimpleClientOpts,
	mqtt.NewSimpleClient,
	wire.Bind(new(mqtt.Client), new(*mqtt.SimpleClient)),
	wire.Bind(new(mqtt.Session), new(*mqtt.SimpleClient)),
	provideControlTopicPrefix,
	communication.NewControlPublisher,
	wire.Bind(new(usecases.ControlPublisher), new(*communication.ControlPublisher)),
)

func provideDatabase(cfg config.AppConfig) (sql.ORM, error) {
	switch cfg.Database.Driver {
	case config.DatabaseDriverPostgres:
		return sql.NewPostgresORM(cfg.Database.DSN, cfg.Database.Timeout)
	case config.DatabaseDriverSQLite, "":
		return sql.NewSQLiteORM(cfg.Database.Path, cfg.Database.Timeout)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

func provideSensorStateCache(cfg config.AppConfig) (usecases.SensorStateCache, error) {
	var store cache.Cache
	switch cfg.Cache.Backend {
	case config.CacheBackendMemory, "":
		return persistence.NewSimpleSensorStateCache(), nil
	case config.CacheBackendRistretto:
		ristretto, err := cache.New(&cache.CacheConfig{
			MaxCost:     cfg.Cache.MaxCost,
			NumCounters: cfg.Cache.NumCounters,
			BufferItems: cfg.Cache.BufferItems,
		})
		if err != nil {
			return nil, err
		}
		store = ristretto
	case config.CacheBackendRedis:
		redisConfig := cache.DefaultRedisConfig()
		redisConfig.Addr = cfg.Redis.Addr
		redisConfig.Password = cfg.Redis.Password
		redisConfig.DB = cfg.Redis.DB
		if cfg.Redis.PoolSize > 0 {
			redisConfig.PoolSize = cfg.Redis.PoolSize
		}

		redis, err := cache.NewRedisCache(redisConfig)
		if err != nil {
			return nil, err
		}
		store = redis
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}

	return persistence.NewCachedSensorStateCache(&persistence.CachedSensorStateCacheConfig{
		Cache:      store,
		KeyPrefix:  cfg.Cache.KeyPrefix,
		DefaultTTL: cfg.Cache.TTL,
	})
}

func provideImgBBConfig(cfg config.AppConfig) imagehost.ImgBBConfig {
	return imagehost.ImgBBConfig{
		APIKey:   cfg.ImgBB.APIKey,
		Endpoint: cfg.ImgBB.Endpoint,
		Timeout:  cfg.ImgBB.Timeout,
	}
}

func provideSimpleClientOpts(cfg config.AppConfig) mqtt.SimpleClientOpts {
	clientID := cfg.MQTTClient.ClientID
	if clientID == "" {
		clientID = node.ClientID("smokeguard-server")
	}

	return mqtt.SimpleClientOpts{
		Broker:    cfg.MQTTClient.Broker,
		ClientID:  clientID,
		Username:  cfg.MQTTClient.Username,
		Password:  cfg.MQTTClient.Password, //pragma: allowlist secret
		KeepAlive: cfg.MQTTClient.KeepAlive,
	}
}

func provideControlTopicPrefix(cfg config.AppConfig) communication.ControlTopicPrefix {
	return communication.ControlTopicPrefix(cfg.MQTT.ControlTopicPrefix)
}

func provideTopics(cfg config.AppConfig) workers.Topics {
	topics := workers.DefaultTopics()
	if value := cfg.MQTT.Topics.Discovery; value != "" {
		topics.Discovery = value
	}
	if value := cfg.MQTT.Topics.RoomData; value != "" {
		topics.RoomData = value
	}
	if value := cfg.MQTT.Topics.History; value != "" {
		topics.History = value
	}
	if value := cfg.MQTT.Topics.Alerts; value != "" {
		topics.Alerts = value
	}
	if value := cfg.MQTT.Topics.Status; value != "" {
		topics.Status = value
	}

	return topics
}

func provideReconnectConfig(cfg config.AppConfig) mqtt.ReconnectConfig {
	return mqtt.ReconnectConfig{
		Policy:      cfg.MQTT.Reconnect.Policy,
		Interval:    cfg.MQTT.Reconnect.Interval,
		MaxInterval: cfg.MQTT.Reconnect.MaxInterval,
	}
}

func provideSupervisor(session mqtt.Session, policy backoff.BackOff, worker *workers.SensorIngestionWorker) *mqtt.Supervisor {
	return mqtt.NewSupervisor(session, policy, worker.Subscriptions())
}

func provideServerConfig(cfg config.AppConfig) httpserver.ServerConfig {
	return httpserver.ServerConfig{
		Port:           cfg.HTTP.Port,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	}
}

func provideHTTPServer(
	serverConfig httpserver.ServerConfig,
	sensors *httpapi.SensorController,
	rooms *httpapi.RoomController,
) *httpserver.StandardServer {
	return httpserver.NewServer(serverConfig, sensors, rooms)
}

func provideCacheSyncSchedule(cfg config.AppConfig) usecases.CacheSyncSchedule {
	return usecases.CacheSyncSchedule(cfg.CacheSync.Schedule)
}
