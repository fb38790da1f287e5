package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	_envPrefix  = "smokeguard_server"
	_configName = "server"

	DatabaseDriverSQLite   = "sqlite"
	DatabaseDriverPostgres = "postgres"

	CacheBackendMemory    = "memory"
	CacheBackendRistretto = "ristretto"
	CacheBackendRedis     = "redis"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

var configPath = pflag.String("config-path", "", "directory or file holding the server configuration")

// LoadConfig reads the configuration once per process. The file is
// optional: every key has a default and can be set from the environment,
// e.g. SMOKEGUARD_SERVER_MQTT_CLIENT_BROKER.
func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		if !pflag.Parsed() {
			pflag.Parse()
		}

		configInstance = load(viper.GetViper(), *configPath)
	})

	return configInstance
}

func load(v *viper.Viper, path string) AppConfig {
	v.SetEnvPrefix(_envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(_configName)
		if path != "" {
			v.AddConfigPath(path)
		}
		v.AddConfigPath("config")
		v.AddConfigPath("/config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	return AppConfig{
		General: GeneralConfig{
			LogLevel: v.GetString("general.log_level"),
		},
		HTTP: HTTPConfig{
			Port:           v.GetInt("http.port"),
			AllowedOrigins: v.GetStringSlice("http.allowed_origins"),
		},
		MQTTClient: MQTTClientConfig{
			Broker:    v.GetString("mqtt_client.broker"),
			ClientID:  v.GetString("mqtt_client.client_id"),
			Username:  v.GetString("mqtt_client.username"),
			Password:  v.GetString("mqtt_client.password"),
			KeepAlive: v.GetDuration("mqtt_client.keep_alive"),
		},
		MQTT: MQTTConfig{
			Topics: MQTTTopicsConfig{
				Discovery: v.GetString("mqtt.topics.discovery"),
				RoomData:  v.GetString("mqtt.topics.room_data"),
				History:   v.GetString("mqtt.topics.history"),
				Alerts:    v.GetString("mqtt.topics.alerts"),
				Status:    v.GetString("mqtt.topics.status"),
			},
			ControlTopicPrefix: v.GetString("mqtt.control_topic_prefix"),
			Reconnect: ReconnectConfig{
				Policy:      v.GetString("mqtt.reconnect.policy"),
				Interval:    v.GetDuration("mqtt.reconnect.interval"),
				MaxInterval: v.GetDuration("mqtt.reconnect.max_interval"),
			},
		},
		Database: DatabaseConfig{
			Driver:  v.GetString("database.driver"),
			DSN:     v.GetString("database.dsn"),
			Path:    v.GetString("database.path"),
			Timeout: v.GetDuration("database.timeout"),
		},
		Cache: CacheConfig{
			Backend:     v.GetString("cache.backend"),
			KeyPrefix:   v.GetString("cache.key_prefix"),
			TTL:         v.GetDuration("cache.ttl"),
			MaxCost:     v.GetInt64("cache.max_cost"),
			NumCounters: v.GetInt64("cache.num_counters"),
			BufferItems: v.GetInt64("cache.buffer_items"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			PoolSize: v.GetInt("redis.pool_size"),
		},
		ImgBB: ImgBBConfig{
			APIKey:   v.GetString("imgbb.api_key"),
			Endpoint: v.GetString("imgbb.endpoint"),
			Timeout:  v.GetDuration("imgbb.timeout"),
		},
		CacheSync: CacheSyncConfig{
			Schedule: v.GetString("cache_sync.schedule"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")

	v.SetDefault("http.port", 5000)
	v.SetDefault("http.allowed_origins", []string{"*"})

	v.SetDefault("mqtt_client.broker", "tcp://localhost:1883")
	v.SetDefault("mqtt_client.keep_alive", 60*time.Second)

	v.SetDefault("mqtt.topics.discovery", "smokeguard/sensor/discovery")
	v.SetDefault("mqtt.topics.room_data", "smokeguard/room/data")
	v.SetDefault("mqtt.topics.history", "smokeguard/room/history")
	v.SetDefault("mqtt.topics.alerts", "smokeguard/room/alerts")
	v.SetDefault("mqtt.topics.status", "smokeguard/sensor/status")
	v.SetDefault("mqtt.control_topic_prefix", "smokeguard/sensors")
	v.SetDefault("mqtt.reconnect.policy", "constant")
	v.SetDefault("mqtt.reconnect.interval", 5*time.Second)
	v.SetDefault("mqtt.reconnect.max_interval", time.Minute)

	v.SetDefault("database.driver", DatabaseDriverSQLite)
	v.SetDefault("database.path", "smokeguard.db")
	v.SetDefault("database.timeout", 5*time.Second)

	v.SetDefault("cache.backend", CacheBackendMemory)
	v.SetDefault("cache.key_prefix", "sensor_state:")
	v.SetDefault("cache.ttl", 24*time.Hour)
	v.SetDefault("cache.max_cost", 100_000)
	v.SetDefault("cache.num_counters", 1_000_000)
	v.SetDefault("cache.buffer_items", 64)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("imgbb.endpoint", "https://api.imgbb.com/1/upload")
	v.SetDefault("imgbb.timeout", 15*time.Second)

	v.SetDefault("cache_sync.schedule", "@every 10m")
}

type AppConfig struct {
	General    GeneralConfig
	HTTP       HTTPConfig
	MQTTClient MQTTClientConfig
	MQTT       MQTTConfig
	Database   DatabaseConfig
	Cache      CacheConfig
	Redis      RedisConfig
	ImgBB      ImgBBConfig
	CacheSync  CacheSyncConfig
}

type GeneralConfig struct {
	LogLevel string
}

type HTTPConfig struct {
	Port           int
	AllowedOrigins []string
}

type MQTTClientConfig struct {
	Broker    string
	ClientID  string
	Username  string
	Password  string
	KeepAlive time.Duration
}

type MQTTConfig struct {
	Topics             MQTTTopicsConfig
	ControlTopicPrefix string
	Reconnect          ReconnectConfig
}

type MQTTTopicsConfig struct {
	Discovery string
	RoomData  string
	History   string
	Alerts    string
	Status    string
}

type ReconnectConfig struct {
	// Policy is either "constant" or "exponential"
	Policy      string
	Interval    time.Duration
	MaxInterval time.Duration
}

type DatabaseConfig struct {
	// Driver selects sqlite (Path) or postgres (DSN)
	Driver  string
	DSN     string
	Path    string
	Timeout time.Duration
}

type CacheConfig struct {
	Backend     string
	KeyPrefix   string
	TTL         time.Duration
	MaxCost     int64
	NumCounters int64
	BufferItems int64
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

type ImgBBConfig struct {
	APIKey   string
	Endpoint string
	Timeout  time.Duration
}

type CacheSyncConfig struct {
	Schedule string
}
