package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"smokeguard-server/internal/control_plane/communication"
	"smokeguard-server/internal/data_plane/workers"
	"smokeguard-server/internal/infra/mqtt"
	"syscall"
	"time"

	"github.com/spf13/pflag"
)

// demo plays a single SmokeGuard device against a broker: it announces
// itself, reports readings for its room and logs the control commands the
// server sends back.
var (
	broker   = pflag.String("broker", "tcp://localhost:1883", "mqtt broker url")
	sensorID = pflag.String("sensor-id", "demo-sensor", "sensor id to announce")
	room     = pflag.String("room", "1", "room reported with the readings")
	interval = pflag.Duration("interval", 10*time.Second, "time between room data reports")
)

func main() {
	pflag.Parse()

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: slog.LevelDebug})),
	)
	slog.Info("application starting")

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	simpleClientOpts := mqtt.SimpleClientOpts{
		Broker:   *broker,
		ClientID: fmt.Sprintf("smokeguard-demo-%s", *sensorID),
	}
	mqttClient := mqtt.NewSimpleClient(simpleClientOpts)
	if _, err := mqttClient.Connect(); err != nil {
		slog.Error("connecting to broker", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var (
		topics              = workers.DefaultTopics()
		controlTopic        = fmt.Sprintf("%s/%s/control", communication.DefaultControlTopicPrefix, *sensorID)
		qos            byte = 0
		messageHandler      = func(_ mqtt.Client, msg mqtt.Message) {
			slog.Info("control received",
				slog.String("topic", msg.Topic()),
				slog.String("payload", string(msg.Payload())),
			)
		}
	)

	if err := mqttClient.Subscribe(controlTopic, qos, messageHandler); err != nil {
		slog.Error("subscribing to control topic", slog.String("error", err.Error()))
	}

	publish(mqttClient, topics.Discovery, map[string]any{"sensor_id": *sensorID})
	publish(mqttClient, topics.Status, map[string]any{"sensor_id": *sensorID, "status": "online"})

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			publish(mqttClient, topics.RoomData, map[string]any{
				"sensor_id":   *sensorID,
				"room":        *room,
				"temperature": 20 + rand.Float64()*5,
				"humidity":    40 + rand.Float64()*20,
				"pm25":        rand.Float64() * 15,
				"voc":         rand.Float64() * 200,
				"nox":         rand.Float64() * 5,
			})
		case <-signalChannel:
			publish(mqttClient, topics.Status, map[string]any{"sensor_id": *sensorID, "status": "offline"})
			mqttClient.Disconnect()
			slog.Info("good bye!!!")
			os.Exit(0)
		}
	}
}

func publish(client *mqtt.SimpleClient, topic string, payload map[string]any) {
	if err := client.Publish(topic, payload); err != nil {
		slog.Error("publishing", slog.String("topic", topic), slog.String("error", err.Error()))
		return
	}
	slog.Debug("published", slog.String("topic", topic))
}
