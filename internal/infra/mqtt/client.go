package mqtt

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

const (
	_defaultQoS        = 0 // At most once
	_defaultRetained   = false
	_publishTimeout    = 5 * time.Second
	_subscribeTimeout  = 5 * time.Second
	_connectTimeout    = 5 * time.Second
	_disconnectQuiesce = 250
)

var (
	ErrNotConnected   = errors.New("mqtt client is not connected")
	ErrConnectTimeout = errors.New("timed out connecting to mqtt broker")
)

//go:generate mockgen -source=client.go -destination=../../../test/unit/doubles/infra/mqtt/client_mock.go -package=mqtt

type Client interface {
	Subscribe(topic string, qos byte, callback MessageHandler) error
	Publish(topic string, msg any) error

	Disconnect()
}

// Session is a broker connection that can be opened again after it is
// lost. Connect returns a channel that receives once, when the connection
// drops without a Disconnect call.
type Session interface {
	Connect() (<-chan error, error)
	Subscribe(topic string, qos byte, callback MessageHandler) error
	Disconnect()
}

type SimpleClientOpts struct {
	Broker    string
	ClientID  string
	Username  string
	Password  string
	KeepAlive time.Duration
}

func NewSimpleClient(opts SimpleClientOpts) *SimpleClient {
	simpleClient := &SimpleClient{}

	if opts.KeepAlive <= 0 {
		opts.KeepAlive = 60 * time.Second
	}

	onConnectHandler := func(_ paho.Client) {
		slog.Info("connected to MQTT broker", slog.String("broker", opts.Broker))
	}

	onConnectionLostHandler := func(_ paho.Client, err error) {
		slog.Error("connection lost to MQTT broker", slog.String("error", err.Error()))
		simpleClient.notifyLost(err)
	}

	pahoOpts := paho.NewClientOptions().
		AddBroker(opts.Broker).
		SetClientID(opts.ClientID).
		SetUsername(opts.Username).
		SetPassword(opts.Password).
		SetOnConnectHandler(onConnectHandler).
		SetConnectionLostHandler(onConnectionLostHandler).
		SetAutoReconnect(false).
		SetOrderMatters(true).
		SetKeepAlive(opts.KeepAlive).
		SetConnectTimeout(_connectTimeout)

	simpleClient.client = paho.NewClient(pahoOpts)
	return simpleClient
}

var (
	_ Client  = (*SimpleClient)(nil)
	_ Session = (*SimpleClient)(nil)
)

// SimpleClient wraps a paho client that never reconnects on its own.
type SimpleClient struct {
	client paho.Client
	mu     sync.Mutex
	lost   chan error
}

func (c *SimpleClient) Connect() (<-chan error, error) {
	lost := make(chan error, 1)
	c.mu.Lock()
	c.lost = lost
	c.mu.Unlock()

	token := c.client.Connect()
	if !token.WaitTimeout(_connectTimeout) {
		return nil, ErrConnectTimeout
	}
	if token.Error() != nil {
		return nil, fmt.Errorf("connecting to broker: %w", token.Error())
	}

	return lost, nil
}

func (c *SimpleClient) notifyLost(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lost == nil {
		return
	}

	select {
	case c.lost <- err:
	default:
	}
}

func (c *SimpleClient) Subscribe(topic string, qos byte, callback MessageHandler) error {
	pahoCallback := func(_ paho.Client, msg paho.Message) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("panic in MQTT message handler",
					slog.String("topic", msg.Topic()),
					slog.Any("panic", r))
			}
		}()
		callback(c, msg)
	}

	token := c.client.Subscribe(topic, qos, pahoCallback)
	if !token.WaitTimeout(_subscribeTimeout) {
		return fmt.Errorf("subscribing to topic %s: timed out", topic)
	}
	if token.Error() != nil {
		return fmt.Errorf("subscribing to topic %s: %w", topic, token.Error())
	}

	slog.Info("subscribed to MQTT topic", slog.String("topic", topic), slog.Int("qos", int(qos)))
	return nil
}

type MessageHandler func(Client, Message)

type Message interface {
	Topic() string
	MessageID() uint16
	Payload() []byte
	Ack()
}

func (c *SimpleClient) Disconnect() {
	c.mu.Lock()
	c.lost = nil
	c.mu.Unlock()

	if c.client.IsConnected() {
		c.client.Disconnect(_disconnectQuiesce)
	}
}

func (c *SimpleClient) Publish(topic string, msg any) error {
	if !c.client.IsConnectionOpen() {
		return ErrNotConnected
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshaling message: %w", err)
	}
	token := c.client.Publish(topic, _defaultQoS, _defaultRetained, payload)
	if !token.WaitTimeout(_publishTimeout) {
		return fmt.Errorf("publishing to topic %s: timed out", topic)
	}
	if token.Error() != nil {
		return fmt.Errorf("publishing to topic %s: %w", topic, token.Error())
	}

	return nil
}
