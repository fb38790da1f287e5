package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"smokeguard-server/cmd/api/wire"
	"smokeguard-server/cmd/config"
	"smokeguard-server/internal/infra/node"
	"sync"
	"syscall"
)

var (
	logLevelMapping = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func main() {
	cfg := config.LoadConfig()

	level := logLevelMapping[cfg.General.LogLevel]
	baseHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true, Level: level, ReplaceAttr: slogReplaceAttr})
	handler := baseHandler.WithAttrs([]slog.Attr{slog.String("version", node.Version)})
	slog.SetDefault(slog.New(handler))
	nodeInfo := node.GetNodeInfo()
	slog.Info("🚀 smokeguard is initializing",
		slog.String("node_id", nodeInfo.ID),
		slog.String("hostname", nodeInfo.Hostname),
		slog.String("commit", nodeInfo.CommitHash))
	slog.Debug("config loaded", slog.Any("data", redacted(cfg)))

	shutdownOtel := startOTel(nodeInfo)

	app := handleWireInjector(wire.InitializeApplication(cfg)).(*wire.Application)

	appCtx, cancelFn := context.WithCancel(context.Background())
	go app.HTTPServer.Run()

	var wg sync.WaitGroup
	for _, worker := range app.Workers {
		wg.Add(1)
		go worker.Run(appCtx, wg.Done)
	}

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	slog.Info("shutting down")

	app.HTTPServer.Shutdown()
	cancelFn()
	wg.Wait()
	for _, worker := range app.Workers {
		worker.Shutdown()
	}

	if err := shutdownOtel(); err != nil {
		slog.Error("shutting down otel", slog.String("error", err.Error()))
	}

	slog.Info("good bye!!!")
	os.Exit(0)
}

func redacted(cfg config.AppConfig) config.AppConfig {
	if cfg.MQTTClient.Password != "" {
		cfg.MQTTClient.Password = "***"
	}
	if cfg.Redis.Password != "" {
		cfg.Redis.Password = "***"
	}
	if cfg.ImgBB.APIKey != "" {
		cfg.ImgBB.APIKey = "***"
	}
	return cfg
}

func slogReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.SourceKey {
		source := a.Value.Any().(*slog.Source)
		source.File = filepath.Base(source.File)
		return slog.Any(a.Key, source)
	}
	return a
}

func handleWireInjector(value any, err error) any {
	if err != nil {
		panic(err)
	}

	return value
}
