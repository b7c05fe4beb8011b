package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"

	"github.com/klauseduard/hl7-tools/internal/common"
	"github.com/klauseduard/hl7-tools/internal/hl7"
	"github.com/klauseduard/hl7-tools/internal/mllp"
	"github.com/klauseduard/hl7-tools/internal/server"
)

type logConfig struct {
	Directory  string `yaml:"directory"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	MaxBackups int    `yaml:"maxBackups"`
	Compress   bool   `yaml:"compress"`
}

type mllpConfig struct {
	Port           int `yaml:"port"`
	ReadTimeoutSec int `yaml:"readTimeoutSec"`
}

type config struct {
	Port      int               `yaml:"port"`
	MaxBodyMB int               `yaml:"maxBodyMB"`
	Profiles  map[string]string `yaml:"profiles"`
	MLLP      mllpConfig        `yaml:"mllp"`
	Logs      logConfig         `yaml:"logs"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, err
	}
	baseDir := filepath.Dir(path)
	resolvePath := func(p string) string {
		p = strings.TrimSpace(p)
		if p == "" || filepath.IsAbs(p) {
			return filepath.Clean(p)
		}
		return filepath.Clean(filepath.Join(baseDir, p))
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.MaxBodyMB <= 0 {
		cfg.MaxBodyMB = 5
	}
	for name, p := range cfg.Profiles {
		cfg.Profiles[name] = resolvePath(p)
	}
	if cfg.MLLP.ReadTimeoutSec <= 0 {
		cfg.MLLP.ReadTimeoutSec = 30
	}
	if cfg.Logs.Directory == "" {
		cfg.Logs.Directory = filepath.Join(".", "logs")
	}
	if cfg.Logs.MaxSizeMB <= 0 {
		cfg.Logs.MaxSizeMB = 25
	}
	if cfg.Logs.MaxAgeDays <= 0 {
		cfg.Logs.MaxAgeDays = 7
	}
	if cfg.Logs.MaxBackups <= 0 {
		cfg.Logs.MaxBackups = 5
	}
	return cfg, nil
}

func setupLogging(cfg config) error {
	if err := os.MkdirAll(cfg.Logs.Directory, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	logFile := filepath.Join(cfg.Logs.Directory, "hl7d.log")
	rotator := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    cfg.Logs.MaxSizeMB,
		MaxAge:     cfg.Logs.MaxAgeDays,
		MaxBackups: cfg.Logs.MaxBackups,
		Compress:   cfg.Logs.Compress,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, rotator))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return nil
}

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to configuration file")
	addr := flag.String("addr", "", "HTTP listen address (overrides config port)")
	mllpAddr := flag.String("mllp-addr", "", "MLLP listen address (overrides config; empty config port disables)")
	readTimeout := flag.Duration("read-timeout", 60*time.Second, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", 60*time.Second, "HTTP write timeout")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := setupLogging(cfg); err != nil {
		log.Fatalf("setup logging: %v", err)
	}

	listenAddr := fmt.Sprintf(":%d", cfg.Port)
	if *addr != "" {
		listenAddr = *addr
	}

	srv, err := server.NewServer(server.Options{
		MaxBodyBytes: int64(cfg.MaxBodyMB) << 20,
		ProfilePaths: cfg.Profiles,
		Logger:       log.Default(),
	})
	if err != nil {
		log.Fatalf("server init: %v", err)
	}

	httpServer := &http.Server{
		Addr:         listenAddr,
		Handler:      server.NewRouter(srv),
		ReadTimeout:  *readTimeout,
		WriteTimeout: *writeTimeout,
	}

	metrics := common.NewMetrics()
	metrics.Start()
	mllpServer := &mllp.Server{
		Handler:     makeAckHandler(metrics),
		ReadTimeout: time.Duration(cfg.MLLP.ReadTimeoutSec) * time.Second,
	}
	mllpListen := *mllpAddr
	if mllpListen == "" && cfg.MLLP.Port > 0 {
		mllpListen = fmt.Sprintf(":%d", cfg.MLLP.Port)
	}
	if mllpListen != "" {
		listenedAddr, err := mllpServer.Listen(mllpListen, nil)
		if err != nil {
			log.Fatalf("mllp listen: %v", err)
		}
		log.Printf("hl7d MLLP listening on %s", listenedAddr)
		go func() {
			if err := mllpServer.Serve(); err != nil {
				log.Printf("mllp serve: %v", err)
			}
		}()
	}

	log.Printf("hl7d listening on %s", listenAddr)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	if mllpListen != "" {
		if err := mllpServer.Shutdown(ctx); err != nil {
			log.Printf("mllp shutdown: %v", err)
		}
		metrics.Stop()
		log.Printf("mllp totals: %s", metrics.Snapshot())
	}
	log.Println("hl7d stopped")
}

// makeAckHandler returns a handler that parses an inbound MLLP message
// and answers with an application-accept ACK echoing the control ID.
// Unparseable payloads get an application-error ACK with an empty
// control ID.
func makeAckHandler(metrics *common.Metrics) func(string) string {
	return func(message string) string {
		msg, err := hl7.Parse(message)
		if err != nil {
			metrics.IncRejected()
			log.Printf("mllp recv: %v", err)
			return buildAck("", "", "AE")
		}
		metrics.AddMessage(int64(len(message)))
		controlID := ""
		version := msg.Version
		if msh := msg.Segment("MSH", 1); msh != nil {
			if f := msh.Field(10); f != nil {
				controlID = f.RawValue
			}
		}
		log.Printf("mllp recv: %s control=%s", msg.MessageType, controlID)
		return buildAck(controlID, version, "AA")
	}
}

func buildAck(controlID, version, code string) string {
	if version == "" {
		version = "2.5"
	}
	ts := time.Now().Format("20060102150405")
	msh := strings.Join([]string{
		"MSH", "^~\\&", "hl7d", "", "", "", ts, "", "ACK", ts, "P", version,
	}, "|")
	msa := strings.Join([]string{"MSA", code, controlID}, "|")
	return msh + "\r" + msa + "\r"
}
