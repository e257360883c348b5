package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"

	"wordguard/pkg/api"
	"wordguard/pkg/censor"
	"wordguard/pkg/stream"
)

func main() {
	var (
		configPath string
		o          overrides
	)

	flag.StringVar(&configPath, "servconf", "cmd/server/config.toml", "Path to TOML config file")
	flag.StringVar(&o.wordList, "words", "", "Word list file path or http(s) URL.")
	flag.StringVar(&o.character, "char", "", "Replacement character for censored text.")
	flag.StringVar(&o.httpAddr, "http", "", "HTTP server address in the form 'host:port'.")
	flag.StringVar(&o.logLevel, "log", "", "Log level: debug, info, warn, error.")
	flag.StringVar(&o.kafkaAddr, "kafka", "", "Kafka server address in the form 'host:port'.")
	flag.StringVar(&o.kafkaTopic, "topic", "", "Kafka topic for request logs.")
	flag.IntVar(&o.kafkaBatch, "batch", 0, "Kafka batch size.")
	flag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Fatalf("[server] %v", err)
	}

	// Override config with flags if set
	cfg.override(o)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[server] invalid config: %v", err)
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	words := censor.New()
	words.SetCharacter(cfg.CensorCharacter)
	if err := loadWords(ctx, words, cfg.WordList); err != nil {
		log.Fatalf("[server] failed to load word list %s: %v", cfg.WordList, err)
	}

	var kafkaWriter *kafka.Writer
	if cfg.KafkaAddr != "" && cfg.KafkaTopic != "" {
		kafkaWriter = &kafka.Writer{
			Addr:      kafka.TCP(cfg.KafkaAddr),
			Topic:     cfg.KafkaTopic,
			BatchSize: cfg.KafkaBatch,
		}
		defer kafkaWriter.Close()

		err := createTopic(kafkaWriter.Addr.String(), kafkaWriter.Topic)
		if err != nil {
			log.Warnf("[server] failed to create Kafka topic: %v", err)
		}
	} else {
		log.Warnf("[server] kafka was not configured, logs will not be sent to Kafka")
	}

	api, err := api.New(cfg.ServiceName, words, kafkaWriter)
	if err != nil {
		log.Fatalf("[server] failed to create API: %v", err)
	}

	var wg sync.WaitGroup
	if cfg.Moderation.Enabled() {
		pipeline := stream.New(cfg.Moderation, words)
		defer pipeline.Close()

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := pipeline.Run(ctx); err != nil {
				log.Errorf("[server] moderation pipeline stopped: %v", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.Router(),
	}

	go func() {
		log.Infof("[server] starting on %v with %d words", cfg.HTTPAddr, words.Len())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[server] failed to start: %v", err)
			return
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	for sig := range sigChan {
		if sig != syscall.SIGHUP {
			break
		}
		if err := loadWords(ctx, words, cfg.WordList); err != nil {
			log.Errorf("[server] failed to reload word list, keeping %d words: %v", words.Len(), err)
			continue
		}
		log.Infof("[server] word list reloaded, %d words", words.Len())
	}

	shutdownCtx, shutdownRelease := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownRelease()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("[server] HTTP server shutdown error: %v", err)
	} else {
		log.Info("[server] HTTP server shut down gracefully")
	}

	cancel()
	wg.Wait()
}

func loadWords(ctx context.Context, c *censor.Censor, source string) error {
	if isURL(source) {
		return c.LoadURL(ctx, source)
	}
	return c.LoadFile(source)
}

func createTopic(broker, topic string) error {
	conn, err := kafka.DialContext(context.Background(), "tcp", broker)
	if err != nil {
		return err
	}
	defer conn.Close()

	return conn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
}
