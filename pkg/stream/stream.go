// Package stream moderates comments arriving on a Kafka topic and publishes
// the verdicts to another topic.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"

	"wordguard/pkg/censor"
	"wordguard/pkg/models"
)

const writeTimeout = 10 * time.Second

// Config configures the Kafka side of a Pipeline.
type Config struct {
	Brokers     []string `toml:"brokers"`
	GroupID     string   `toml:"groupID"`
	InputTopic  string   `toml:"inputTopic"`
	OutputTopic string   `toml:"outputTopic"`
	NumWorkers  int      `toml:"numWorkers"`
}

// Enabled reports whether the pipeline is configured at all.
func (c Config) Enabled() bool {
	return len(c.Brokers) > 0 && c.InputTopic != ""
}

// Validate reports the first missing or invalid setting of an enabled pipeline.
func (c Config) Validate() error {
	switch {
	case len(c.Brokers) == 0:
		return errors.New("moderation: brokers are required")
	case c.InputTopic == "":
		return errors.New("moderation: inputTopic is required")
	case c.OutputTopic == "":
		return errors.New("moderation: outputTopic is required")
	case c.InputTopic == c.OutputTopic:
		return fmt.Errorf("moderation: inputTopic and outputTopic must differ, both are %q", c.InputTopic)
	case c.NumWorkers < 1:
		return fmt.Errorf("moderation: numWorkers must be positive, got %d", c.NumWorkers)
	}
	return nil
}

// Reader is the consuming side of the pipeline. *kafka.Reader satisfies it.
type Reader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// Writer is the producing side of the pipeline. *kafka.Writer satisfies it.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Pipeline reads comments, reviews them with a Censor on a pool of workers
// and writes one verdict per comment.
type Pipeline struct {
	r       Reader
	w       Writer
	censor  *censor.Censor
	workers int
}

// New connects a Pipeline to Kafka as described by cfg.
func New(cfg Config, c *censor.Censor) *Pipeline {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.InputTopic,
		GroupID:  cfg.GroupID,
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
	})
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.OutputTopic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	return NewWithIO(r, w, c, cfg.NumWorkers)
}

// NewWithIO builds a Pipeline over an existing reader and writer.
func NewWithIO(r Reader, w Writer, c *censor.Censor, workers int) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{r: r, w: w, censor: c, workers: workers}
}

// Run consumes messages until ctx is cancelled or the reader is closed. Jobs
// already handed to the workers are finished before Run returns.
func (p *Pipeline) Run(ctx context.Context) error {
	jobs := make(chan kafka.Message, p.workers*5) // buffer is needed to increase throughput
	var wg sync.WaitGroup
	wg.Add(p.workers)
	for workerID := 0; workerID < p.workers; workerID++ {
		go func(id int) {
			defer wg.Done()
			p.worker(jobs, id)
		}(workerID)
	}

	log.Info("[stream] accepting comments...")
	var runErr error
	for {
		msg, err := p.r.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				break
			}
			if errors.Is(err, io.EOF) {
				runErr = err
				break
			}
			log.Errorf("[stream] failed to read message from Kafka: %v", err)
			continue
		}
		log.Debugf("[stream] received message at offset %d", msg.Offset)

		jobs <- msg
	}

	close(jobs)
	wg.Wait()
	log.Info("[stream] stopped")

	return runErr
}

func (p *Pipeline) worker(jobs <-chan kafka.Message, workerID int) {
	for msg := range jobs {
		out, err := p.process(msg)
		if err != nil {
			log.Errorf("[stream][workerID:%d] skipping message at offset %d: %v", workerID, msg.Offset, err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err = p.w.WriteMessages(ctx, out)
		cancel()
		if err != nil {
			log.Errorf("[stream][workerID:%d] failed to write verdict to Kafka: %v", workerID, err)
			continue
		}
		log.Debugf("[stream][workerID:%d][%s] verdict written", workerID, shorten(string(out.Key)))
	}
	log.Debugf("[stream][workerID:%d] jobs channel closed, exiting worker", workerID)
}

// process turns one comment message into one verdict message keyed by the
// comment id.
func (p *Pipeline) process(msg kafka.Message) (kafka.Message, error) {
	var comment models.Comment
	if err := json.Unmarshal(msg.Value, &comment); err != nil {
		return kafka.Message{}, fmt.Errorf("failed to unmarshal comment: %w", err)
	}

	verdict := p.censor.Review(comment)
	b, err := json.Marshal(verdict)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal verdict: %w", err)
	}

	return kafka.Message{Key: []byte(comment.ID.String()), Value: b}, nil
}

// Close closes the reader and the writer.
func (p *Pipeline) Close() error {
	return errors.Join(p.r.Close(), p.w.Close())
}

func shorten(s string) string {
	if len(s) > 6 {
		return s[:6] + "..."
	}
	return s
}
