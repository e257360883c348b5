package stream

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sort"
	"sync"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"

	"wordguard/pkg/censor"
	"wordguard/pkg/models"
)

func TestMain(m *testing.M) {
	log.SetLevel(log.PanicLevel)
	exitCode := m.Run()
	os.Exit(exitCode)
}

// fakeReader hands out queued messages, then cancels the run.
type fakeReader struct {
	mu     sync.Mutex
	queue  []kafka.Message
	cancel context.CancelFunc
	eof    bool
	closed bool
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queue) == 0 {
		if r.eof {
			return kafka.Message{}, io.EOF
		}
		r.cancel()
		return kafka.Message{}, ctx.Err()
	}

	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *fakeReader) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	return nil
}

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	w.msgs = append(w.msgs, msgs...)
	w.mu.Unlock()
	return nil
}

func (w *fakeWriter) Close() error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	return nil
}

func newTestCensor(t *testing.T) *censor.Censor {
	t.Helper()

	c := censor.New()
	if err := c.Load([]string{"darn", "heck**"}); err != nil {
		t.Fatalf("failed to load words: %v", err)
	}
	return c
}

func commentMessage(t *testing.T, text string) (kafka.Message, uuid.UUID) {
	t.Helper()

	id, err := uuid.NewV4()
	if err != nil {
		t.Fatalf("failed to generate uuid: %v", err)
	}
	b, err := json.Marshal(models.Comment{ID: id, Author: "John Doe", Text: text})
	if err != nil {
		t.Fatalf("failed to marshal comment: %v", err)
	}
	return kafka.Message{Value: b}, id
}

func TestPipeline_Run(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	texts := map[string]bool{
		"a perfectly fine comment": true,
		"oh darn":                  false,
		"heckin nice":              false,
		"nothing to see":           true,
	}

	r := &fakeReader{cancel: cancel}
	wantAllowed := make(map[uuid.UUID]bool)
	for text, allowed := range texts {
		msg, id := commentMessage(t, text)
		r.queue = append(r.queue, msg)
		wantAllowed[id] = allowed
	}
	r.queue = append(r.queue, kafka.Message{Value: []byte("{broken")})

	w := &fakeWriter{}
	p := NewWithIO(r, w, newTestCensor(t), 3)

	if err := p.Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(w.msgs) != len(texts) {
		t.Fatalf("want %d verdicts, got %d", len(texts), len(w.msgs))
	}

	for _, msg := range w.msgs {
		var v models.Verdict
		if err := json.Unmarshal(msg.Value, &v); err != nil {
			t.Fatalf("failed to unmarshal verdict: %v", err)
		}
		if string(msg.Key) != v.CommentID.String() {
			t.Errorf("want key %q, got %q", v.CommentID.String(), msg.Key)
		}
		want, ok := wantAllowed[v.CommentID]
		if !ok {
			t.Errorf("unexpected verdict for comment %v", v.CommentID)
			continue
		}
		if v.Allowed != want {
			t.Errorf("comment %v: want allowed %v, got %v", v.CommentID, want, v.Allowed)
		}
		if !v.Allowed && v.Censored == "" {
			t.Errorf("comment %v: want censored text for a rejected comment", v.CommentID)
		}
	}
}

func TestPipeline_RunReaderClosed(t *testing.T) {
	msg, _ := commentMessage(t, "oh darn")
	r := &fakeReader{queue: []kafka.Message{msg}, eof: true}
	w := &fakeWriter{}

	err := NewWithIO(r, w, newTestCensor(t), 1).Run(context.Background())
	if err != io.EOF {
		t.Errorf("want io.EOF, got %v", err)
	}
	if len(w.msgs) != 1 {
		t.Errorf("want 1 verdict, got %d", len(w.msgs))
	}
}

func TestPipeline_process(t *testing.T) {
	p := NewWithIO(&fakeReader{}, &fakeWriter{}, newTestCensor(t), 0)

	msg, id := commentMessage(t, "heck, darn it")
	out, err := p.process(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var v models.Verdict
	if err := json.Unmarshal(out.Value, &v); err != nil {
		t.Fatalf("failed to unmarshal verdict: %v", err)
	}
	if v.CommentID != id {
		t.Errorf("want comment id %v, got %v", id, v.CommentID)
	}
	sort.Strings(v.Matched)
	if len(v.Matched) != 2 || v.Matched[0] != "darn" || v.Matched[1] != "heck**" {
		t.Errorf("want matched [darn heck**], got %v", v.Matched)
	}
	if want := "****, **** it"; v.Censored != want {
		t.Errorf("want censored %q, got %q", want, v.Censored)
	}

	if _, err := p.process(kafka.Message{Value: []byte("not json")}); err == nil {
		t.Error("want error for a malformed message")
	}
}

func TestPipeline_Close(t *testing.T) {
	r, w := &fakeReader{}, &fakeWriter{}
	if err := NewWithIO(r, w, newTestCensor(t), 1).Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.closed || !w.closed {
		t.Error("want reader and writer closed")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Brokers:     []string{"localhost:9092"},
		GroupID:     "wordguard",
		InputTopic:  "comments",
		OutputTopic: "verdicts",
		NumWorkers:  2,
	}

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{"Valid", func(c *Config) {}, false},
		{"No brokers", func(c *Config) { c.Brokers = nil }, true},
		{"No input topic", func(c *Config) { c.InputTopic = "" }, true},
		{"No output topic", func(c *Config) { c.OutputTopic = "" }, true},
		{"Same topics", func(c *Config) { c.OutputTopic = c.InputTopic }, true},
		{"No workers", func(c *Config) { c.NumWorkers = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.modify(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("want error %v, got %v", tt.wantErr, err)
			}
		})
	}

	if (Config{}).Enabled() {
		t.Error("want empty config disabled")
	}
	if !valid.Enabled() {
		t.Error("want valid config enabled")
	}
}
