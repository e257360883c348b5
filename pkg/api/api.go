package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"

	"wordguard/pkg/censor"
	"wordguard/pkg/models"
)

// MessageWriter publishes Kafka messages. *kafka.Writer satisfies it.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type API struct {
	ServiceName string

	r      *mux.Router
	kw     MessageWriter
	censor *censor.Censor
}

// New creates the API. Request logs are shipped to Kafka when kafkaWriter is
// not nil.
func New(name string, c *censor.Censor, kafkaWriter *kafka.Writer) (*API, error) {
	api := API{
		ServiceName: name,
		r:           mux.NewRouter(),
		censor:      c,
	}
	if kafkaWriter != nil {
		api.kw = kafkaWriter
	}
	api.endpoints()

	return &api, nil
}

func (api *API) Router() *mux.Router {
	return api.r
}

func (api *API) endpoints() {
	api.r.Use(api.requestIDMiddleware)
	api.r.Use(api.headerMiddleware)

	api.r.HandleFunc("/check", api.checkComment).Methods(http.MethodPost)
	api.r.HandleFunc("/censor", api.censorText).Methods(http.MethodPost)
	api.r.HandleFunc("/words", api.listWords).Methods(http.MethodGet)
	api.r.HandleFunc("/health", api.health).Methods(http.MethodGet)

	if api.kw != nil {
		api.r.Use(api.loggingMiddleware(api.kw))
	}
}

// checkComment answers 200 with the verdict for an acceptable comment and
// 422 with the verdict for a rejected one.
func (api *API) checkComment(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())
	sID := shorten(reqID)

	var comment models.Comment
	err := json.NewDecoder(r.Body).Decode(&comment)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		log.Errorf("[checkComment][%s] failed to decode request body: %v", sID, err)
		return
	}
	defer r.Body.Close()

	verdict := api.censor.Review(comment)
	if verdict.Allowed {
		w.WriteHeader(http.StatusOK)
	} else {
		log.Infof("[checkComment][%s] comment %v rejected, matched %v", sID, comment.ID, verdict.Matched)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}

	if err := json.NewEncoder(w).Encode(verdict); err != nil {
		log.Errorf("[checkComment][%s] failed to encode response: %v", sID, err)
	}
}

func (api *API) censorText(w http.ResponseWriter, r *http.Request) {
	sID := shorten(GetRequestID(r.Context()))

	var req censorRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		log.Errorf("[censorText][%s] failed to decode request body: %v", sID, err)
		return
	}
	defer r.Body.Close()

	var res censor.Result
	if req.Character != "" {
		res = api.censor.CensorWith(req.Text, req.Character)
	} else {
		res = api.censor.Censor(req.Text)
	}
	log.Debugf("[censorText][%s] matched %d words", sID, len(res.Matched))

	if err := json.NewEncoder(w).Encode(censorResponse{Text: res.Text, Matched: res.Matched}); err != nil {
		log.Errorf("[censorText][%s] failed to encode response: %v", sID, err)
	}
}

func (api *API) listWords(w http.ResponseWriter, r *http.Request) {
	words := api.censor.Patterns()
	if err := json.NewEncoder(w).Encode(wordsResponse{Words: words, Count: len(words)}); err != nil {
		log.Errorf("[listWords] failed to encode response: %v", err)
	}
}

func (api *API) health(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(healthResponse{Status: "ok", Words: api.censor.Len()})
}

func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(RequestIDKey).(string); ok {
		return v
	}
	return ""
}

// shorten truncates a string to 6 characters if it is longer than 6, appends '...' at the end,
// otherwise it returns the string unchanged.
func shorten(s string) string {
	if len(s) > 6 {
		return s[:6] + "..."
	}
	return s
}
