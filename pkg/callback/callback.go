package callback

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/vkit/pkg/logger"
)

// maxEventBytes caps how much of a delivery body is read.
const maxEventBytes = 1 << 20

// Event is one callback delivery from the platform.
type Event struct {
	Type    string          `json:"type"`
	GroupID int64           `json:"group_id"`
	EventID string          `json:"event_id"`
	Secret  string          `json:"secret"`
	Object  json.RawMessage `json:"object"`
}

// HandlerFunc processes one event. A non-nil error makes the receiver answer
// with a 500 so the platform redelivers the event.
type HandlerFunc func(ctx context.Context, e Event) error

// Receiver answers Callback API deliveries for one community endpoint.
// Zero value is not usable; use New.
type Receiver struct {
	confirmation string
	secret       string
	log          *slog.Logger
	handlers     map[string]HandlerFunc
}

// Option configures the receiver.
type Option func(*Receiver)

// WithSecret sets the shared secret every delivery must carry. Without it,
// deliveries are accepted unauthenticated.
func WithSecret(secret string) Option {
	return func(r *Receiver) { r.secret = secret }
}

// WithLogger sets the structured logger. The receiver is silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(r *Receiver) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a receiver that answers confirmation events with the given
// code.
func New(confirmationCode string, opts ...Option) *Receiver {
	r := &Receiver{
		confirmation: confirmationCode,
		log:          logger.Discard(),
		handlers:     make(map[string]HandlerFunc),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle registers a handler for one event type, replacing any previous one.
// Registration is not synchronized; finish it before serving traffic.
func (r *Receiver) Handle(eventType string, fn HandlerFunc) {
	if eventType == "" || fn == nil {
		return
	}
	r.handlers[eventType] = fn
}

// Router returns the HTTP surface of the receiver: a single POST endpoint at
// the root of the returned router, ready to be mounted.
func (r *Receiver) Router() http.Handler {
	mux := chi.NewRouter()
	mux.Post("/", r.serve)
	return mux
}

func (r *Receiver) serve(w http.ResponseWriter, req *http.Request) {
	var event Event
	if err := json.NewDecoder(io.LimitReader(req.Body, maxEventBytes)).Decode(&event); err != nil {
		r.log.Warn("unparseable callback delivery", logger.Error(err))
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	log := r.log.With(logger.EventType(event.Type), slog.String("event_id", event.EventID))

	if r.secret != "" && event.Secret != r.secret {
		log.Warn("callback delivery with wrong secret")
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	if event.Type == "confirmation" {
		log.Info("endpoint confirmation requested")
		_, _ = w.Write([]byte(r.confirmation))
		return
	}

	if fn, ok := r.handlers[event.Type]; ok {
		if err := fn(req.Context(), event); err != nil {
			log.Error("event handler failed", logger.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	} else {
		log.Debug("no handler registered for event type")
	}

	// Anything not answered with "ok" is redelivered by the platform.
	_, _ = w.Write([]byte("ok"))
}
