package live

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lumen-ui/lumen/pkg/host"
)

// Inspector exposes a MemNode over HTTP: a WebSocket mutation stream,
// the current node snapshot, and the accumulated mutation log.
type Inspector struct {
	hub  *Hub
	node *host.MemNode
	log  *zap.Logger
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithLogger sets the logger used by the inspector and its hub.
func WithLogger(log *zap.Logger) Option {
	return func(i *Inspector) {
		i.log = log
	}
}

// NewInspector attaches an inspector to node. Mutations recorded on
// the node after attachment are broadcast to connected clients.
func NewInspector(node *host.MemNode, opts ...Option) *Inspector {
	i := &Inspector{node: node, log: zap.NewNop()}
	for _, opt := range opts {
		opt(i)
	}
	i.hub = NewHub(i.log)
	node.Observe(i.hub.Broadcast)
	return i
}

// Hub returns the underlying WebSocket hub.
func (i *Inspector) Hub() *Hub { return i.hub }

// Handler returns the inspector's HTTP routes.
func (i *Inspector) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/ws", i.hub.HandleWebSocket)
	r.Get("/snapshot", i.handleSnapshot)
	r.Get("/mutations", i.handleMutations)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Serve runs the inspector on addr until ctx is cancelled.
func (i *Inspector) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           i.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	i.log.Info("inspector listening", zap.String("addr", addr))

	select {
	case <-ctx.Done():
		i.hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (i *Inspector) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	data, err := i.node.Snapshot()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (i *Inspector) handleMutations(w http.ResponseWriter, _ *http.Request) {
	data, err := host.EncodeMutations(i.node.Mutations())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
