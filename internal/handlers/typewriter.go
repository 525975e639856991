package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"rudresh.dev/internal/config"
	"rudresh.dev/internal/typewriter"
)

// TypewriterHandler streams typewriter frames as server-sent events
type TypewriterHandler struct {
	store  *config.Store
	logger *zap.Logger
}

// NewTypewriterHandler creates a new TypewriterHandler
func NewTypewriterHandler(store *config.Store, logger *zap.Logger) *TypewriterHandler {
	return &TypewriterHandler{store: store, logger: logger}
}

// TimingFromConfig converts configured intervals into a typewriter timing
func TimingFromConfig(c config.TypewriterConfig) typewriter.Timing {
	return typewriter.Timing{
		Type:   c.TypeInterval,
		Delete: c.DeleteInterval,
		Hold:   c.HoldDelay,
	}
}

// Stream handles GET /api/typewriter/stream. Each connection owns one
// runner, torn down when the client goes away or the server shuts down.
// A config reload restarts the runner with the new phrases and timings.
func (h *TypewriterHandler) Stream(w http.ResponseWriter, r *http.Request) {
	cfg := h.store.Current().Typewriter
	runner, err := typewriter.NewRunner(cfg.Phrases, TimingFromConfig(cfg))
	if err != nil {
		respondError(w, h.logger, http.StatusInternalServerError, err.Error())
		return
	}

	rc := http.NewResponseController(w)
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	updates, unsubscribe := h.store.Subscribe()
	defer unsubscribe()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case c := <-updates:
				if err := runner.Restart(c.Typewriter.Phrases, TimingFromConfig(c.Typewriter)); err != nil {
					h.logger.Warn("Keeping typewriter settings after reload", zap.Error(err))
				}
			}
		}
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	_ = runner.Run(ctx, func(f typewriter.Frame) {
		data, err := json.Marshal(f)
		if err != nil {
			h.logger.Error("Error encoding typewriter frame", zap.Error(err))
			cancel()
			return
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			cancel()
			return
		}
		if err := rc.Flush(); err != nil {
			cancel()
		}
	})
}
