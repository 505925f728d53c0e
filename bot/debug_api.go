package bot

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"unionlotto/domain/entities"
	"unionlotto/domain/interfaces"
	"unionlotto/domain/services"

	log "github.com/sirupsen/logrus"
)

// DebugResponse represents the response from a debug endpoint
type DebugResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// PickRequest is the body of POST /debug/pick
type PickRequest struct {
	Count int `json:"count"`
}

// SetView is the JSON shape of a stored set
type SetView struct {
	ID          string `json:"id"`
	Reds        []int  `json:"reds"`
	Blue        int    `json:"blue"`
	Source      string `json:"source"`
	AIReasoning string `json:"ai_reasoning,omitempty"`
	Timestamp   int64  `json:"timestamp"`
	CopyText    string `json:"copy_text"`
}

func newSetViews(sets []*entities.LotterySet) []SetView {
	views := make([]SetView, len(sets))
	for idx, set := range sets {
		views[idx] = SetView{
			ID:          set.ID,
			Reds:        set.Reds,
			Blue:        set.Blue,
			Source:      string(set.Source),
			AIReasoning: set.AIReasoning,
			Timestamp:   set.TimestampMillis(),
			CopyText:    set.CopyText(),
		}
	}
	return views
}

// NewDebugHandler builds the internal HTTP API over the lottery session
func NewDebugHandler(lotto interfaces.LotterySession) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("/debug/history", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		sets, err := lotto.History(r.Context())
		if err != nil {
			respondWithError(w, fmt.Sprintf("Failed to read history: %v", err), http.StatusInternalServerError)
			return
		}
		respondWithData(w, fmt.Sprintf("%d sets", len(sets)), newSetViews(sets))
	})

	mux.HandleFunc("/debug/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		stats, err := lotto.Stats(r.Context())
		if err != nil {
			respondWithError(w, fmt.Sprintf("Failed to compute stats: %v", err), http.StatusInternalServerError)
			return
		}
		respondWithData(w, fmt.Sprintf("%d entries", len(stats)), stats)
	})

	mux.HandleFunc("/debug/pick", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		req := PickRequest{Count: 1}
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondWithError(w, "Invalid request body", http.StatusBadRequest)
				return
			}
		}

		batch, err := lotto.PickRandom(r.Context(), req.Count)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, services.ErrInvalidBatchSize) {
				status = http.StatusBadRequest
			}
			respondWithError(w, err.Error(), status)
			return
		}
		respondWithData(w, fmt.Sprintf("Generated %d sets", len(batch)), newSetViews(batch))
	})

	return mux
}

// StartDebugAPI starts the internal HTTP API on localhost
func StartDebugAPI(port int, lotto interfaces.LotterySession) (*http.Server, error) {
	server := &http.Server{
		Addr:         fmt.Sprintf("127.0.0.1:%d", port),
		Handler:      NewDebugHandler(lotto),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Bind synchronously so port conflicts surface to the caller
	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", server.Addr, err)
	}

	go func() {
		log.Infof("Debug API listening on %s", server.Addr)
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Errorf("Debug API server error: %v", err)
		}
	}()

	return server, nil
}

func respondWithData(w http.ResponseWriter, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DebugResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondWithError(w http.ResponseWriter, error string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(DebugResponse{
		Success: false,
		Error:   error,
	})
}
