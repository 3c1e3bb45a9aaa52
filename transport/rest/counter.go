package rest

import (
	"encoding/json"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

// handleIncrement counts a win for the player named by the last path segment.
// Anything other than X or Y is a 404 with an empty body.
func (that *Server) handleIncrement(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleIncrement")

	winner, ok := entity.ParseMark(r.PathValue("winner"))
	if !ok {
		log.Debug("unknown winner", "winner", r.PathValue("winner"))
		w.WriteHeader(http.StatusNotFound)
		return
	}

	tally, err := that.counter.Increment(r.Context(), winner)
	if err != nil {
		log.Error("failed to increment counter", "winner", winner, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	log.Info("win counted", "winner", winner, "x", tally.X, "y", tally.Y)

	that.writeTally(w, tally)
}

func (that *Server) handleUnknownWinner(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}

func (that *Server) handleTally(w http.ResponseWriter, r *http.Request) {
	tally, err := that.counter.Tally(r.Context())
	if err != nil {
		that.logger.Error("failed to get counter", "method", "handleTally", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeTally(w, tally)
}

func (that *Server) writeTally(w http.ResponseWriter, tally entity.Tally) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(tally); err != nil {
		that.logger.Error("failed to write tally", "error", err)
	}
}
