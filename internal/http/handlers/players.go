package handlers

import (
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"

	"github.com/preston-bernstein/nba-stats-service/internal/domain"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
)

const maxCreateBody = 1 << 16

// ListPlayers serves the public player projection.
func (h *Handler) ListPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	items, err := h.svc.Players.List(r.Context())
	if err != nil {
		logger := loggerFromContext(r, h.logger)
		if errors.Is(err, domain.ErrNoData) {
			logging.Warn(logger, "no player data", "error", err)
			writeError(w, r, nethttp.StatusNotFound, "No player data available", h.logger)
			return
		}
		logging.Error(logger, "list players failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "Failed to fetch player data", h.logger)
		return
	}

	w.Header().Set("Cache-Control", cachePlayers)
	writeJSON(w, nethttp.StatusOK, items, h.logger)
}

// CreatePlayer appends a player built from {name, position, team}.
func (h *Handler) CreatePlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)

	var input players.NewPlayer
	dec := json.NewDecoder(io.LimitReader(r.Body, maxCreateBody))
	if err := decodeSingle(dec, &input); err != nil {
		logging.Warn(logger, "invalid create player body", "error", err)
		writeError(w, r, nethttp.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	created, err := h.svc.Players.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrValidationFailed) {
			logging.Warn(logger, "create player rejected", "error", err)
			writeError(w, r, nethttp.StatusBadRequest, "Missing required fields", h.logger)
			return
		}
		logging.Error(logger, "create player failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "Failed to create player", h.logger)
		return
	}

	w.Header().Set("Cache-Control", cachePlayers)
	writeJSON(w, nethttp.StatusCreated, created, h.logger)
}

var errTrailingData = errors.New("unexpected data after JSON body")

// decodeSingle decodes exactly one JSON value; anything but whitespace after it is rejected.
func decodeSingle(dec *json.Decoder, dest any) error {
	if err := dec.Decode(dest); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
