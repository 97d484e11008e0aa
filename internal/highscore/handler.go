package highscore

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
)

// APIPrefix is the path prefix the handler serves under.
const APIPrefix = "/api"

const maxBodyBytes = 4 << 10

// Handler exposes a Store over HTTP.
type Handler struct {
	store  Store
	logger *log.Logger
	mux    *http.ServeMux
}

// NewHandler builds the API routes. A nil logger discards output.
func NewHandler(store Store, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := &Handler{store: store, logger: logger, mux: http.NewServeMux()}
	h.mux.HandleFunc("POST "+APIPrefix+ModeSingle.Path(), h.postSingle)
	h.mux.HandleFunc("GET "+APIPrefix+ModeSingle.Path(), h.listSingle)
	h.mux.HandleFunc("POST "+APIPrefix+ModeMulti.Path(), h.postMulti)
	h.mux.HandleFunc("GET "+APIPrefix+ModeMulti.Path(), h.listMulti)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) postSingle(w http.ResponseWriter, r *http.Request) {
	var rec SinglePlayerScore
	if !h.decode(w, r, &rec) {
		return
	}
	if err := rec.Normalize(); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	saved, err := h.store.AddSingle(r.Context(), rec)
	if err != nil {
		h.fail(w, http.StatusInternalServerError, err)
		return
	}
	h.logger.Info("score saved", "mode", ModeSingle, "name", saved.PlayerOneName, "score", saved.Score)
	h.reply(w, http.StatusCreated, saved)
}

func (h *Handler) postMulti(w http.ResponseWriter, r *http.Request) {
	var rec MultiPlayerScore
	if !h.decode(w, r, &rec) {
		return
	}
	if err := rec.Normalize(); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	saved, err := h.store.AddMulti(r.Context(), rec)
	if err != nil {
		h.fail(w, http.StatusInternalServerError, err)
		return
	}
	h.logger.Info("score saved", "mode", ModeMulti,
		"names", saved.PlayerOneName+" & "+saved.PlayerTwoName, "score", saved.Score)
	h.reply(w, http.StatusCreated, saved)
}

func (h *Handler) listSingle(w http.ResponseWriter, r *http.Request) {
	limit, ok := h.limit(w, r)
	if !ok {
		return
	}
	list, err := h.store.Singles(r.Context(), limit)
	if err != nil {
		h.fail(w, http.StatusInternalServerError, err)
		return
	}
	if list == nil {
		list = []SinglePlayerScore{}
	}
	h.reply(w, http.StatusOK, list)
}

func (h *Handler) listMulti(w http.ResponseWriter, r *http.Request) {
	limit, ok := h.limit(w, r)
	if !ok {
		return
	}
	list, err := h.store.Multis(r.Context(), limit)
	if err != nil {
		h.fail(w, http.StatusInternalServerError, err)
		return
	}
	if list == nil {
		list = []MultiPlayerScore{}
	}
	h.reply(w, http.StatusOK, list)
}

func (h *Handler) limit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return DefaultLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		h.fail(w, http.StatusBadRequest, errors.New("highscore: limit must be a positive integer"))
		return 0, false
	}
	return n, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) fail(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "err", err)
	} else {
		h.logger.Debug("rejected request", "status", status, "err", err)
	}
	h.reply(w, status, errorBody{Error: err.Error()})
}

func (h *Handler) reply(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response", "err", err)
	}
}
