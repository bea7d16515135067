package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pass-alert/breach"
	"github.com/pivotal-cf/pass-alert/history"
	"github.com/pivotal-cf/pass-alert/strength"
)

type errorResponse struct {
	Error string `json:"error"`
}

type evaluateRequest struct {
	Password string `json:"password"`
	Breach   bool   `json:"breach"`
}

type evaluateResponse struct {
	strength.Result

	Breach *breach.Status `json:"breach,omitempty"`
}

func (h *handler) sessionFor(r *http.Request, task string) lager.Logger {
	return h.logger.Session(task, lager.Data{
		"request-id": RequestID(r),
	})
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) pwned(w http.ResponseWriter, r *http.Request) {
	logger := h.sessionFor(r, "pwned")

	prefix := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("hashPrefix")))
	if !breach.ValidPrefix(prefix) {
		writeJSON(logger, w, http.StatusBadRequest, errorResponse{"hashPrefix required"})
		return
	}

	if h.fetcher == nil {
		writeJSON(logger, w, http.StatusNotFound, errorResponse{"breach lookups disabled"})
		return
	}

	lines, err := h.fetcher.FetchRange(r.Context(), logger, prefix)
	if errors.Is(err, breach.ErrUpstream) {
		writeJSON(logger, w, http.StatusBadGateway, errorResponse{"Upstream error"})
		return
	}
	if err != nil {
		logger.Error("failed", err)
		writeJSON(logger, w, http.StatusInternalServerError, errorResponse{"Unexpected error"})
		return
	}

	if lines == nil {
		lines = []string{}
	}

	writeJSON(logger, w, http.StatusOK, map[string][]string{"hashes": lines})
}

func (h *handler) evaluate(w http.ResponseWriter, r *http.Request) {
	logger := h.sessionFor(r, "evaluate")

	var request evaluateRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(&request)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(logger, w, http.StatusRequestEntityTooLarge, errorResponse{"request body too large"})
			return
		}

		logger.Info("invalid-request", lager.Data{"error": err.Error()})
		writeJSON(logger, w, http.StatusBadRequest, errorResponse{"invalid request body"})
		return
	}

	response := evaluateResponse{
		Result: h.evaluator.Evaluate(request.Password),
	}

	if request.Breach && h.checker != nil {
		status, err := h.checker.Check(r.Context(), logger, request.Password)
		if err == nil {
			response.Breach = &status
		}
	}

	if h.store != nil {
		entry := history.NewEntry(h.clock, response.Result, response.Breach)
		if err := h.store.Save(r.Context(), logger, entry); err != nil {
			logger.Error("save-history-failed", err)
		}
	}

	writeJSON(logger, w, http.StatusOK, response)
}

func (h *handler) listHistory(w http.ResponseWriter, r *http.Request) {
	logger := h.sessionFor(r, "list-history")

	if h.store == nil {
		writeJSON(logger, w, http.StatusNotFound, errorResponse{"history disabled"})
		return
	}

	entries, err := h.store.List(r.Context(), logger)
	if err != nil {
		logger.Error("failed", err)
		writeJSON(logger, w, http.StatusInternalServerError, errorResponse{"Unexpected error"})
		return
	}

	if entries == nil {
		entries = []history.Entry{}
	}

	writeJSON(logger, w, http.StatusOK, map[string][]history.Entry{"entries": entries})
}

func (h *handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	logger := h.sessionFor(r, "clear-history")

	if h.store == nil {
		writeJSON(logger, w, http.StatusNotFound, errorResponse{"history disabled"})
		return
	}

	if err := h.store.Clear(r.Context(), logger); err != nil {
		logger.Error("failed", err)
		writeJSON(logger, w, http.StatusInternalServerError, errorResponse{"Unexpected error"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(logger lager.Logger, w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("write-response-failed", err)
	}
}
