package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"quotesearch/internal/quote/model"
	"quotesearch/internal/quote/service"
	"quotesearch/pkg/logger"
)

type QuoteHandler struct {
	Service *service.QuoteService
}

func NewQuoteHandler(service *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{Service: service}
}

// ListQuotes serves the full collection, paginated.
func (h *QuoteHandler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := h.Service.List(pageParam(r))
	if err != nil {
		logger.Sugar.Errorf("Error listing quotes: %v", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// SearchQuotes serves search results for the q parameter. A missing or
// empty q is treated as no filter, never as an error.
func (h *QuoteHandler) SearchQuotes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	mode := r.URL.Query().Get("mode")

	result, err := h.Service.Search(query, mode, pageParam(r))
	if err != nil {
		if errors.Is(err, service.ErrInvalidSearchMode) {
			http.Error(w, "Invalid mode. Must be substring or ranked", http.StatusBadRequest)
			return
		}
		logger.Sugar.Errorf("Error searching quotes for %q: %v", query, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// CreateQuote is the authenticated write path.
func (h *QuoteHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req model.CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Quote) == "" {
		http.Error(w, "Quote text is required", http.StatusBadRequest)
		return
	}

	quote, err := h.Service.Create(req.Name, req.Quote)
	if err != nil {
		if errors.Is(err, service.ErrFieldTooLong) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Sugar.Errorf("Handler: Failed to create quote: %v", err)
		http.Error(w, "Failed to create quote: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(quote)
}

// pageParam reads the 1-based page query parameter, defaulting to 1 on
// anything unparsable.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
