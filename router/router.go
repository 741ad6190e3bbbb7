package router

import (
	"database/sql"
	"net/http"

	"quotesearch/config"
	quoteHandler "quotesearch/internal/quote"
	"quotesearch/internal/quote/repository"
	"quotesearch/internal/quote/service"
	"quotesearch/middleware"
)

func Setup(db *sql.DB, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	repo := repository.NewQuoteRepository(db)
	svc := service.NewQuoteService(repo, service.Settings{
		Mode:        cfg.Search.Mode,
		MinRank:     cfg.Search.MinRank,
		NameWeight:  cfg.Search.NameWeight,
		QuoteWeight: cfg.Search.QuoteWeight,
		PageSize:    cfg.Search.PageSize,
	})
	h := quoteHandler.NewQuoteHandler(svc)
	auth := middleware.AuthMiddleware(cfg.Auth.JWTSecret)

	// Reads are public; the write path requires a bearer token.
	mux.Handle("/api/quotes", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.ListQuotes(w, r)
		case http.MethodPost:
			auth(http.HandlerFunc(h.CreateQuote)).ServeHTTP(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))
	mux.Handle("/api/quotes/search", http.HandlerFunc(h.SearchQuotes))

	mux.Handle("/healthz", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}))

	return middleware.CORSMiddleware(mux)
}
