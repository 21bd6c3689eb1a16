package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/kdi-analyzer/server/internal/chat"
	"github.com/kdi-analyzer/server/internal/core/errx"
	"github.com/kdi-analyzer/server/internal/report"
	"github.com/kdi-analyzer/server/internal/session"
	logx "github.com/kdi-analyzer/server/pkg/logger"
)

// User-facing alerts. Analysis failures collapse to one generic message per
// call site; the machine-readable kind travels alongside.
const (
	AlertWrongFileType  = "PDF 파일만 업로드 가능합니다."
	AlertAnalysisFailed = "보고서 분석에 실패했습니다. API 키나 파일 상태를 확인해주세요."
)

// Analyzer is the analysis-call port the router depends on.
type Analyzer interface {
	Analyze(ctx context.Context, doc report.Document) (*report.AnalysisResult, error)
}

// ChatService is the chat-call port. The bool is false when the reply was
// discarded for a superseded session.
type ChatService interface {
	Send(ctx context.Context, sessionID, message string, doc *report.Document) (string, bool)
}

type Router struct {
	sessions    *session.Manager
	analyzer    Analyzer
	chat        ChatService
	transcripts chat.TranscriptStore
}

func NewRouter(sessions *session.Manager, analyzer Analyzer, chatSvc ChatService, transcripts chat.TranscriptStore) http.Handler {
	r := &Router{sessions: sessions, analyzer: analyzer, chat: chatSvc, transcripts: transcripts}
	mux := chi.NewRouter()

	mux.Use(RequestLogger)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})

	mux.Get("/", r.wrap(r.handleIndex))
	mux.Get("/print", r.wrap(r.handlePrint))

	mux.Route("/api", func(rt chi.Router) {
		rt.Post("/analyze", r.wrap(r.handleAnalyze))
		rt.Post("/chat", r.wrap(r.handleChat))
		rt.Post("/tab", r.wrap(r.handleTab))
		rt.Get("/session", r.wrap(r.handleSession))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			var ae *errx.AppError
			if errors.As(err, &ae) {
				http.Error(w, ae.Message, ae.Status)
				return
			}
			logx.Error().Err(err).Str("path", req.URL.Path).Msg("unhandled handler error")
			http.Error(w, errx.SystemErrorMessage, http.StatusInternalServerError)
		}
	}
}
