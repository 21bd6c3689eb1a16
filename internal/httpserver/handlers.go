package httpserver

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/kdi-analyzer/server/internal/chat"
	"github.com/kdi-analyzer/server/internal/core/errx"
	"github.com/kdi-analyzer/server/internal/render"
	"github.com/kdi-analyzer/server/internal/report"
	"github.com/kdi-analyzer/server/internal/session"
	logx "github.com/kdi-analyzer/server/pkg/logger"
)

const maxUploadBytes = 64 << 20

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// GET /
func (r *Router) handleIndex(w http.ResponseWriter, _ *http.Request) error {
	page, err := render.IndexHTML()
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = w.Write([]byte(page))
	return err
}

// POST /api/analyze
// Multipart upload of exactly one PDF. Wrong MIME type is rejected before any
// provider call with no state change; a second upload while one is in flight
// is rejected (single-flight, no queueing, no cancellation). Analysis failure
// resets the session to idle, clearing file and result.
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	req.Body = http.MaxBytesReader(w, req.Body, maxUploadBytes)
	file, header, err := req.FormFile("file")
	if err != nil {
		return writeJSON(w, http.StatusBadRequest, map[string]string{
			"alert": AlertWrongFileType,
		})
	}
	defer file.Close()

	doc := report.Document{
		Name:     header.Filename,
		MIMEType: header.Header.Get("Content-Type"),
	}
	if !doc.IsPDF() {
		logx.Warn().Str("file", doc.Name).Str("mime", doc.MIMEType).Msg("rejected non-PDF upload")
		return writeJSON(w, http.StatusBadRequest, map[string]string{
			"alert": AlertWrongFileType,
		})
	}

	doc.Data, err = io.ReadAll(file)
	if err != nil {
		return err
	}

	_, prevID := r.sessions.Snapshot()

	sessionID, err := r.sessions.BeginAnalysis(doc)
	if err != nil {
		return writeJSON(w, http.StatusConflict, map[string]string{
			"alert": "이미 분석이 진행 중입니다.",
		})
	}

	// the superseded session's transcript dies with the session
	if prevID != "" {
		if err := r.transcripts.Clear(req.Context(), prevID); err != nil {
			logx.Warn().Err(err).Str("sessionID", prevID).Msg("failed to clear superseded transcript")
		}
	}

	if err := chat.Seed(req.Context(), r.transcripts, sessionID); err != nil {
		logx.Error().Err(err).Str("sessionID", sessionID).Msg("failed to seed transcript")
	}

	result, err := r.analyzer.Analyze(req.Context(), doc)
	if err != nil {
		kind := errx.KindOf(err)
		logx.Error().Err(err).Str("sessionID", sessionID).Str("kind", string(kind)).Msg("analysis failed")
		if ferr := r.sessions.FailAnalysis(sessionID); ferr != nil {
			logx.Warn().Err(ferr).Str("sessionID", sessionID).Msg("failure reset skipped")
		}
		if cerr := r.transcripts.Clear(req.Context(), sessionID); cerr != nil {
			logx.Warn().Err(cerr).Str("sessionID", sessionID).Msg("failed to clear transcript")
		}
		return writeJSON(w, http.StatusBadGateway, map[string]any{
			"alert":     AlertAnalysisFailed,
			"kind":      string(kind),
			"retryable": kind.Retryable(),
		})
	}

	if err := r.sessions.CompleteAnalysis(sessionID, result); err != nil {
		return err
	}

	reportHTML, err := render.ReportHTML(result.MarkdownReport)
	if err != nil {
		return err
	}
	chartsView, err := render.BuildChartsView(result.Charts)
	if err != nil {
		return err
	}
	chartsHTML, err := render.ChartsHTML(chartsView)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, map[string]any{
		"sessionID":  sessionID,
		"reportHTML": reportHTML,
		"chartsHTML": chartsHTML,
		"greeting":   chat.Greeting,
	})
}

// POST /api/chat
func (r *Router) handleChat(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		SessionID string `json:"sessionID"`
		Message   string `json:"message"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return errx.New(err, http.StatusBadRequest, "invalid chat request")
	}
	if body.Message == "" {
		return errx.New(nil, http.StatusBadRequest, "message is required")
	}
	if !r.sessions.Active(body.SessionID) {
		return errx.New(nil, http.StatusConflict, "session is no longer active")
	}

	doc, _ := r.sessions.Document()
	reply, ok := r.chat.Send(req.Context(), body.SessionID, body.Message, doc)
	if !ok {
		return errx.New(nil, http.StatusConflict, "session is no longer active")
	}

	length, err := r.transcripts.Len(req.Context(), body.SessionID)
	if err != nil {
		logx.Warn().Err(err).Str("sessionID", body.SessionID).Msg("transcript length unavailable")
	}
	return writeJSON(w, http.StatusOK, map[string]any{
		"reply":          reply,
		"transcriptSize": length,
	})
}

// POST /api/tab
func (r *Router) handleTab(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Tab string `json:"tab"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return errx.New(err, http.StatusBadRequest, "invalid tab request")
	}
	tab, err := session.ParseTab(body.Tab)
	if err != nil {
		return errx.New(err, http.StatusBadRequest, "unknown tab")
	}
	if err := r.sessions.SelectTab(tab); err != nil {
		return errx.New(err, http.StatusConflict, "no analysis result present")
	}
	return writeJSON(w, http.StatusOK, map[string]string{"tab": string(tab)})
}

// GET /api/session
func (r *Router) handleSession(w http.ResponseWriter, req *http.Request) error {
	state, sessionID := r.sessions.Snapshot()

	resp := map[string]any{
		"state":     state.Name(),
		"sessionID": sessionID,
	}
	if ready, ok := state.(session.Ready); ok {
		resp["tab"] = string(ready.Tab)
	}
	if sessionID != "" {
		msgs, err := r.transcripts.Load(req.Context(), sessionID)
		if err != nil {
			logx.Warn().Err(err).Str("sessionID", sessionID).Msg("transcript unavailable")
		} else {
			resp["transcript"] = chat.FromSchema(msgs)
		}
	}
	return writeJSON(w, http.StatusOK, resp)
}

// GET /print
// The combined report-then-charts document for the browser's print pipeline.
func (r *Router) handlePrint(w http.ResponseWriter, _ *http.Request) error {
	result, _, ok := r.sessions.Result()
	if !ok {
		return errx.New(nil, http.StatusNotFound, "no analysis result present")
	}
	doc, _ := r.sessions.Document()

	page, err := render.PrintHTML(result, doc.Name)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = w.Write([]byte(page))
	return err
}
