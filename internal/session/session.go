package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/kdi-analyzer/server/internal/report"
	logx "github.com/kdi-analyzer/server/pkg/logger"
)

// Tab selects which view a ready session shows. Printing does not change the
// tab; the print document always composes both views.
type Tab string

const (
	TabReport Tab = "report"
	TabCharts Tab = "charts"
)

// ParseTab validates a tab name from the API.
func ParseTab(v string) (Tab, error) {
	switch Tab(v) {
	case TabReport:
		return TabReport, nil
	case TabCharts:
		return TabCharts, nil
	default:
		return "", fmt.Errorf("unknown tab %q", v)
	}
}

var (
	// ErrBusy rejects a new upload while an analysis is in flight. Single
	// flight is enforced here, not by request cancellation.
	ErrBusy = errors.New("analysis already in flight")
	// ErrNotAnalyzing rejects a completion or failure that does not belong to
	// the in-flight analysis.
	ErrNotAnalyzing = errors.New("no matching analysis in flight")
	// ErrNotReady rejects tab selection outside the ready state.
	ErrNotReady = errors.New("no analysis result present")
)

// State is the tagged union of session phases. Only the three variants below
// implement it, so invalid combinations (a result without a file, a tab
// without a result) cannot be represented.
type State interface {
	Name() string
}

// Idle is the start state: no file, no result.
type Idle struct{}

func (Idle) Name() string { return "idle" }

// Analyzing holds the selected file while its one analysis call is in flight.
type Analyzing struct {
	Doc report.Document
}

func (Analyzing) Name() string { return "analyzing" }

// Ready holds the file, its result and the active tab.
type Ready struct {
	Doc    report.Document
	Result *report.AnalysisResult
	Tab    Tab
}

func (Ready) Name() string { return "ready" }

// Manager owns the session state and drives all transitions. Each accepted
// upload mints a new session ID; the ID tags outgoing chat calls so replies
// for a superseded session can be discarded on arrival.
type Manager struct {
	mu    sync.Mutex
	state State
	id    string

	// lastTab survives across uploads: re-analyzing keeps the view the user
	// was on. Empty until the first completed analysis.
	lastTab Tab
}

func NewManager() *Manager {
	return &Manager{state: Idle{}}
}

// Snapshot returns the current state and session ID.
func (m *Manager) Snapshot() (State, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.id
}

// Active reports whether the given session ID is the live one.
func (m *Manager) Active(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sessionID != "" && sessionID == m.id
}

// BeginAnalysis moves to analyzing for a newly selected file, discarding any
// previous selection and result. It fails with ErrBusy while another analysis
// is in flight.
func (m *Manager) BeginAnalysis(doc report.Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, busy := m.state.(Analyzing); busy {
		return "", ErrBusy
	}
	m.state = Analyzing{Doc: doc}
	m.id = uuid.NewString()
	logx.Info().Str("sessionID", m.id).Str("file", doc.Name).Msg("analysis started")
	return m.id, nil
}

// CompleteAnalysis moves the matching in-flight analysis to ready. The tab
// defaults to the report view on the first ever success; later analyses keep
// whatever tab was last selected.
func (m *Manager) CompleteAnalysis(sessionID string, result *report.AnalysisResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.state.(Analyzing)
	if !ok || sessionID != m.id {
		return ErrNotAnalyzing
	}
	tab := m.lastTab
	if tab == "" {
		tab = TabReport
	}
	m.lastTab = tab
	m.state = Ready{Doc: st.Doc, Result: result, Tab: tab}
	logx.Info().Str("sessionID", m.id).Msg("analysis ready")
	return nil
}

// FailAnalysis returns the matching in-flight analysis to idle, clearing the
// file and any prior result. The user must restart the upload from scratch.
func (m *Manager) FailAnalysis(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.state.(Analyzing); !ok || sessionID != m.id {
		return ErrNotAnalyzing
	}
	m.state = Idle{}
	m.id = ""
	return nil
}

// SelectTab switches the view within ready.
func (m *Manager) SelectTab(tab Tab) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.state.(Ready)
	if !ok {
		return ErrNotReady
	}
	st.Tab = tab
	m.state = st
	m.lastTab = tab
	return nil
}

// Document returns the selected file while one exists (analyzing or ready).
// The chat panel attaches it to every call.
func (m *Manager) Document() (*report.Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch st := m.state.(type) {
	case Analyzing:
		doc := st.Doc
		return &doc, true
	case Ready:
		doc := st.Doc
		return &doc, true
	default:
		return nil, false
	}
}

// Result returns the analysis result in the ready state.
func (m *Manager) Result() (*report.AnalysisResult, Tab, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.state.(Ready)
	if !ok {
		return nil, "", false
	}
	return st.Result, st.Tab, true
}
