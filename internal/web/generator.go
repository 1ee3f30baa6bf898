package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	stdhtml "html"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sessionarchitect/sessionarchitect/internal/llm"
	"github.com/sessionarchitect/sessionarchitect/internal/plan"
	"github.com/sessionarchitect/sessionarchitect/internal/store"
)

// generateTimeout bounds one full plan or note generation, including the
// outbound model call.
const generateTimeout = 150 * time.Second

// GeneratorData is the template context for the plan generation page.
type GeneratorData struct {
	PageData
	Topic    string
	Modality string
	Tone     string
	Credits  int
	PlanHTML string
}

func (s *Server) handleGeneratorPage(w http.ResponseWriter, r *http.Request, sess *Session) {
	user, err := s.store.GetUser(sess.UserID)
	if err != nil {
		s.logger.Error("generator user load failed", "user", sess.UserID, "error", err)
		s.renderServerError(w, r)
		return
	}

	data := GeneratorData{
		PageData: s.pageData(r, "generator"),
		Topic:    sess.LastTopic,
		Modality: sess.LastModality,
		Tone:     sess.LastTone,
		Credits:  user.Credits,
	}
	if data.Modality == "" {
		data.Modality = user.DefaultModality
	}
	if data.Tone == "" {
		data.Tone = user.DefaultTone
	}
	if sess.LastPlan != "" {
		data.PlanHTML = plan.RenderPlan(plan.ParseSections(sess.LastPlan))
	}
	s.render(w, http.StatusOK, "generator.html", data)
}

// errorFragment is the inline fragment the generator form swaps in when a
// generation attempt fails outright. Distinct from the empty-plan
// placeholder, which is a successful call that parsed to zero sections.
func errorFragment(msg string) string {
	return fmt.Sprintf("<p style='color: #dc3545;'>%s</p>", stdhtml.EscapeString(msg))
}

// handleGenerate runs one plan generation and responds with an HTML
// fragment for the result pane.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request, sess *Session) {
	topic := strings.TrimSpace(r.FormValue("topic"))
	modality := strings.TrimSpace(r.FormValue("modality"))
	tone := r.FormValue("tone")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if topic == "" || modality == "" {
		fmt.Fprint(w, errorFragment("Please provide both a session topic and a therapeutic modality."))
		return
	}

	user, err := s.store.GetUser(sess.UserID)
	if err != nil {
		s.logger.Error("generate user load failed", "user", sess.UserID, "error", err)
		fmt.Fprint(w, errorFragment("Something went wrong. Please try again."))
		return
	}

	if err := s.store.SpendCredit(sess.UserID); err != nil {
		if errors.Is(err, store.ErrNoCredits) {
			fmt.Fprint(w, errorFragment("You have no credits remaining. Visit the billing page to upgrade."))
			return
		}
		s.logger.Error("credit spend failed", "user", sess.UserID, "error", err)
		fmt.Fprint(w, errorFragment("Something went wrong. Please try again."))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()

	result, err := s.planner.GeneratePlan(ctx, plan.Request{
		Scenario: topic,
		Modality: modality,
		Style:    plan.ParseStyle(tone),
		Lens:     plan.ParseLens(user.Profession),
	})
	if err != nil && !errors.Is(err, plan.ErrEmptyPlan) {
		s.logger.Error("plan generation failed", "user", sess.UserID, "error", err)
		fmt.Fprint(w, errorFragment("Error generating session plan: "+err.Error()))
		return
	}

	if errors.Is(err, plan.ErrEmptyPlan) {
		s.logger.Warn("plan parsed to zero sections", "user", sess.UserID)
		fmt.Fprint(w, plan.RenderPlan(nil))
		return
	}

	s.sessions.Update(sess.Token, func(sess *Session) {
		sess.LastPlan = result.RawText
		sess.LastTopic = topic
		sess.LastModality = modality
		sess.LastTone = tone
	})

	gen := &store.Generation{
		ID:         uuid.New().String(),
		UserID:     sess.UserID,
		Topic:      topic,
		Modality:   modality,
		Tone:       tone,
		Profession: user.Profession,
		RawPlan:    result.RawText,
	}
	if err := s.store.RecordGeneration(gen); err != nil {
		s.logger.Error("generation record failed", "user", sess.UserID, "error", err)
	}

	fmt.Fprint(w, result.HTML)
}

// noteRequest is the JSON body for the note endpoints. plan_text is
// optional; when absent the last generated plan in the session is used.
type noteRequest struct {
	PlanText string `json:"plan_text"`
}

func (s *Server) handleGenerateDAP(w http.ResponseWriter, r *http.Request, sess *Session) {
	s.generateNote(w, r, sess, plan.NoteDAP, "dap_note_html")
}

func (s *Server) handleGenerateSOAP(w http.ResponseWriter, r *http.Request, sess *Session) {
	s.generateNote(w, r, sess, plan.NoteSOAP, "soap_note_html")
}

func (s *Server) generateNote(w http.ResponseWriter, r *http.Request, sess *Session, kind plan.NoteKind, field string) {
	// A missing or malformed body falls back to the session plan.
	var req noteRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	planText := strings.TrimSpace(req.PlanText)
	if planText == "" {
		planText = sess.LastPlan
	}
	if planText == "" {
		writeJSONError(w, s.logger, http.StatusBadRequest, "No session plan available. Generate a plan first.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()

	note, err := s.planner.GenerateNote(ctx, planText, kind)
	if err != nil {
		s.logger.Error("note generation failed", "user", sess.UserID, "kind", kind.String(), "error", err)
		writeJSONError(w, s.logger, http.StatusBadGateway, "Error generating note: "+err.Error())
		return
	}

	writeJSON(w, map[string]string{field: note}, s.logger)
}

// handleExport is a stub; document export is not implemented.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request, sess *Session) {
	writeJSONError(w, s.logger, http.StatusNotImplemented,
		"Export to "+r.PathValue("type")+" is not available yet.")
}

// validateKeyRequest is the JSON body for the key validation endpoint.
type validateKeyRequest struct {
	APIKey string `json:"api_key"`
}

// handleValidateAPIKey checks a candidate API key against the generation
// service. An empty key validates the server's configured client instead.
func (s *Server) handleValidateAPIKey(w http.ResponseWriter, r *http.Request) {
	var req validateKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, s.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	client := s.llmClient
	if key := strings.TrimSpace(req.APIKey); key != "" {
		client = llm.NewOpenAIClient(key, "", s.logger)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		s.logger.Debug("api key validation failed", "error", err)
		writeJSON(w, map[string]any{"valid": false, "error": err.Error()}, s.logger)
		return
	}
	writeJSON(w, map[string]any{"valid": true}, s.logger)
}
