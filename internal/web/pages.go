package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/sessionarchitect/sessionarchitect/internal/plan"
	"github.com/sessionarchitect/sessionarchitect/internal/store"
)

// PageData is the base template context shared by every page.
type PageData struct {
	Title     string
	ActiveNav string
	LoggedIn  bool
	UserName  string
}

// pageData builds the base context from the request's session state.
func (s *Server) pageData(r *http.Request, nav string) PageData {
	data := PageData{ActiveNav: nav}
	if sess := s.sessionFromRequest(r); sess != nil {
		data.LoggedIn = true
		data.UserName = sess.Name
	}
	return data
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "index.html", s.pageData(r, "home"))
}

func (s *Server) handleFAQ(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "faq.html", s.pageData(r, "faq"))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusNotFound, "404.html", s.pageData(r, ""))
}

// renderServerError is the 500 page, used when a page handler hits an
// unexpected storage failure.
func (s *Server) renderServerError(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusInternalServerError, "500.html", s.pageData(r, ""))
}

// DashboardData is the template context for the account overview page.
type DashboardData struct {
	PageData
	Profession     string
	Email          string
	Credits        int
	PlansGenerated int
	Tier           string
	MemberSince    string
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request, sess *Session) {
	user, err := s.store.GetUser(sess.UserID)
	if err != nil {
		s.logger.Error("dashboard user load failed", "user", sess.UserID, "error", err)
		s.renderServerError(w, r)
		return
	}

	count, err := s.store.CountGenerations(sess.UserID)
	if err != nil {
		s.logger.Error("dashboard count failed", "user", sess.UserID, "error", err)
	}

	data := DashboardData{
		PageData:       s.pageData(r, "dashboard"),
		Profession:     user.Profession,
		Email:          user.Email,
		Credits:        user.Credits,
		PlansGenerated: count,
		Tier:           user.Tier,
		MemberSince:    user.CreatedAt.Format("January 2006"),
	}
	s.render(w, http.StatusOK, "dashboard.html", data)
}

// BillingData is the template context for the billing page. The payment
// details are a mock; there is no payment processor behind this page.
type BillingData struct {
	PageData
	Tier           string
	Price          string
	Card           string
	NextBilling    string
	Credits        int
	CreditsUsed    int
	CreditsGranted int
}

func (s *Server) handleBilling(w http.ResponseWriter, r *http.Request, sess *Session) {
	user, err := s.store.GetUser(sess.UserID)
	if err != nil {
		s.logger.Error("billing user load failed", "user", sess.UserID, "error", err)
		s.renderServerError(w, r)
		return
	}

	price := "$0/month"
	if user.Tier == "Pro" {
		price = "$29/month"
	}

	data := BillingData{
		PageData:       s.pageData(r, "billing"),
		Tier:           user.Tier,
		Price:          price,
		Card:           "Visa ending in 4242",
		NextBilling:    time.Now().AddDate(0, 1, 0).Format("January 2, 2006"),
		Credits:        user.Credits,
		CreditsUsed:    store.DefaultCredits - user.Credits,
		CreditsGranted: store.DefaultCredits,
	}
	s.render(w, http.StatusOK, "billing.html", data)
}

// HistoryData is the template context for the generation history page.
type HistoryData struct {
	PageData
	Entries []*store.Generation
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request, sess *Session) {
	entries, err := s.store.ListGenerations(sess.UserID, 100)
	if err != nil {
		s.logger.Error("history list failed", "user", sess.UserID, "error", err)
		s.renderServerError(w, r)
		return
	}

	data := HistoryData{
		PageData: s.pageData(r, "history"),
		Entries:  entries,
	}
	s.render(w, http.StatusOK, "history.html", data)
}

// HistoryDetailData is the template context for a stored plan view.
type HistoryDetailData struct {
	PageData
	Entry    *store.Generation
	PlanHTML string
}

func (s *Server) handleHistoryDetail(w http.ResponseWriter, r *http.Request, sess *Session) {
	id := r.PathValue("id")
	entry, err := s.store.GetGeneration(sess.UserID, id)
	if errors.Is(err, store.ErrNotFound) {
		s.handleNotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("history detail failed", "id", id, "error", err)
		s.renderServerError(w, r)
		return
	}

	// Re-render the stored raw plan; stored text is already in the
	// section tag grammar.
	data := HistoryDetailData{
		PageData: s.pageData(r, "history"),
		Entry:    entry,
		PlanHTML: plan.RenderPlan(plan.ParseSections(entry.RawPlan)),
	}
	s.render(w, http.StatusOK, "history_detail.html", data)
}

// PersonalizeData is the template context for the settings page.
type PersonalizeData struct {
	PageData
	Profession      string
	DefaultModality string
	DefaultTone     string
	Professions     []string
	Saved           bool
}

func (s *Server) personalizeData(r *http.Request, user *store.User) PersonalizeData {
	professions := make([]string, 0, len(plan.Lenses()))
	for _, l := range plan.Lenses() {
		professions = append(professions, l.String())
	}
	return PersonalizeData{
		PageData:        s.pageData(r, "personalize"),
		Profession:      user.Profession,
		DefaultModality: user.DefaultModality,
		DefaultTone:     user.DefaultTone,
		Professions:     professions,
	}
}

func (s *Server) handlePersonalizePage(w http.ResponseWriter, r *http.Request, sess *Session) {
	user, err := s.store.GetUser(sess.UserID)
	if err != nil {
		s.logger.Error("personalize load failed", "user", sess.UserID, "error", err)
		s.renderServerError(w, r)
		return
	}
	s.render(w, http.StatusOK, "personalize.html", s.personalizeData(r, user))
}

func (s *Server) handlePersonalize(w http.ResponseWriter, r *http.Request, sess *Session) {
	profession := r.FormValue("profession")
	if profession == "" {
		profession = "Counselor"
	}
	defaultModality := r.FormValue("default_modality")
	defaultTone := r.FormValue("default_tone")
	if defaultTone == "" {
		defaultTone = "balanced"
	}

	if err := s.store.UpdatePreferences(sess.UserID, profession, defaultModality, defaultTone); err != nil {
		s.logger.Error("personalize save failed", "user", sess.UserID, "error", err)
		s.renderServerError(w, r)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
