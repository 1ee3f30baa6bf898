package web

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/sessionarchitect/sessionarchitect/internal/store"
)

// AuthPageData is the template context for the login and signup pages.
type AuthPageData struct {
	PageData
	Error string
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "login.html", AuthPageData{PageData: s.pageData(r, "login")})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	failed := func() {
		data := AuthPageData{PageData: s.pageData(r, "login"), Error: "Invalid email or password."}
		s.render(w, http.StatusUnauthorized, "login.html", data)
	}

	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error("login lookup failed", "error", err)
		}
		failed()
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		failed()
		return
	}

	sess := s.sessions.Create(user.ID, user.Name, user.Email)
	setSessionCookie(w, sess.Token, sess.ExpiresAt)
	s.logger.Info("login", "user", user.ID)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleSignupPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "signup.html", AuthPageData{PageData: s.pageData(r, "signup")})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")
	profession := r.FormValue("profession")
	if profession == "" {
		profession = "Counselor"
	}

	fail := func(msg string) {
		data := AuthPageData{PageData: s.pageData(r, "signup"), Error: msg}
		s.render(w, http.StatusBadRequest, "signup.html", data)
	}

	if name == "" || email == "" || password == "" {
		fail("Name, email, and password are required.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("password hash failed", "error", err)
		fail("Could not create account.")
		return
	}

	user, err := s.store.CreateUser(name, email, string(hash), profession)
	if err != nil {
		s.logger.Warn("signup failed", "email", email, "error", err)
		fail("An account with that email already exists.")
		return
	}

	sess := s.sessions.Create(user.ID, user.Name, user.Email)
	setSessionCookie(w, sess.Token, sess.ExpiresAt)
	s.logger.Info("signup", "user", user.ID, "profession", profession)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		s.sessions.Destroy(c.Value)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
