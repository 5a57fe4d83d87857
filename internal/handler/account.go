package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/minishop/minishop-go/internal/crypto"
	"github.com/minishop/minishop-go/internal/middleware"
	"github.com/minishop/minishop-go/internal/model"
	"github.com/minishop/minishop-go/internal/service"
)

// AccountHandler handles HTTP requests for registration, login and logout.
type AccountHandler struct {
	service        *service.AccountService
	render         *Renderer
	sessionSecret  string
	sessionExpiry  time.Duration
	rememberExpiry time.Duration
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc *service.AccountService, render *Renderer, secret string, expiry, rememberExpiry time.Duration) *AccountHandler {
	return &AccountHandler{
		service:        svc,
		render:         render,
		sessionSecret:  secret,
		sessionExpiry:  expiry,
		rememberExpiry: rememberExpiry,
	}
}

// HandleRegisterForm handles GET /registre requests.
func (h *AccountHandler) HandleRegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusOK, "registre.html", &pageData{Title: "Register"})
}

// HandleRegisterSubmit handles POST /registre requests. Success redirects to
// the login form; any rejection re-renders the form with per-field reasons and
// writes nothing.
func (h *AccountHandler) HandleRegisterSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	if err := r.ParseForm(); err != nil {
		h.render.ErrorPage(w, r, http.StatusBadRequest, "There is an error")
		return
	}

	form := model.RegisterForm{
		Username:        r.PostFormValue("username"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}

	_, err := h.service.Register(r.Context(), form)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			h.render.Render(w, r, http.StatusUnprocessableEntity, "registre.html", &pageData{
				Title:  "Register",
				Form:   map[string]string{"username": form.Username, "email": form.Email},
				Errors: verr.Fields,
			})
			return
		}
		slog.Error("registration failed", "error", err)
		h.render.ErrorPage(w, r, http.StatusInternalServerError, "There is an error")
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// HandleLoginForm handles GET /login requests.
func (h *AccountHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusOK, "login.html", &pageData{Title: "Log in"})
}

// HandleLoginSubmit handles POST /login requests. A wrong password and an
// unknown email produce the same generic message and the same page.
func (h *AccountHandler) HandleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	if err := r.ParseForm(); err != nil {
		h.render.ErrorPage(w, r, http.StatusBadRequest, "There is an error")
		return
	}

	form := model.LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Remember: r.PostFormValue("remember") != "",
	}

	user, err := h.service.Login(r.Context(), form)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.render.Render(w, r, http.StatusUnauthorized, "login.html", &pageData{
				Title:   "Log in",
				Form:    map[string]string{"email": form.Email},
				Message: "Login unsuccessful",
			})
			return
		}
		slog.Error("login failed", "error", err)
		h.render.ErrorPage(w, r, http.StatusInternalServerError, "There is an error")
		return
	}

	expiry := h.sessionExpiry
	if form.Remember {
		expiry = h.rememberExpiry
	}

	token, err := crypto.GenerateSessionToken(user.ID, user.Username, h.sessionSecret, expiry)
	if err != nil {
		slog.Error("issuing session token failed", "error", err)
		h.render.ErrorPage(w, r, http.StatusInternalServerError, "There is an error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(expiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogout handles GET /logout requests: expire the cookie and go home.
func (h *AccountHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
