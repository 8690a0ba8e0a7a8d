package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/julesc00/planetaryApi/internal/auth"
	"github.com/julesc00/planetaryApi/internal/mail"
	"github.com/julesc00/planetaryApi/internal/services"
	"github.com/julesc00/planetaryApi/internal/store"
	"github.com/julesc00/planetaryApi/types"
)

const defaultTokenTTL = 15 * time.Minute

// AuthHandler provides registration, login and password recovery endpoints.
type AuthHandler struct {
	userService *services.UserService
	mailer      mail.Mailer
	secret      []byte
	tokenTTL    time.Duration
}

// NewAuthHandler constructs an AuthHandler with the provided dependencies.
func NewAuthHandler(userService *services.UserService, mailer mail.Mailer, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthHandler{
		userService: userService,
		mailer:      mailer,
		secret:      []byte(jwtSecret),
		tokenTTL:    tokenTTL,
	}
}

// AuthRouter registers auth routes on the given router.
func AuthRouter(r chi.Router, userService *services.UserService, mailer mail.Mailer, jwtSecret string, tokenTTL time.Duration) {
	handler := NewAuthHandler(userService, mailer, jwtSecret, tokenTTL)

	r.Post("/register", handler.Register)
	r.Post("/login", handler.Login)
	r.Get("/retrieve_password/{email}", handler.RetrievePassword)
}

// RequireAuth enforces bearer authentication and injects the subject into context.
func (h *AuthHandler) RequireAuth(next http.Handler) http.Handler {
	return requireAuth(h.secret)(next)
}

// RequireAuth constructs auth middleware for other routers.
func RequireAuth(jwtSecret string) func(http.Handler) http.Handler {
	return requireAuth([]byte(jwtSecret))
}

func requireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := bearerToken(r)
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			subject, err := auth.VerifySubject(tokenString, secret)
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), contextSubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Register creates a new user account from form fields.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	firstname := strings.TrimSpace(r.PostFormValue("firstname"))
	lastname := strings.TrimSpace(r.PostFormValue("lastname"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	if firstname == "" || lastname == "" || email == "" || password == "" {
		writeMessage(w, http.StatusBadRequest, "missing required fields")
		return
	}

	if _, err := h.userService.GetByEmail(r.Context(), email); err == nil {
		writeMessage(w, http.StatusConflict, "That email already exists.")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		writeMessage(w, http.StatusInternalServerError, "failed to check user")
		return
	}

	_, err := h.userService.Create(r.Context(), types.User{
		Firstname: firstname,
		Lastname:  lastname,
		Email:     email,
		Password:  password,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeMessage(w, http.StatusConflict, "That email already exists.")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	writeMessage(w, http.StatusCreated, "User created successfully.")
}

// Login verifies credentials from a JSON or form body and returns a token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var email, password string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request")
			return
		}
		email, password = req.Email, req.Password
	} else {
		if err := r.ParseForm(); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request")
			return
		}
		email, password = r.PostFormValue("email"), r.PostFormValue("password")
	}

	user, err := h.userService.GetByEmailAndPassword(r.Context(), strings.TrimSpace(email), password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusUnauthorized, "Bad email or password")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "failed to authenticate")
		return
	}

	token, err := auth.IssueToken(user.Email, h.secret, h.tokenTTL)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to create token")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Message: "Login succeeded!", AccessToken: token})
}

// RetrievePassword emails the stored password to its owner.
func (h *AuthHandler) RetrievePassword(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := h.userService.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusUnauthorized, "That email doesn't exist")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "failed to check user")
		return
	}

	if err := h.mailer.Send(r.Context(), mail.PasswordRecovery(user.Email, user.Password)); err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to send email")
		return
	}

	writeMessage(w, http.StatusOK, fmt.Sprintf("Password sent to %s", user.Email))
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token issued on login.
type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

func bearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", errors.New("missing authorization")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("invalid authorization")
	}
	return token, nil
}
