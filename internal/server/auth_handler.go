package server

import (
	"errors"
	"net/http"

	"github.com/alshawwaf/dev-hub/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        domain.User `json:"user"`
}

// handleLogin accepts the form-encoded credential pair and returns a bearer
// token plus the user it identifies. Unknown users and bad passwords get the
// same response.
func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		errorResponse(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := s.userRepository.GetByEmail(r.Context(), username)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("error getting user by email", "error", err)
			errorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		errorResponse(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password))
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("error issuing token", "error", err, "userId", user.ID)
		errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	jsonResponse(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}
