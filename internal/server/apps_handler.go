package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/alshawwaf/dev-hub/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type appInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	URL         string `json:"url" validate:"required,url"`
	GithubURL   string `json:"github_url" validate:"required,url"`
	Category    string `json:"category" validate:"required"`
	Icon        string `json:"icon"`
	IsLive      bool   `json:"is_live"`
}

func (s *server) decodeAppInput(w http.ResponseWriter, r *http.Request) (appInput, bool) {
	var input appInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return input, false
	}
	if err := s.validate.Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			errorResponse(w, http.StatusUnprocessableEntity, "Invalid field: "+validationErrors[0].Field())
			return input, false
		}
		errorResponse(w, http.StatusUnprocessableEntity, "Validation failed")
		return input, false
	}
	return input, true
}

func appIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "app-id"), 10, 64)
}

func (s *server) handleListApps(w http.ResponseWriter, r *http.Request) {
	apps, err := s.appRepository.GetAll(r.Context())
	if err != nil {
		s.logger.Error("error listing apps", "error", err)
		errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	jsonResponse(w, http.StatusOK, apps)
}

func (s *server) handleCreateApp(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	input, ok := s.decodeAppInput(w, r)
	if !ok {
		return
	}
	app := domain.Application{
		Name:        input.Name,
		Description: input.Description,
		URL:         input.URL,
		GithubURL:   input.GithubURL,
		Category:    input.Category,
		Icon:        input.Icon,
		IsLive:      input.IsLive,
	}
	if err := s.appRepository.Create(r.Context(), &app); err != nil {
		s.logger.Error("error creating app", "error", err, "userId", user.ID)
		errorResponse(w, http.StatusInternalServerError, "Failed to create application")
		return
	}
	jsonResponse(w, http.StatusOK, app)
}

func (s *server) handleUpdateApp(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	id, err := appIDParam(r)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid application id")
		return
	}
	input, ok := s.decodeAppInput(w, r)
	if !ok {
		return
	}
	app := domain.Application{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		URL:         input.URL,
		GithubURL:   input.GithubURL,
		Category:    input.Category,
		Icon:        input.Icon,
		IsLive:      input.IsLive,
	}
	if err := s.appRepository.Update(r.Context(), &app); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorResponse(w, http.StatusNotFound, "Application not found")
			return
		}
		s.logger.Error("error updating app", "error", err, "appId", id, "userId", user.ID)
		errorResponse(w, http.StatusInternalServerError, "Failed to update application")
		return
	}
	updated, err := s.appRepository.GetByID(r.Context(), id)
	if err != nil {
		s.logger.Error("error reloading app", "error", err, "appId", id)
		errorResponse(w, http.StatusInternalServerError, "Failed to update application")
		return
	}
	jsonResponse(w, http.StatusOK, updated)
}

func (s *server) handleDeleteApp(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	id, err := appIDParam(r)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid application id")
		return
	}
	if err := s.appRepository.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorResponse(w, http.StatusNotFound, "Application not found")
			return
		}
		s.logger.Error("error deleting app", "error", err, "appId", id, "userId", user.ID)
		errorResponse(w, http.StatusInternalServerError, "Failed to delete application")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Application deleted"})
}
