package handler

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/vfg2006/insights-dashboard/infrastructure/backend/backenddomain"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/auth"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/store"
	"github.com/vfg2006/insights-dashboard/pkg/apiErrors"
	"github.com/vfg2006/insights-dashboard/pkg/log"
	"github.com/vfg2006/insights-dashboard/pkg/middleware"
)

const (
	minPasswordLength = 6
	maxNameLength     = 100
)

func userRead(u store.User) backenddomain.UserRead {
	return backenddomain.UserRead{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: backenddomain.Timestamp{Time: u.CreatedAt},
	}
}

func Login(service *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req backenddomain.LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if missing := requireFields(required{"email", req.Email}, required{"password", req.Password}); len(missing) > 0 {
			apiErrors.WriteValidationError(w, missing...)
			return
		}

		token, user, err := service.Login(r.Context(), req.Email, req.Password)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			apiErrors.WriteError(w, http.StatusUnauthorized, apiErrors.DetailIncorrectCredentials)
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro interno ao realizar login")
			apiErrors.WriteError(w, http.StatusInternalServerError, apiErrors.DetailInternalServer)
			return
		}

		writeJSON(w, r, http.StatusOK, backenddomain.TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			User:        userRead(user),
		})
	}
}

func validateUserCreate(req backenddomain.UserCreate) []apiErrors.FieldError {
	fieldErrors := requireFields(
		required{"name", req.Name},
		required{"email", req.Email},
		required{"password", req.Password},
	)

	if req.Email != "" && !strings.Contains(req.Email, "@") {
		fieldErrors = append(fieldErrors, apiErrors.Invalid("body", "email", "value is not a valid email address"))
	}
	if utf8.RuneCountInString(req.Name) > maxNameLength {
		fieldErrors = append(fieldErrors, apiErrors.Invalid("body", "name", "ensure this value has at most 100 characters"))
	}
	if req.Password != "" && utf8.RuneCountInString(req.Password) < minPasswordLength {
		fieldErrors = append(fieldErrors, apiErrors.Invalid("body", "password", "ensure this value has at least 6 characters"))
	}

	return fieldErrors
}

func CreateUser(service *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req backenddomain.UserCreate
		if !decodeBody(w, r, &req) {
			return
		}

		if fieldErrors := validateUserCreate(req); len(fieldErrors) > 0 {
			apiErrors.WriteValidationError(w, fieldErrors...)
			return
		}

		user, err := service.Register(r.Context(), req.Name, req.Email, req.Password)
		if errors.Is(err, auth.ErrUserAlreadyExists) {
			apiErrors.WriteError(w, http.StatusBadRequest, apiErrors.DetailEmailRegistered)
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao criar usuário")
			apiErrors.WriteError(w, http.StatusInternalServerError, apiErrors.DetailInternalServer)
			return
		}

		writeJSON(w, r, http.StatusCreated, userRead(user))
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			apiErrors.WriteError(w, http.StatusUnauthorized, apiErrors.DetailNotAuthenticated)
			return
		}

		user, err := service.User(r.Context(), userID)
		if err != nil {
			apiErrors.WriteError(w, http.StatusUnauthorized, apiErrors.DetailUserNotFound)
			return
		}

		writeJSON(w, r, http.StatusOK, userRead(user))
	}
}

// existingUser resolve o usuário das rotas legadas, que recebem o id no caminho
// e não exigem autenticação
func existingUser(w http.ResponseWriter, r *http.Request, service *auth.Service) (int, bool) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return 0, false
	}

	if _, err := service.User(r.Context(), userID); err != nil {
		apiErrors.WriteError(w, http.StatusNotFound, apiErrors.DetailUserNotFound)
		return 0, false
	}

	return userID, true
}
