package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/insights-dashboard/infrastructure/backend/backenddomain"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/auth"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/store"
	"github.com/vfg2006/insights-dashboard/pkg/apiErrors"
	"github.com/vfg2006/insights-dashboard/pkg/log"
	"github.com/vfg2006/insights-dashboard/pkg/middleware"
)

// DefaultFacebookAPIVersion é usada quando a integração não informa api_version
const DefaultFacebookAPIVersion = "v18.0"

// Clock permite fixar o horário usado no cálculo de token_expiry
type Clock func() time.Time

func integrationRead(i store.Integration) backenddomain.IntegrationRead {
	return backenddomain.IntegrationRead{
		ID:          i.ID,
		Type:        i.Type,
		Credentials: i.Credentials,
		CreatedAt:   backenddomain.Timestamp{Time: i.CreatedAt},
	}
}

func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		apiErrors.WriteError(w, http.StatusNotFound, apiErrors.DetailIntegrationNotFound)
	case errors.Is(err, store.ErrTypeMismatch):
		apiErrors.WriteError(w, http.StatusBadRequest, apiErrors.DetailTypeMismatch)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao acessar integração")
		apiErrors.WriteError(w, http.StatusInternalServerError, apiErrors.DetailInternalServer)
	}
}

// tokenExpiry resolve a expiração do token: token_expiry tem precedência sobre
// expires_in. O resultado é sempre gravado em UTC.
func tokenExpiry(tokenExpiry *string, expiresIn *int, now time.Time) (string, bool, *apiErrors.FieldError) {
	if tokenExpiry != nil && *tokenExpiry != "" {
		expiry, err := backenddomain.ParseTimestamp(*tokenExpiry)
		if err != nil {
			fieldErr := apiErrors.Invalid("body", "token_expiry", "invalid datetime format")
			return "", false, &fieldErr
		}
		return expiry.UTC().Format(time.RFC3339), true, nil
	}

	if expiresIn != nil {
		return now.Add(time.Duration(*expiresIn) * time.Second).UTC().Format(time.RFC3339), true, nil
	}

	return "", false, nil
}

func ListIntegrations(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		integrations, err := st.Integrations(r.Context(), userID)
		if err != nil {
			writeStoreError(w, r, err)
			return
		}

		response := make([]backenddomain.IntegrationRead, 0, len(integrations))
		for _, i := range integrations {
			response = append(response, integrationRead(i))
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}

func connectFacebook(w http.ResponseWriter, r *http.Request, st store.Store, userID int) {
	var req backenddomain.FacebookIntegrationCreate
	if !decodeBody(w, r, &req) {
		return
	}

	if missing := requireFields(required{"account_id", req.AccountID}, required{"access_token", req.AccessToken}); len(missing) > 0 {
		apiErrors.WriteValidationError(w, missing...)
		return
	}

	credentials := map[string]any{
		"account_id":   req.AccountID,
		"access_token": req.AccessToken,
		"api_version":  DefaultFacebookAPIVersion,
	}
	if req.BusinessID != nil {
		credentials["business_id"] = *req.BusinessID
	}
	if req.APIVersion != nil && *req.APIVersion != "" {
		credentials["api_version"] = *req.APIVersion
	}

	integration, err := st.CreateIntegration(r.Context(), userID, backenddomain.TypeFacebookAds, credentials)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	log.ForContext(r.Context()).WithFields(log.Fields{
		"user_id":        userID,
		"integration_id": integration.ID,
	}).Info("integrations: Facebook Ads conectado")

	writeJSON(w, r, http.StatusCreated, integrationRead(integration))
}

func connectAdSense(w http.ResponseWriter, r *http.Request, st store.Store, now Clock, userID int) {
	var req backenddomain.AdSenseIntegrationCreate
	if !decodeBody(w, r, &req) {
		return
	}

	fieldErrors := requireFields(
		required{"account_id", req.AccountID},
		required{"access_token", req.AccessToken},
		required{"refresh_token", req.RefreshToken},
		required{"client_id", req.ClientID},
		required{"client_secret", req.ClientSecret},
	)

	// expires_in zero não define expiração na criação
	expiresIn := req.ExpiresIn
	if expiresIn != nil && *expiresIn == 0 {
		expiresIn = nil
	}
	expiry, hasExpiry, expiryErr := tokenExpiry(req.TokenExpiry, expiresIn, now())
	if expiryErr != nil {
		fieldErrors = append(fieldErrors, *expiryErr)
	}

	if len(fieldErrors) > 0 {
		apiErrors.WriteValidationError(w, fieldErrors...)
		return
	}

	credentials := map[string]any{
		"account_id":    req.AccountID,
		"access_token":  req.AccessToken,
		"refresh_token": req.RefreshToken,
		"client_id":     req.ClientID,
		"client_secret": req.ClientSecret,
	}
	if hasExpiry {
		credentials["token_expiry"] = expiry
	}

	integration, err := st.CreateIntegration(r.Context(), userID, backenddomain.TypeGoogleAdSense, credentials)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	log.ForContext(r.Context()).WithFields(log.Fields{
		"user_id":        userID,
		"integration_id": integration.ID,
	}).Info("integrations: Google AdSense conectado")

	writeJSON(w, r, http.StatusCreated, integrationRead(integration))
}

func ConnectFacebook(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())
		connectFacebook(w, r, st, userID)
	}
}

// ConnectFacebookForUser é a variante legada, sem autenticação
func ConnectFacebookForUser(st store.Store, users *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := existingUser(w, r, users); ok {
			connectFacebook(w, r, st, userID)
		}
	}
}

func ConnectAdSense(st store.Store, now Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())
		connectAdSense(w, r, st, now, userID)
	}
}

// ConnectAdSenseForUser é a variante legada, sem autenticação
func ConnectAdSenseForUser(st store.Store, users *auth.Service, now Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := existingUser(w, r, users); ok {
			connectAdSense(w, r, st, now, userID)
		}
	}
}

// setIfPresent grava value em key quando ele veio preenchido; vazio mantém o valor atual
func setIfPresent(credentials map[string]any, key string, value *string) {
	if value != nil && *value != "" {
		credentials[key] = *value
	}
}

// UpdateFacebook aplica uma atualização parcial. business_id vazio remove o campo.
func UpdateFacebook(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req backenddomain.FacebookIntegrationUpdate
		if !decodeBody(w, r, &req) {
			return
		}

		userID, _ := middleware.UserID(r.Context())
		integration, err := st.UpdateIntegration(r.Context(), userID, id, backenddomain.TypeFacebookAds, func(c map[string]any) {
			setIfPresent(c, "account_id", req.AccountID)
			setIfPresent(c, "access_token", req.AccessToken)
			setIfPresent(c, "api_version", req.APIVersion)

			if req.BusinessID != nil {
				if *req.BusinessID == "" {
					delete(c, "business_id")
				} else {
					c["business_id"] = *req.BusinessID
				}
			}
		})
		if err != nil {
			writeStoreError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, integrationRead(integration))
	}
}

// UpdateAdSense aplica uma atualização parcial. Segredos vazios mantêm o valor atual.
func UpdateAdSense(st store.Store, now Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req backenddomain.AdSenseIntegrationUpdate
		if !decodeBody(w, r, &req) {
			return
		}

		expiry, hasExpiry, expiryErr := tokenExpiry(req.TokenExpiry, req.ExpiresIn, now())
		if expiryErr != nil {
			apiErrors.WriteValidationError(w, *expiryErr)
			return
		}

		userID, _ := middleware.UserID(r.Context())
		integration, err := st.UpdateIntegration(r.Context(), userID, id, backenddomain.TypeGoogleAdSense, func(c map[string]any) {
			setIfPresent(c, "account_id", req.AccountID)
			setIfPresent(c, "access_token", req.AccessToken)
			setIfPresent(c, "refresh_token", req.RefreshToken)
			setIfPresent(c, "client_id", req.ClientID)
			setIfPresent(c, "client_secret", req.ClientSecret)

			if hasExpiry {
				c["token_expiry"] = expiry
			}
		})
		if err != nil {
			writeStoreError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, integrationRead(integration))
	}
}

func DeleteIntegration(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		userID, _ := middleware.UserID(r.Context())
		if err := st.DeleteIntegration(r.Context(), userID, id); err != nil {
			writeStoreError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"user_id":        userID,
			"integration_id": id,
		}).Info("integrations: integração removida")

		w.WriteHeader(http.StatusNoContent)
	}
}
