package integrating

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/insights-dashboard/internal/domain"
)

// Updater aplica a atualização parcial de uma integração no servidor
type Updater interface {
	UpdateFacebookIntegration(ctx context.Context, id int, update domain.FacebookUpdate) (*domain.Integration, error)
	UpdateAdSenseIntegration(ctx context.Context, id int, update domain.AdSenseUpdate) (*domain.Integration, error)
}

type FacebookEditForm struct {
	AccountID   string
	AccessToken string
	BusinessID  string
	APIVersion  string
}

type AdSenseEditForm struct {
	AccountID    string
	AccessToken  string
	RefreshToken string
	ClientID     string
	ClientSecret string
	TokenExpiry  string
}

// Editor edita as credenciais de uma integração existente. Os campos são
// semeados com os valores atuais; segredos omitidos pelo servidor chegam vazios
// e, se continuarem vazios, não são enviados.
type Editor struct {
	integration domain.Integration
	hadBusiness bool

	Facebook *FacebookEditForm
	AdSense  *AdSenseEditForm
}

func NewEditor(integration domain.Integration) (*Editor, error) {
	editor := &Editor{integration: integration}

	switch credentials := integration.Credentials.(type) {
	case domain.FacebookCredentials:
		editor.Facebook = &FacebookEditForm{
			AccountID:   credentials.AccountID,
			AccessToken: deref(credentials.AccessToken),
			BusinessID:  deref(credentials.BusinessID),
			APIVersion:  deref(credentials.APIVersion),
		}
		editor.hadBusiness = editor.Facebook.BusinessID != ""
	case domain.GoogleCredentials:
		form := &AdSenseEditForm{
			AccountID:    credentials.AccountID,
			AccessToken:  deref(credentials.AccessToken),
			RefreshToken: deref(credentials.RefreshToken),
			ClientID:     deref(credentials.ClientID),
			ClientSecret: deref(credentials.ClientSecret),
		}
		if credentials.TokenExpiry != nil {
			form.TokenExpiry = credentials.TokenExpiry.UTC().Format(time.RFC3339)
		}
		editor.AdSense = form
	default:
		return nil, fmt.Errorf("integração %d sem credenciais conhecidas", integration.ID)
	}

	return editor, nil
}

func (e *Editor) Integration() domain.Integration {
	return e.integration
}

func (e *Editor) ID() int {
	return e.integration.ID
}

func (e *Editor) Validate() error {
	check := &fieldCheck{}
	switch {
	case e.Facebook != nil:
		check.required("account_id", e.Facebook.AccountID)
	case e.AdSense != nil:
		check.required("account_id", e.AdSense.AccountID)
	}
	return check.err()
}

// FacebookUpdate monta o conjunto editável completo. business_id vazio só é
// enviado quando a integração tinha um valor, o que remove o business id.
func (e *Editor) FacebookUpdate() (domain.FacebookUpdate, error) {
	if e.Facebook == nil {
		return domain.FacebookUpdate{}, fmt.Errorf("integração %d não é do Facebook Ads", e.ID())
	}
	if err := e.Validate(); err != nil {
		return domain.FacebookUpdate{}, err
	}

	accountID := strings.TrimSpace(e.Facebook.AccountID)
	update := domain.FacebookUpdate{
		AccountID:   &accountID,
		AccessToken: optional(e.Facebook.AccessToken),
		BusinessID:  optional(e.Facebook.BusinessID),
		APIVersion:  optional(e.Facebook.APIVersion),
	}

	if update.BusinessID == nil && e.hadBusiness {
		cleared := ""
		update.BusinessID = &cleared
	}

	return update, nil
}

func (e *Editor) AdSenseUpdate() (domain.AdSenseUpdate, error) {
	if e.AdSense == nil {
		return domain.AdSenseUpdate{}, fmt.Errorf("integração %d não é do Google AdSense", e.ID())
	}
	if err := e.Validate(); err != nil {
		return domain.AdSenseUpdate{}, err
	}

	accountID := strings.TrimSpace(e.AdSense.AccountID)
	return domain.AdSenseUpdate{
		AccountID:    &accountID,
		AccessToken:  optional(e.AdSense.AccessToken),
		RefreshToken: optional(e.AdSense.RefreshToken),
		ClientID:     optional(e.AdSense.ClientID),
		ClientSecret: optional(e.AdSense.ClientSecret),
		TokenExpiry:  optional(e.AdSense.TokenExpiry),
	}, nil
}

// Submit envia a atualização do provedor da integração
func (e *Editor) Submit(ctx context.Context, updater Updater) (*domain.Integration, error) {
	if e.Facebook != nil {
		update, err := e.FacebookUpdate()
		if err != nil {
			return nil, err
		}
		return updater.UpdateFacebookIntegration(ctx, e.ID(), update)
	}

	update, err := e.AdSenseUpdate()
	if err != nil {
		return nil, err
	}
	return updater.UpdateAdSenseIntegration(ctx, e.ID(), update)
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
