package domain

import (
	"fmt"
	"time"

	"golang.org/x/oauth2"
)

type IntegrationType string

const (
	IntegrationFacebookAds   IntegrationType = "facebook_ads"
	IntegrationGoogleAdSense IntegrationType = "google_adsense"
)

func (t IntegrationType) Valid() bool {
	return t == IntegrationFacebookAds || t == IntegrationGoogleAdSense
}

func (t IntegrationType) Label() string {
	switch t {
	case IntegrationFacebookAds:
		return "Facebook Ads"
	case IntegrationGoogleAdSense:
		return "Google AdSense"
	default:
		return string(t)
	}
}

// Credentials é a variante de credenciais de uma integração. Só existem as
// implementações FacebookCredentials e GoogleCredentials.
type Credentials interface {
	Type() IntegrationType
	Account() string
	sealed()
}

// FacebookCredentials são as credenciais de uma conta do Facebook Ads.
// Campos nil não vieram do servidor (segredos podem ser omitidos na leitura).
type FacebookCredentials struct {
	AccountID   string  `mapstructure:"account_id"`
	AccessToken *string `mapstructure:"access_token"`
	BusinessID  *string `mapstructure:"business_id"`
	APIVersion  *string `mapstructure:"api_version"`
}

func (FacebookCredentials) Type() IntegrationType { return IntegrationFacebookAds }
func (c FacebookCredentials) Account() string     { return c.AccountID }
func (FacebookCredentials) sealed()               {}

// GoogleCredentials são as credenciais OAuth de uma conta do Google AdSense
type GoogleCredentials struct {
	AccountID    string     `mapstructure:"account_id"`
	AccessToken  *string    `mapstructure:"access_token"`
	RefreshToken *string    `mapstructure:"refresh_token"`
	ClientID     *string    `mapstructure:"client_id"`
	ClientSecret *string    `mapstructure:"client_secret"`
	TokenExpiry  *time.Time `mapstructure:"token_expiry"`
}

func (GoogleCredentials) Type() IntegrationType { return IntegrationGoogleAdSense }
func (c GoogleCredentials) Account() string     { return c.AccountID }
func (GoogleCredentials) sealed()               {}

// OAuthToken monta o token OAuth a partir das credenciais armazenadas.
// Sem data de expiração o token é considerado sem validade definida.
func (c GoogleCredentials) OAuthToken() *oauth2.Token {
	token := &oauth2.Token{TokenType: "Bearer"}
	if c.AccessToken != nil {
		token.AccessToken = *c.AccessToken
	}
	if c.RefreshToken != nil {
		token.RefreshToken = *c.RefreshToken
	}
	if c.TokenExpiry != nil {
		token.Expiry = *c.TokenExpiry
	}
	return token
}

// Integration é uma conta de anúncios conectada. O tipo é definido pela
// variante de credenciais e não muda depois da criação.
type Integration struct {
	ID          int
	CreatedAt   time.Time
	Credentials Credentials
}

func (i Integration) Type() IntegrationType {
	if i.Credentials == nil {
		return ""
	}
	return i.Credentials.Type()
}

func (i Integration) Facebook() (FacebookCredentials, bool) {
	c, ok := i.Credentials.(FacebookCredentials)
	return c, ok
}

func (i Integration) Google() (GoogleCredentials, bool) {
	c, ok := i.Credentials.(GoogleCredentials)
	return c, ok
}

// Description resume a conta para listagem, ex.: "Conta 123 · Business 456"
func (i Integration) Description() string {
	if i.Credentials == nil {
		return ""
	}

	if fb, ok := i.Facebook(); ok && fb.BusinessID != nil && *fb.BusinessID != "" {
		return fmt.Sprintf("Conta %s · Business %s", fb.AccountID, *fb.BusinessID)
	}

	return fmt.Sprintf("Conta %s", i.Credentials.Account())
}

// FacebookConnect é o payload de criação de uma integração do Facebook Ads
type FacebookConnect struct {
	AccountID   string
	AccessToken string
	BusinessID  *string
	APIVersion  *string
}

// AdSenseConnect é o payload de criação de uma integração do Google AdSense.
// ExpiresIn e TokenExpiry seguem para o servidor sem reconciliação local.
type AdSenseConnect struct {
	AccountID    string
	AccessToken  string
	ClientID     string
	ClientSecret string
	RefreshToken string
	ExpiresIn    *int
	TokenExpiry  *string
}

// FacebookUpdate é uma atualização parcial: campos nil não são enviados
type FacebookUpdate struct {
	AccountID   *string
	AccessToken *string
	BusinessID  *string
	APIVersion  *string
}

// AdSenseUpdate é uma atualização parcial: campos nil não são enviados
type AdSenseUpdate struct {
	AccountID    *string
	AccessToken  *string
	RefreshToken *string
	ClientID     *string
	ClientSecret *string
	TokenExpiry  *string
	ExpiresIn    *int
}
