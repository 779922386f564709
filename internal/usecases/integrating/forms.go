package integrating

import (
	"strconv"
	"strings"

	"github.com/vfg2006/insights-dashboard/internal/domain"
)

// FacebookConnectForm começa sempre vazio; BusinessID e APIVersion são opcionais
type FacebookConnectForm struct {
	AccountID   string
	AccessToken string
	BusinessID  string
	APIVersion  string
}

func (f *FacebookConnectForm) Validate() error {
	check := &fieldCheck{}
	check.required("account_id", f.AccountID)
	check.required("access_token", f.AccessToken)
	return check.err()
}

func (f *FacebookConnectForm) Payload() (domain.FacebookConnect, error) {
	if err := f.Validate(); err != nil {
		return domain.FacebookConnect{}, err
	}

	return domain.FacebookConnect{
		AccountID:   strings.TrimSpace(f.AccountID),
		AccessToken: strings.TrimSpace(f.AccessToken),
		BusinessID:  optional(f.BusinessID),
		APIVersion:  optional(f.APIVersion),
	}, nil
}

func (f *FacebookConnectForm) Reset() {
	*f = FacebookConnectForm{}
}

// AdSenseConnectForm guarda os campos como digitados. ExpiresIn, quando
// preenchido, precisa ser um número inteiro de segundos.
type AdSenseConnectForm struct {
	AccountID    string
	AccessToken  string
	ClientID     string
	ClientSecret string
	RefreshToken string
	ExpiresIn    string
	TokenExpiry  string
}

func (f *AdSenseConnectForm) Validate() error {
	check := &fieldCheck{}
	check.required("account_id", f.AccountID)
	check.required("access_token", f.AccessToken)
	check.required("client_id", f.ClientID)
	check.required("client_secret", f.ClientSecret)
	check.required("refresh_token", f.RefreshToken)

	if _, err := f.expiresIn(); err != nil {
		check.invalid("expires_in")
	}

	return check.err()
}

func (f *AdSenseConnectForm) expiresIn() (*int, error) {
	raw := strings.TrimSpace(f.ExpiresIn)
	if raw == "" {
		return nil, nil
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &seconds, nil
}

// Payload repassa expires_in e token_expiry juntos quando os dois vêm
// preenchidos; a precedência é decidida pelo servidor.
func (f *AdSenseConnectForm) Payload() (domain.AdSenseConnect, error) {
	if err := f.Validate(); err != nil {
		return domain.AdSenseConnect{}, err
	}

	expiresIn, _ := f.expiresIn()

	return domain.AdSenseConnect{
		AccountID:    strings.TrimSpace(f.AccountID),
		AccessToken:  strings.TrimSpace(f.AccessToken),
		ClientID:     strings.TrimSpace(f.ClientID),
		ClientSecret: strings.TrimSpace(f.ClientSecret),
		RefreshToken: strings.TrimSpace(f.RefreshToken),
		ExpiresIn:    expiresIn,
		TokenExpiry:  optional(f.TokenExpiry),
	}, nil
}

func (f *AdSenseConnectForm) Reset() {
	*f = AdSenseConnectForm{}
}
