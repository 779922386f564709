package backenddomain

const (
	TypeFacebookAds   = "facebook_ads"
	TypeGoogleAdSense = "google_adsense"
)

type FacebookIntegrationCreate struct {
	AccountID   string  `json:"account_id"`
	AccessToken string  `json:"access_token"`
	BusinessID  *string `json:"business_id,omitempty"`
	APIVersion  *string `json:"api_version,omitempty"`
}

type AdSenseIntegrationCreate struct {
	AccountID    string  `json:"account_id"`
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	ClientID     string  `json:"client_id"`
	ClientSecret string  `json:"client_secret"`
	TokenExpiry  *string `json:"token_expiry,omitempty"`
	ExpiresIn    *int    `json:"expires_in,omitempty"`
}

// FacebookIntegrationUpdate é parcial: campos nil não entram no corpo
type FacebookIntegrationUpdate struct {
	AccountID   *string `json:"account_id,omitempty"`
	AccessToken *string `json:"access_token,omitempty"`
	BusinessID  *string `json:"business_id,omitempty"`
	APIVersion  *string `json:"api_version,omitempty"`
}

// AdSenseIntegrationUpdate é parcial: campos nil não entram no corpo
type AdSenseIntegrationUpdate struct {
	AccountID    *string `json:"account_id,omitempty"`
	AccessToken  *string `json:"access_token,omitempty"`
	RefreshToken *string `json:"refresh_token,omitempty"`
	ClientID     *string `json:"client_id,omitempty"`
	ClientSecret *string `json:"client_secret,omitempty"`
	TokenExpiry  *string `json:"token_expiry,omitempty"`
	ExpiresIn    *int    `json:"expires_in,omitempty"`
}

// IntegrationRead traz as credenciais sem tipo; o formato depende de Type
type IntegrationRead struct {
	ID          int            `json:"id"`
	Type        string         `json:"type"`
	Credentials map[string]any `json:"credentials"`
	CreatedAt   Timestamp      `json:"created_at"`
}
