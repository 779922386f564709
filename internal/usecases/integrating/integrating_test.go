package integrating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/insights-dashboard/infrastructure/backend/mocks"
	"github.com/vfg2006/insights-dashboard/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestFacebookConnectForm(t *testing.T) {
	tests := []struct {
		name       string
		form       FacebookConnectForm
		wantFields []string
		want       domain.FacebookConnect
	}{
		{
			name:       "vazio",
			form:       FacebookConnectForm{},
			wantFields: []string{"account_id", "access_token"},
		},
		{
			name:       "só espaços no token",
			form:       FacebookConnectForm{AccountID: "act_1", AccessToken: "   "},
			wantFields: []string{"access_token"},
		},
		{
			name: "sem business id",
			form: FacebookConnectForm{AccountID: " act_1 ", AccessToken: "tok"},
			want: domain.FacebookConnect{AccountID: "act_1", AccessToken: "tok"},
		},
		{
			name: "completo",
			form: FacebookConnectForm{AccountID: "act_1", AccessToken: "tok", BusinessID: "biz", APIVersion: "v19.0"},
			want: domain.FacebookConnect{AccountID: "act_1", AccessToken: "tok", BusinessID: strPtr("biz"), APIVersion: strPtr("v19.0")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := tt.form.Payload()
			if tt.wantFields != nil {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantFields, validationErr.Fields)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, payload)
		})
	}
}

func TestAdSenseConnectForm(t *testing.T) {
	form := AdSenseConnectForm{AccountID: "pub-1", AccessToken: "a"}

	var validationErr *ValidationError
	require.ErrorAs(t, form.Validate(), &validationErr)
	assert.Equal(t, []string{"client_id", "client_secret", "refresh_token"}, validationErr.Fields)

	form.ClientID = "c"
	form.ClientSecret = "s"
	form.RefreshToken = "r"
	form.ExpiresIn = "uma hora"
	require.ErrorAs(t, form.Validate(), &validationErr)
	assert.Equal(t, []string{"expires_in"}, validationErr.Fields)

	form.ExpiresIn = "3600"
	form.TokenExpiry = "2030-01-01T00:00:00Z"
	payload, err := form.Payload()
	require.NoError(t, err)
	require.NotNil(t, payload.ExpiresIn)
	assert.Equal(t, 3600, *payload.ExpiresIn)
	assert.Equal(t, "2030-01-01T00:00:00Z", *payload.TokenExpiry)

	form.Reset()
	assert.Equal(t, AdSenseConnectForm{}, form)
}

func TestEditor_FacebookSecretPolicy(t *testing.T) {
	integration := domain.Integration{
		ID: 4,
		Credentials: domain.FacebookCredentials{
			AccountID:  "act_1",
			BusinessID: strPtr("biz"),
			APIVersion: strPtr("v18.0"),
		},
	}

	editor, err := NewEditor(integration)
	require.NoError(t, err)
	require.NotNil(t, editor.Facebook)
	assert.Nil(t, editor.AdSense)
	assert.Empty(t, editor.Facebook.AccessToken)

	t.Run("token omitido continua omitido", func(t *testing.T) {
		update, err := editor.FacebookUpdate()
		require.NoError(t, err)
		assert.Equal(t, "act_1", *update.AccountID)
		assert.Nil(t, update.AccessToken)
		assert.Equal(t, "biz", *update.BusinessID)
		assert.Equal(t, "v18.0", *update.APIVersion)
	})

	t.Run("limpar business id envia string vazia", func(t *testing.T) {
		editor.Facebook.BusinessID = ""
		update, err := editor.FacebookUpdate()
		require.NoError(t, err)
		require.NotNil(t, update.BusinessID)
		assert.Empty(t, *update.BusinessID)
	})

	t.Run("conta obrigatória", func(t *testing.T) {
		editor.Facebook.AccountID = ""
		_, err := editor.FacebookUpdate()
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	_, err = editor.AdSenseUpdate()
	assert.Error(t, err)
}

func TestEditor_FacebookWithoutBusinessIDOmitsField(t *testing.T) {
	editor, err := NewEditor(domain.Integration{ID: 1, Credentials: domain.FacebookCredentials{AccountID: "act_1", AccessToken: strPtr("tok")}})
	require.NoError(t, err)

	update, err := editor.FacebookUpdate()
	require.NoError(t, err)
	assert.Nil(t, update.BusinessID)
	assert.Equal(t, "tok", *update.AccessToken)
}

func TestEditor_SubmitAdSense(t *testing.T) {
	ctrl := gomock.NewController(t)
	updater := mocks.NewMockIntegrator(ctrl)
	ctx := context.Background()

	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	integration := domain.Integration{
		ID: 7,
		Credentials: domain.GoogleCredentials{
			AccountID:   "pub-1",
			ClientID:    strPtr("client"),
			TokenExpiry: &expiry,
		},
	}

	editor, err := NewEditor(integration)
	require.NoError(t, err)
	assert.Equal(t, "2030-01-01T00:00:00Z", editor.AdSense.TokenExpiry)

	editor.AdSense.RefreshToken = "novo-refresh"

	updated := &domain.Integration{ID: 7, Credentials: domain.GoogleCredentials{AccountID: "pub-1"}}
	updater.EXPECT().UpdateAdSenseIntegration(ctx, 7, domain.AdSenseUpdate{
		AccountID:    strPtr("pub-1"),
		ClientID:     strPtr("client"),
		RefreshToken: strPtr("novo-refresh"),
		TokenExpiry:  strPtr("2030-01-01T00:00:00Z"),
	}).Return(updated, nil)

	result, err := editor.Submit(ctx, updater)
	require.NoError(t, err)
	assert.Equal(t, updated, result)
}

func TestEditor_SubmitValidationSkipsNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	updater := mocks.NewMockIntegrator(ctrl)

	editor, err := NewEditor(domain.Integration{ID: 1, Credentials: domain.FacebookCredentials{AccountID: "act_1"}})
	require.NoError(t, err)
	editor.Facebook.AccountID = "  "

	_, err = editor.Submit(context.Background(), updater)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestNewEditor_WithoutCredentials(t *testing.T) {
	_, err := NewEditor(domain.Integration{ID: 1})
	assert.Error(t, err)
}
