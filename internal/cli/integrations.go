package cli

import (
	"context"
	"fmt"

	"github.com/vfg2006/insights-dashboard/internal/usecases/integrating"
)

const keepCurrent = " (Enter mantém o atual)"

func (c *CLI) Integrations(ctx context.Context, _ []string) error {
	err := c.app.LoadIntegrations(ctx)

	snapshot := c.app.Snapshot()
	if snapshot.IntegrationsError != "" {
		c.println(snapshot.IntegrationsError)
	}
	RenderIntegrations(c.out, snapshot.Integrations, c.now())
	return err
}

// Connect pede os campos do provedor e cria a integração
func (c *CLI) Connect(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.println("Uso: connect facebook|adsense")
		return nil
	}

	var err error
	switch args[0] {
	case "facebook", "fb":
		err = c.connectFacebook(ctx)
	case "adsense", "google":
		err = c.connectAdSense(ctx)
	default:
		c.println("Provedor desconhecido:", args[0])
		return nil
	}

	if feedback := c.app.Snapshot().Feedback; feedback != "" {
		c.println(feedback)
	}
	return err
}

func (c *CLI) connectFacebook(ctx context.Context) error {
	form := &integrating.FacebookConnectForm{}

	var err error
	if form.AccountID, err = c.ask("Account ID"); err != nil {
		return err
	}
	if form.AccessToken, err = c.askSecret("Access token"); err != nil {
		return err
	}
	if form.BusinessID, err = c.ask("Business ID (opcional)"); err != nil {
		return err
	}
	if form.APIVersion, err = c.ask("Versão da API (opcional)"); err != nil {
		return err
	}

	return c.app.ConnectFacebook(ctx, form)
}

func (c *CLI) connectAdSense(ctx context.Context) error {
	form := &integrating.AdSenseConnectForm{}

	var err error
	if form.AccountID, err = c.ask("Account ID"); err != nil {
		return err
	}
	if form.AccessToken, err = c.askSecret("Access token"); err != nil {
		return err
	}
	if form.ClientID, err = c.ask("Client ID"); err != nil {
		return err
	}
	if form.ClientSecret, err = c.askSecret("Client secret"); err != nil {
		return err
	}
	if form.RefreshToken, err = c.askSecret("Refresh token"); err != nil {
		return err
	}
	if form.ExpiresIn, err = c.ask("Expira em segundos (opcional)"); err != nil {
		return err
	}
	if form.TokenExpiry, err = c.ask("Expiração do token ISO-8601 (opcional)"); err != nil {
		return err
	}

	return c.app.ConnectAdSense(ctx, form)
}

// Edit abre o editor com os valores atuais. Segredos em branco ficam como estão
// e "-" no business id remove o valor.
func (c *CLI) Edit(ctx context.Context, args []string) error {
	id, ok := c.idArg(args, "edit <id>")
	if !ok {
		return nil
	}

	editor, err := c.app.StartEdit(id)
	if err != nil {
		c.println(fmt.Sprintf("Integração #%d não encontrada.", id))
		return err
	}

	if editor.Facebook != nil {
		err = c.editFacebook(editor.Facebook)
	} else {
		err = c.editAdSense(editor.AdSense)
	}
	if err != nil {
		c.app.CancelEdit()
		return err
	}

	save, err := Confirm(c.reader, "Salvar alterações?", c.out)
	if err != nil || !save {
		c.app.CancelEdit()
		c.println("Edição cancelada.")
		return err
	}

	if err := c.app.SaveEdit(ctx); err != nil {
		c.println(c.app.Snapshot().EditError)
		return err
	}

	c.println(fmt.Sprintf("Integração #%d atualizada.", id))
	return nil
}

func (c *CLI) editFacebook(form *integrating.FacebookEditForm) error {
	var err error
	if form.AccountID, err = c.askDefault("Account ID", form.AccountID); err != nil {
		return err
	}
	if err = c.editSecret("Access token", &form.AccessToken); err != nil {
		return err
	}

	businessID, err := c.askDefault("Business ID (- remove)", form.BusinessID)
	if err != nil {
		return err
	}
	if businessID == "-" {
		businessID = ""
	}
	form.BusinessID = businessID

	form.APIVersion, err = c.askDefault("Versão da API", form.APIVersion)
	return err
}

func (c *CLI) editAdSense(form *integrating.AdSenseEditForm) error {
	var err error
	if form.AccountID, err = c.askDefault("Account ID", form.AccountID); err != nil {
		return err
	}
	if err = c.editSecret("Access token", &form.AccessToken); err != nil {
		return err
	}
	if err = c.editSecret("Refresh token", &form.RefreshToken); err != nil {
		return err
	}
	if form.ClientID, err = c.askDefault("Client ID", form.ClientID); err != nil {
		return err
	}
	if err = c.editSecret("Client secret", &form.ClientSecret); err != nil {
		return err
	}

	form.TokenExpiry, err = c.askDefault("Expiração do token", form.TokenExpiry)
	return err
}

func (c *CLI) editSecret(prompt string, field *string) error {
	value, err := c.askSecret(prompt + keepCurrent)
	if err != nil {
		return err
	}
	if value != "" {
		*field = value
	}
	return nil
}

// Delete remove a integração; id inexistente conta como já removido
func (c *CLI) Delete(ctx context.Context, args []string) error {
	id, ok := c.idArg(args, "delete <id>")
	if !ok {
		return nil
	}

	if err := c.app.DeleteIntegration(ctx, id); err != nil {
		c.println(c.app.Snapshot().Feedback)
		return err
	}

	c.println(fmt.Sprintf("Integração #%d removida.", id))
	return nil
}
