package cli

import (
	"context"
	"fmt"
)

func (c *CLI) Notifications(ctx context.Context, _ []string) error {
	err := c.app.LoadNotifications(ctx)

	snapshot := c.app.Snapshot()
	if snapshot.NotificationError != "" {
		c.println(snapshot.NotificationError)
		return err
	}

	RenderNotifications(c.out, snapshot.Notifications)
	return err
}

// Read marca como lida; a notificação só sai da lista depois da confirmação
func (c *CLI) Read(ctx context.Context, args []string) error {
	id, ok := c.idArg(args, "read <id>")
	if !ok {
		return nil
	}

	if err := c.app.MarkNotificationRead(ctx, id); err != nil {
		c.println("Não foi possível marcar a notificação como lida.")
		return err
	}

	c.println(fmt.Sprintf("Notificação #%d marcada como lida.", id))
	return nil
}
