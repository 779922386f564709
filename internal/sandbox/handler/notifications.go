package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/vfg2006/insights-dashboard/infrastructure/backend/backenddomain"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/store"
	"github.com/vfg2006/insights-dashboard/pkg/apiErrors"
	"github.com/vfg2006/insights-dashboard/pkg/log"
	"github.com/vfg2006/insights-dashboard/pkg/middleware"
)

// ListNotifications devolve apenas as notificações não lidas, das mais novas para as mais antigas
func ListNotifications(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		notifications, err := st.UnreadNotifications(r.Context(), userID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar notificações")
			apiErrors.WriteError(w, http.StatusInternalServerError, apiErrors.DetailInternalServer)
			return
		}

		response := make([]backenddomain.NotificationRead, 0, len(notifications))
		for _, n := range notifications {
			response = append(response, backenddomain.NotificationRead{
				ID:        n.ID,
				Level:     n.Level,
				Message:   n.Message,
				IsRead:    n.IsRead,
				CreatedAt: backenddomain.Timestamp{Time: n.CreatedAt},
			})
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}

func MarkNotificationRead(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		userID, _ := middleware.UserID(r.Context())
		err := st.MarkNotificationRead(r.Context(), userID, id)
		if errors.Is(err, store.ErrNotFound) {
			apiErrors.WriteError(w, http.StatusNotFound, apiErrors.DetailNotificationNotFound)
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao marcar notificação como lida")
			apiErrors.WriteError(w, http.StatusInternalServerError, apiErrors.DetailInternalServer)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
