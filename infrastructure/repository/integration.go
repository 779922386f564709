package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/insights-dashboard/internal/sandbox/store"
)

func (r *SandboxRepository) CreateIntegration(ctx context.Context, userID int, integrationType string, credentials map[string]any) (store.Integration, error) {
	credentialsJSON, err := json.Marshal(credentials)
	if err != nil {
		return store.Integration{}, fmt.Errorf("erro ao serializar credenciais: %w", err)
	}

	integration := store.Integration{
		UserID:    userID,
		Type:      integrationType,
		CreatedAt: r.now().UTC(),
	}

	query, args, err := squirrel.
		Insert(integrationsTable).
		Columns("user_id", "type", "credentials", "created_at").
		Values(userID, integrationType, credentialsJSON, integration.CreatedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return store.Integration{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&integration.ID); err != nil {
		return store.Integration{}, fmt.Errorf("erro ao inserir integração: %w", err)
	}

	// relê do JSON para devolver uma cópia independente do mapa recebido
	if err := json.Unmarshal(credentialsJSON, &integration.Credentials); err != nil {
		return store.Integration{}, fmt.Errorf("erro ao desserializar credenciais: %w", err)
	}

	return integration, nil
}

func listIntegrationsQuery(userID int, types []string) (string, []any, error) {
	where := squirrel.Eq{"user_id": userID}
	if len(types) > 0 {
		where["type"] = types
	}

	return squirrel.
		Select("id", "user_id", "type", "credentials", "created_at").
		From(integrationsTable).
		Where(where).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *SandboxRepository) Integrations(ctx context.Context, userID int, types ...string) ([]store.Integration, error) {
	query, args, err := listIntegrationsQuery(userID, types)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar integrações: %w", err)
	}
	defer rows.Close()

	integrations := make([]store.Integration, 0)
	for rows.Next() {
		integration, err := scanIntegration(rows)
		if err != nil {
			return nil, err
		}
		integrations = append(integrations, integration)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return integrations, nil
}

// UpdateIntegration trava a linha, aplica apply e grava as credenciais na mesma transação
func (r *SandboxRepository) UpdateIntegration(ctx context.Context, userID, id int, integrationType string, apply func(map[string]any)) (store.Integration, error) {
	var integration store.Integration

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Select("id", "user_id", "type", "credentials", "created_at").
			From(integrationsTable).
			Where(squirrel.Eq{"id": id, "user_id": userID}).
			Suffix("FOR UPDATE").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		integration, err = scanIntegration(tx.QueryRowContext(ctx, query, args...))
		if err != nil {
			return err
		}

		if integration.Type != integrationType {
			return store.ErrTypeMismatch
		}

		if integration.Credentials == nil {
			integration.Credentials = make(map[string]any)
		}
		apply(integration.Credentials)

		credentialsJSON, err := json.Marshal(integration.Credentials)
		if err != nil {
			return fmt.Errorf("erro ao serializar credenciais: %w", err)
		}

		query, args, err = squirrel.
			Update(integrationsTable).
			Set("credentials", credentialsJSON).
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao atualizar integração: %w", err)
		}

		return nil
	})
	if err != nil {
		return store.Integration{}, err
	}

	return integration, nil
}

func (r *SandboxRepository) DeleteIntegration(ctx context.Context, userID, id int) error {
	query, args, err := squirrel.
		Delete(integrationsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover integração: %w", err)
	}

	return requireAffected(result)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanIntegration(row scanner) (store.Integration, error) {
	var integration store.Integration
	var credentialsJSON []byte

	err := row.Scan(
		&integration.ID,
		&integration.UserID,
		&integration.Type,
		&credentialsJSON,
		&integration.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return store.Integration{}, store.ErrNotFound
	}
	if err != nil {
		return store.Integration{}, fmt.Errorf("erro ao escanear integração: %w", err)
	}

	if len(credentialsJSON) > 0 {
		if err := json.Unmarshal(credentialsJSON, &integration.Credentials); err != nil {
			return store.Integration{}, fmt.Errorf("erro ao desserializar credenciais: %w", err)
		}
	}

	integration.CreatedAt = integration.CreatedAt.UTC()
	return integration, nil
}

// requireAffected devolve store.ErrNotFound quando nenhuma linha foi alterada
func requireAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}
