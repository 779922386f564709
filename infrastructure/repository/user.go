package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/insights-dashboard/internal/sandbox/store"
)

var userColumns = []string{"id", "email", "name", "password_hash", "created_at"}

func (r *SandboxRepository) CreateUser(ctx context.Context, email, name, passwordHash string) (store.User, error) {
	user := store.User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    r.now().UTC(),
	}

	query, args, err := squirrel.
		Insert(usersTable).
		Columns("email", "name", "password_hash", "created_at").
		Values(user.Email, user.Name, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return store.User{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&user.ID)
	if isUniqueViolation(err) {
		return store.User{}, store.ErrEmailTaken
	}
	if err != nil {
		return store.User{}, fmt.Errorf("erro ao inserir usuário: %w", err)
	}

	return user, nil
}

func (r *SandboxRepository) User(ctx context.Context, id int) (store.User, error) {
	return r.findUser(ctx, squirrel.Eq{"id": id})
}

func (r *SandboxRepository) UserByEmail(ctx context.Context, email string) (store.User, error) {
	return r.findUser(ctx, squirrel.Eq{"email": email})
}

func (r *SandboxRepository) findUser(ctx context.Context, where squirrel.Eq) (store.User, error) {
	query, args, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return store.User{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var user store.User
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return store.User{}, store.ErrNotFound
	}
	if err != nil {
		return store.User{}, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	user.CreatedAt = user.CreatedAt.UTC()
	return user, nil
}

func (r *SandboxRepository) UserIDs(ctx context.Context) ([]int, error) {
	query, args, err := squirrel.
		Select("id").
		From(usersTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar usuários: %w", err)
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return ids, nil
}
