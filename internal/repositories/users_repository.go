package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type UsersRepository struct {
	DB *sql.DB
}

func (r UsersRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// FindByLogin looks a user up by email or username.
func (r UsersRepository) FindByLogin(ctx context.Context, login string) (models.User, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return models.User{}, domain.ValidationError{Field: "login", Msg: "login is required"}
	}
	db := r.db()
	if db == nil {
		return models.User{}, domain.InternalError{Msg: "db not available"}
	}

	var (
		u       models.User
		status  sql.NullString
		created sql.NullTime
	)
	err := db.QueryRowContext(ctx, `
		SELECT id, COALESCE(name,''), COALESCE(username,''), COALESCE(email,''), password_hash,
			COALESCE(role,''), status, created_at
		FROM users
		WHERE email = ? OR username = ?
		LIMIT 1
	`, login, login).Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &status, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	u.Status = strings.ToLower(strings.TrimSpace(status.String))
	if created.Valid {
		u.CreatedAt = created.Time
	}
	return u, nil
}
