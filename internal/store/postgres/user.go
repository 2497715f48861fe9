package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"taskflow.app/server/core/db"
	"taskflow.app/server/internal/model"
)

type userStore struct {
	db *db.DB
}

const userColumns = "id, username, password, display_name, avatar_url, email, role, created_at"

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row := s.db.Pool().QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return u, nil
}

func (s *userStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	row := s.db.Pool().QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = $1", username)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return u, nil
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row := s.db.Pool().QueryRow(ctx,
		`INSERT INTO users (username, password, display_name, avatar_url, email, role)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		user.Username, user.Password, user.DisplayName, user.AvatarURL, user.Email, string(user.Role))
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (s *userStore) List(ctx context.Context) ([]model.User, error) {
	return s.query(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
}

func (s *userStore) ListAdmins(ctx context.Context) ([]model.User, error) {
	return s.query(ctx, "SELECT "+userColumns+" FROM users WHERE role = $1 ORDER BY id", string(model.RoleAdmin))
}

func (s *userStore) query(ctx context.Context, sql string, args ...any) ([]model.User, error) {
	rows, err := s.db.Pool().Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	result := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		result = append(result, *u)
	}
	return result, rows.Err()
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	var role string
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &u.DisplayName, &u.AvatarURL, &u.Email, &role, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Role = model.Role(role)
	return &u, nil
}
