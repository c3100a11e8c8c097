package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/christian-de-ornellas/menuio-backend/internal/domain"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain/entity"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, first_name, last_name, email, password_hash, cref, "group", active,
		document, bio, cellphone, cep, address, n, complement, neighborhood, city, uf,
		created_at, updated_at`

// userFilterColumns código do campo anunciado na estrutura -> coluna.
var userFilterColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
}

// UserRepo implementação do porto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository constrói o adaptador de persistência de usuários.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste um novo usuário.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.Cref,
		user.Group, user.Active, user.Document, user.Bio, user.Cellphone, user.Cep,
		user.Address, user.N, user.Complement, user.Neighborhood, user.City, user.Uf,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.queryOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtém um usuário por e-mail (usado no login).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.queryOne(`SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email)
}

func (r *UserRepo) queryOne(query string, arg interface{}) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Cref,
		&u.Group, &u.Active, &u.Document, &u.Bio, &u.Cellphone, &u.Cep,
		&u.Address, &u.N, &u.Complement, &u.Neighborhood, &u.City, &u.Uf,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update atualiza um usuário.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET first_name = $2, last_name = $3, email = $4, password_hash = $5,
			cref = $6, "group" = $7, active = $8, document = $9, bio = $10, cellphone = $11,
			cep = $12, address = $13, n = $14, complement = $15, neighborhood = $16,
			city = $17, uf = $18, updated_at = $19
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.Cref,
		user.Group, user.Active, user.Document, user.Bio, user.Cellphone, user.Cep,
		user.Address, user.N, user.Complement, user.Neighborhood, user.City, user.Uf,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete remove um usuário por ID.
func (r *UserRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// List lista usuários com paginação e filtro opcional.
func (r *UserRepo) List(q repository.ListQuery) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	args := []interface{}{}
	if clause, arg, ok := filterSQL(userFilterColumns, q); ok {
		query += " WHERE " + clause
		args = append(args, arg)
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset)

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Cref,
			&u.Group, &u.Active, &u.Document, &u.Bio, &u.Cellphone, &u.Cep,
			&u.Address, &u.N, &u.Complement, &u.Neighborhood, &u.City, &u.Uf,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Count conta a coleção filtrada (passagem separada sobre a mesma consulta).
func (r *UserRepo) Count(q repository.ListQuery) (int, error) {
	query := `SELECT COUNT(*) FROM users`
	args := []interface{}{}
	if clause, arg, ok := filterSQL(userFilterColumns, q); ok {
		query += " WHERE " + clause
		args = append(args, arg)
	}
	var total int
	if err := r.pool.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}
