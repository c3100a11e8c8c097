package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/christian-de-ornellas/menuio-backend/internal/domain/entity"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

const menuColumns = `id, title, description, image, user_id, created_at, updated_at`

var menuFilterColumns = map[string]string{
	"title":       "title",
	"description": "description",
}

// MenuRepo implementação do porto MenuRepository sobre PostgreSQL.
type MenuRepo struct {
	pool *pgxpool.Pool
}

// NewMenuRepository constrói o adaptador de persistência do cardápio.
func NewMenuRepository(pool *pgxpool.Pool) *MenuRepo {
	return &MenuRepo{pool: pool}
}

// Create persiste um novo item do cardápio.
func (r *MenuRepo) Create(item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (` + menuColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Title, item.Description, item.Image, item.UserID,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// GetByID obtém um item por ID.
func (r *MenuRepo) GetByID(id string) (*entity.MenuItem, error) {
	var it entity.MenuItem
	err := r.pool.QueryRow(context.Background(),
		`SELECT `+menuColumns+` FROM menu_items WHERE id = $1`, id).Scan(
		&it.ID, &it.Title, &it.Description, &it.Image, &it.UserID,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &it, nil
}

// Update atualiza um item do cardápio.
func (r *MenuRepo) Update(item *entity.MenuItem) error {
	query := `
		UPDATE menu_items SET title = $2, description = $3, image = $4, user_id = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Title, item.Description, item.Image, item.UserID, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	return nil
}

// Delete remove um item por ID.
func (r *MenuRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	return nil
}

// List lista itens do cardápio com paginação e filtro opcional.
func (r *MenuRepo) List(q repository.ListQuery) ([]*entity.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items`
	args := []interface{}{}
	if clause, arg, ok := filterSQL(menuFilterColumns, q); ok {
		query += " WHERE " + clause
		args = append(args, arg)
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset)

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	var list []*entity.MenuItem
	for rows.Next() {
		var it entity.MenuItem
		if err := rows.Scan(
			&it.ID, &it.Title, &it.Description, &it.Image, &it.UserID,
			&it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Count conta a coleção filtrada.
func (r *MenuRepo) Count(q repository.ListQuery) (int, error) {
	query := `SELECT COUNT(*) FROM menu_items`
	args := []interface{}{}
	if clause, arg, ok := filterSQL(menuFilterColumns, q); ok {
		query += " WHERE " + clause
		args = append(args, arg)
	}
	var total int
	if err := r.pool.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	return total, nil
}
