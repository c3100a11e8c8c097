package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/christian-de-ornellas/menuio-backend/internal/infrastructure/postgres/migrations"
)

// RunMigrations aplica as migrações SQL embutidas no binário.
// Usa uma conexão database/sql própria (driver pgx/stdlib) porque o goose
// não fala com pgxpool diretamente.
func RunMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("abrir conexão para migração: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("aplicar migrações: %w", err)
	}
	return nil
}
