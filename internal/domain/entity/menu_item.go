package entity

import "time"

// MenuItem representa um item do cardápio.
// UserID referencia o usuário dono do item mas não há FK no banco: a
// integridade referencial é intencional, não imposta pelo store.
type MenuItem struct {
	ID          string
	Title       string
	Description string
	Image       *string // caminho em /uploads, nil quando não há imagem
	UserID      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
