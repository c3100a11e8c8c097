package repository

import "github.com/christian-de-ornellas/menuio-backend/internal/domain/entity"

// MenuRepository define o porto de persistência para MenuItem (DIP).
type MenuRepository interface {
	Create(item *entity.MenuItem) error
	GetByID(id string) (*entity.MenuItem, error)
	Update(item *entity.MenuItem) error
	Delete(id string) error
	List(q ListQuery) ([]*entity.MenuItem, error)
	Count(q ListQuery) (int, error)
}
