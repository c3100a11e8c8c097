package repository

import "github.com/christian-de-ornellas/menuio-backend/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
// List e Count recebem a mesma ListQuery: Count ignora Limit/Offset e devolve
// o total da coleção filtrada, para o totalItems da resposta paginada.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	List(q ListQuery) ([]*entity.User, error)
	Count(q ListQuery) (int, error)
}
