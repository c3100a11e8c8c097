package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/christian-de-ornellas/menuio-backend/internal/application/dto"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain/entity"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain/repository"
)

// UserUseCase aplica as regras de negócio de usuários.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso com o porto de persistência.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create cria um usuário: hasheia a senha com bcrypt, liga active por padrão
// e normaliza document vazio para NULL. Devolve ErrEmailAlreadyExists quando
// o e-mail já existe.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidGroup(in.Group) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Cref:         in.Cref,
		Group:        in.Group,
		Active:       true,
		Document:     normalizeDocument(in.Document),
		Bio:          in.Bio,
		Cellphone:    in.Cellphone,
		Cep:          in.Cep,
		Address:      in.Address,
		N:            in.N,
		Complement:   in.Complement,
		Neighborhood: in.Neighborhood,
		City:         in.City,
		Uf:           in.Uf,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtém um usuário por ID. Devolve nil quando não existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Update faz o merge parcial dos campos enviados sobre o registro existente.
// A senha só é re-hasheada quando veio no corpo, não está vazia e difere da
// armazenada: re-salvar o registro sem mexer na senha mantém o hash intacto.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil && *in.Password != "" {
		// Comparação contra o hash vigente decide se há senha nova de fato.
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(*in.Password)) != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			user.PasswordHash = string(hash)
		}
	}
	if in.Cref != nil {
		user.Cref = *in.Cref
	}
	if in.Group != nil {
		if !entity.ValidGroup(*in.Group) {
			return nil, domain.ErrInvalidInput
		}
		user.Group = *in.Group
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	if in.Document != nil {
		user.Document = normalizeDocument(in.Document)
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.Cellphone != nil {
		user.Cellphone = *in.Cellphone
	}
	if in.Cep != nil {
		user.Cep = *in.Cep
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	if in.N != nil {
		user.N = *in.N
	}
	if in.Complement != nil {
		user.Complement = *in.Complement
	}
	if in.Neighborhood != nil {
		user.Neighborhood = *in.Neighborhood
	}
	if in.City != nil {
		user.City = *in.City
	}
	if in.Uf != nil {
		user.Uf = *in.Uf
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete remove um usuário. Devolve ErrUserNotFound quando o ID não resolve.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}

// List devolve o envelope paginado de usuários. totalItems conta a coleção
// filtrada em consulta separada; o limit/offset já foi aplicado no store.
func (uc *UserUseCase) List(p dto.ListParams) (*dto.ListResponse, error) {
	p.Normalize()
	q := listQueryFor(dto.UserStructure, p)
	users, err := uc.repo.List(q)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(q)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *toUserResponse(u))
	}
	return dto.NewListResponse("Lista de Usuários", items, dto.UserStructure, dto.UserToolbarHeader, p.Page, p.PageSize, total), nil
}

// normalizeDocument trata string vazia como ausência de documento.
func normalizeDocument(doc *string) *string {
	if doc == nil || *doc == "" {
		return nil
	}
	return doc
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Cref:         u.Cref,
		Group:        u.Group,
		Active:       u.Active,
		Document:     u.Document,
		Bio:          u.Bio,
		Cellphone:    u.Cellphone,
		Cep:          u.Cep,
		Address:      u.Address,
		N:            u.N,
		Complement:   u.Complement,
		Neighborhood: u.Neighborhood,
		City:         u.City,
		Uf:           u.Uf,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
