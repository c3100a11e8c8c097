package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/christian-de-ornellas/menuio-backend/internal/application/dto"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain/entity"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain/repository"
	"github.com/christian-de-ornellas/menuio-backend/pkg/jwt"
)

// JWTConfig configuração para emissão de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase caso de uso de autenticação: login com emissão de JWT.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica e-mail/senha e devolve token + perfil sem a senha.
// E-mail inexistente e senha errada resultam no mesmo ErrUnauthorized: o
// handler responde de forma idêntica nos dois casos para não vazar a
// existência da conta.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Profile: *toProfile(user),
	}, nil
}

func toProfile(u *entity.User) *dto.UserResponse {
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
