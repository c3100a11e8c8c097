package dto

import "time"

// textOperators operadores oferecidos nos filtros de texto.
var textOperators = []Operator{
	{Label: "Igual", Value: "eq"},
	{Label: "Contém", Value: "contains"},
}

// UserToolbarHeader cabeçalho da listagem de usuários.
const UserToolbarHeader = "Usuários"

// UserStructure estrutura estática da entidade User: quais campos o cliente
// renderiza (senha e endereço ficam invisíveis) e quais filtros anuncia.
var UserStructure = Structure{
	Fields: []Field{
		{Label: "Primeiro", Code: "firstName", IsVisible: true},
		{Label: "Sobrenome", Code: "lastName", IsVisible: true},
		{Label: "E-mail", Code: "email", IsVisible: true},
		{Label: "Senha", Code: "password", IsVisible: false},
		{Label: "Bio", Code: "bio", IsVisible: true},
		{Label: "WhatsApp", Code: "cellphone", IsVisible: true},
		{Label: "Endereço", Code: "address", IsVisible: false},
		{Label: "Cidade", Code: "city", IsVisible: true},
		{Label: "Estado", Code: "uf", IsVisible: true},
	},
	Filters: []Filter{
		{Label: "Nome", Field: "firstName", Operator: textOperators},
		{Label: "Sobrenome", Field: "lastName", Operator: textOperators},
		{Label: "Email", Field: "email", Operator: textOperators},
	},
}

// CreateUserRequest entrada para criar um usuário (password em texto,
// o hash acontece no use case).
type CreateUserRequest struct {
	FirstName    string  `json:"firstName" validate:"required"`
	LastName     string  `json:"lastName" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Password     string  `json:"password" validate:"required"`
	Cref         string  `json:"cref" validate:"required"`
	Group        string  `json:"group" validate:"required,oneof=admin root"`
	Document     *string `json:"document"`
	Bio          string  `json:"bio"`
	Cellphone    string  `json:"cellphone" validate:"required"`
	Cep          string  `json:"cep"`
	Address      string  `json:"address"`
	N            int     `json:"n"`
	Complement   string  `json:"complement"`
	Neighborhood string  `json:"neighborhood"`
	City         string  `json:"city"`
	Uf           string  `json:"uf"`
}

// UpdateUserRequest entrada de atualização parcial: ponteiros distinguem
// "campo enviado" de "campo ausente", o que decide se a senha é re-hasheada.
type UpdateUserRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Password     *string `json:"password"`
	Cref         *string `json:"cref"`
	Group        *string `json:"group" validate:"omitempty,oneof=admin root"`
	Active       *bool   `json:"active"`
	Document     *string `json:"document"`
	Bio          *string `json:"bio"`
	Cellphone    *string `json:"cellphone"`
	Cep          *string `json:"cep"`
	Address      *string `json:"address"`
	N            *int    `json:"n"`
	Complement   *string `json:"complement"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	Uf           *string `json:"uf"`
}

// UserResponse saída de um usuário (sem a senha).
type UserResponse struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Cref         string    `json:"cref"`
	Group        string    `json:"group"`
	Active       bool      `json:"active"`
	Document     *string   `json:"document"`
	Bio          string    `json:"bio"`
	Cellphone    string    `json:"cellphone"`
	Cep          string    `json:"cep"`
	Address      string    `json:"address"`
	N            int       `json:"n"`
	Complement   string    `json:"complement"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	Uf           string    `json:"uf"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// LoginRequest entrada do login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse saída do login: token JWT (24h) + perfil sem a senha.
type LoginResponse struct {
	Token   string       `json:"token"`
	Profile UserResponse `json:"profile"`
}
