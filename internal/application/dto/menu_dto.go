package dto

import "time"

// MenuToolbarHeader cabeçalho da listagem do cardápio.
const MenuToolbarHeader = "Cardápio"

// MenuStructure estrutura estática da entidade MenuItem.
var MenuStructure = Structure{
	Fields: []Field{
		{Label: "Título", Code: "title", IsVisible: true},
		{Label: "Descrição", Code: "description", IsVisible: true},
		{Label: "Imagem", Code: "image", IsVisible: true},
	},
	Filters: []Filter{
		{Label: "Título", Field: "title", Operator: textOperators},
		{Label: "Descrição", Field: "description", Operator: textOperators},
	},
}

// CreateMenuItemRequest entrada para criar um item do cardápio.
// Chega via multipart/form-data; o arquivo do campo "image" é tratado à
// parte pelo handler. UserID não é validado contra a tabela de usuários.
type CreateMenuItemRequest struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description" validate:"required"`
	UserID      string `json:"userId" form:"userId"`
}

// UpdateMenuItemRequest atualização parcial de um item do cardápio.
type UpdateMenuItemRequest struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
	UserID      *string `json:"userId" form:"userId"`
}

// MenuItemResponse saída de um item do cardápio.
type MenuItemResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	UserID      *string   `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
