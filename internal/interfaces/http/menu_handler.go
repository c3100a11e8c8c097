package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/christian-de-ornellas/menuio-backend/internal/application/dto"
	"github.com/christian-de-ornellas/menuio-backend/internal/application/usecase"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain"
	"github.com/christian-de-ornellas/menuio-backend/pkg/validator"
)

// MenuHandler trata as requisições HTTP do cardápio (protegido).
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler constrói o handler.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// Create godoc
// @Summary      Criar item do cardápio
// @Tags         menu
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        title        formData  string  true   "Título"
// @Param        description  formData  string  true   "Descrição"
// @Param        userId       formData  string  false  "ID do usuário dono"
// @Param        image        formData  file    false  "Imagem do item"
// @Success      201  {object}  dto.MenuItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/menu [post]
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	// Arquivo ausente não é erro: o item fica sem imagem.
	file, err := c.FormFile("image")
	if err != nil {
		file = nil
	}
	out, err := h.uc.Create(in, file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar itens do cardápio
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Param        page         query  int     false  "Página"             default(1)
// @Param        pageSize     query  int     false  "Tamanho da página"  default(10)
// @Param        filterField  query  string  false  "Campo do filtro"
// @Param        filterOp     query  string  false  "Operador (eq|contains)"
// @Param        filterValue  query  string  false  "Valor do filtro"
// @Success      200  {object}  dto.ListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/menu [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(listParams(c))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter item do cardápio por ID
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do item"
// @Success      200  {object}  dto.ListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/menu/{id} [get]
func (h *MenuHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Item do cardápio não encontrado"})
	}
	return c.JSON(dto.NewItemResponse("Item do cardápio", out, dto.MenuStructure, dto.MenuToolbarHeader))
}

// Update godoc
// @Summary      Atualizar item do cardápio
// @Tags         menu
// @Security     Bearer
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true   "ID do item"
// @Param        body   body      dto.UpdateMenuItemRequest  false  "Campos a atualizar (JSON)"
// @Param        image  formData  file    false  "Nova imagem (multipart; substitui a atual)"
// @Success      200   {object}  dto.MenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/menu/{id} [put]
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	// Multipart pode trazer uma imagem nova; JSON puro nunca traz.
	file, err := c.FormFile("image")
	if err != nil {
		file = nil
	}
	out, err := h.uc.Update(c.Params("id"), in, file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Item do cardápio não encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover item do cardápio
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do item"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/menu/{id} [delete]
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrMenuItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Item do cardápio não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Item removido com sucesso"})
}
