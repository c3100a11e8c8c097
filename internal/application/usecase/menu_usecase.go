package usecase

import (
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/christian-de-ornellas/menuio-backend/internal/application/dto"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain/entity"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain/repository"
	"github.com/christian-de-ornellas/menuio-backend/pkg/logger"
)

// MenuUseCase aplica as regras de negócio do cardápio.
type MenuUseCase struct {
	repo   repository.MenuRepository
	images ImageStorage
	log    *logger.Logger
}

// NewMenuUseCase constrói o caso de uso com persistência e armazenamento de imagens.
func NewMenuUseCase(repo repository.MenuRepository, images ImageStorage, log *logger.Logger) *MenuUseCase {
	return &MenuUseCase{repo: repo, images: images, log: log}
}

// Create cria um item do cardápio. Quando há arquivo de imagem, ele é salvo
// antes do registro e o caminho público fica gravado; sem arquivo a imagem
// fica nula. UserID não é conferido contra a tabela de usuários.
func (uc *MenuUseCase) Create(in dto.CreateMenuItemRequest, image *multipart.FileHeader) (*dto.MenuItemResponse, error) {
	var imagePath *string
	if image != nil {
		path, err := uc.images.Save(image)
		if err != nil {
			return nil, err
		}
		imagePath = &path
	}
	var userID *string
	if in.UserID != "" {
		userID = &in.UserID
	}
	now := time.Now()
	item := &entity.MenuItem{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Image:       imagePath,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// GetByID obtém um item por ID. Devolve nil quando não existe.
func (uc *MenuUseCase) GetByID(id string) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toMenuItemResponse(item), nil
}

// Update faz o merge parcial dos campos enviados sobre o item existente.
// Arquivo de imagem presente substitui a atual: a nova é salva antes e o
// artefato antigo é removido depois (falha na remoção é logada e o update
// prossegue, como na remoção do item). Sem arquivo, a imagem fica como está.
func (uc *MenuUseCase) Update(id string, in dto.UpdateMenuItemRequest, image *multipart.FileHeader) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if image != nil {
		path, err := uc.images.Save(image)
		if err != nil {
			return nil, err
		}
		if item.Image != nil {
			if err := uc.images.Remove(*item.Image); err != nil {
				uc.log.Warn().Err(err).Str("item_id", id).Str("image", *item.Image).
					Msg("falha ao remover imagem substituída; update prossegue")
			}
		}
		item.Image = &path
	}
	if in.Title != nil {
		item.Title = *in.Title
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.UserID != nil {
		if *in.UserID == "" {
			item.UserID = nil
		} else {
			item.UserID = in.UserID
		}
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// Delete remove um item do cardápio em dois passos explícitos: primeiro o
// artefato de imagem (quando existe), depois o registro. As duas operações
// não são transacionais; falha na remoção do arquivo é logada e a remoção do
// registro prossegue mesmo assim (janela de inconsistência documentada).
// Item inexistente devolve ErrMenuItemNotFound sem tocar no filesystem.
func (uc *MenuUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrMenuItemNotFound
	}
	if item.Image != nil {
		if err := uc.images.Remove(*item.Image); err != nil {
			uc.log.Warn().Err(err).Str("item_id", id).Str("image", *item.Image).
				Msg("falha ao remover imagem do item; registro será removido mesmo assim")
		}
	}
	return uc.repo.Delete(id)
}

// List devolve o envelope paginado de itens do cardápio.
func (uc *MenuUseCase) List(p dto.ListParams) (*dto.ListResponse, error) {
	p.Normalize()
	q := listQueryFor(dto.MenuStructure, p)
	list, err := uc.repo.List(q)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(q)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MenuItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toMenuItemResponse(it))
	}
	return dto.NewListResponse("Lista de itens do cardápio", items, dto.MenuStructure, dto.MenuToolbarHeader, p.Page, p.PageSize, total), nil
}

func toMenuItemResponse(it *entity.MenuItem) *dto.MenuItemResponse {
	if it == nil {
		return nil
	}
	return &dto.MenuItemResponse{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Image:       it.Image,
		UserID:      it.UserID,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
