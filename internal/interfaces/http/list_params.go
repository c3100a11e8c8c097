package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/christian-de-ornellas/menuio-backend/internal/application/dto"
)

// listParams extrai paginação e filtro da query string. Valores ausentes ou
// não numéricos viram zero e recebem os padrões na normalização do use case.
func listParams(c *fiber.Ctx) dto.ListParams {
	return dto.ListParams{
		Page:        c.QueryInt("page"),
		PageSize:    c.QueryInt("pageSize"),
		FilterField: c.Query("filterField"),
		FilterOp:    c.Query("filterOp"),
		FilterValue: c.Query("filterValue"),
	}
}
