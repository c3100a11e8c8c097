package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/christian-de-ornellas/menuio-backend/internal/application/auth"
	"github.com/christian-de-ornellas/menuio-backend/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	MenuUC    *usecase.MenuUseCase
	JWTSecret string
}

// Router registra as rotas da API sob /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Login (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	protected := AuthMiddleware(deps.JWTSecret)

	// Users: o cadastro é público, o resto exige Bearer Token
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", protected, userHandler.List)
	users.Get("/:id", protected, userHandler.GetByID)
	users.Put("/:id", protected, userHandler.Update)
	users.Delete("/:id", protected, userHandler.Delete)

	// Menu (protegido)
	menu := api.Group("/menu", protected)
	menuHandler := NewMenuHandler(deps.MenuUC)
	menu.Post("/", menuHandler.Create)
	menu.Get("/", menuHandler.List)
	menu.Get("/:id", menuHandler.GetByID)
	menu.Put("/:id", menuHandler.Update)
	menu.Delete("/:id", menuHandler.Delete)
}
