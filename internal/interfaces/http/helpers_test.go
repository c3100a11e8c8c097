package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/christian-de-ornellas/menuio-backend/internal/application/auth"
	"github.com/christian-de-ornellas/menuio-backend/internal/application/usecase"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain/entity"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain/repository"
	apphttp "github.com/christian-de-ornellas/menuio-backend/internal/interfaces/http"
	"github.com/christian-de-ornellas/menuio-backend/pkg/logger"
)

const testJWTSecret = "segredo-de-teste-http"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória (suficientes para exercitar os handlers de ponta a ponta)
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	for i, existing := range r.users {
		if existing.ID == u.ID {
			cp := *u
			r.users[i] = &cp
		}
	}
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memUserRepo) matches(u *entity.User, q repository.ListQuery) bool {
	if !q.HasFilter() {
		return true
	}
	var v string
	switch q.FilterField {
	case "firstName":
		v = u.FirstName
	case "lastName":
		v = u.LastName
	case "email":
		v = u.Email
	}
	if q.FilterOp == repository.OpEq {
		return v == q.FilterValue
	}
	return strings.Contains(strings.ToLower(v), strings.ToLower(q.FilterValue))
}

func (r *memUserRepo) List(q repository.ListQuery) ([]*entity.User, error) {
	var filtered []*entity.User
	for _, u := range r.users {
		if r.matches(u, q) {
			filtered = append(filtered, u)
		}
	}
	if q.Offset >= len(filtered) {
		return nil, nil
	}
	end := q.Offset + q.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	out := make([]*entity.User, 0, end-q.Offset)
	for _, u := range filtered[q.Offset:end] {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memUserRepo) Count(q repository.ListQuery) (int, error) {
	n := 0
	for _, u := range r.users {
		if r.matches(u, q) {
			n++
		}
	}
	return n, nil
}

type memMenuRepo struct {
	items []*entity.MenuItem
}

func (r *memMenuRepo) Create(it *entity.MenuItem) error {
	cp := *it
	r.items = append(r.items, &cp)
	return nil
}

func (r *memMenuRepo) GetByID(id string) (*entity.MenuItem, error) {
	for _, it := range r.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMenuRepo) Update(it *entity.MenuItem) error {
	for i, existing := range r.items {
		if existing.ID == it.ID {
			cp := *it
			r.items[i] = &cp
		}
	}
	return nil
}

func (r *memMenuRepo) Delete(id string) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memMenuRepo) matches(it *entity.MenuItem, q repository.ListQuery) bool {
	if !q.HasFilter() {
		return true
	}
	var v string
	switch q.FilterField {
	case "title":
		v = it.Title
	case "description":
		v = it.Description
	}
	if q.FilterOp == repository.OpEq {
		return v == q.FilterValue
	}
	return strings.Contains(strings.ToLower(v), strings.ToLower(q.FilterValue))
}

func (r *memMenuRepo) List(q repository.ListQuery) ([]*entity.MenuItem, error) {
	var filtered []*entity.MenuItem
	for _, it := range r.items {
		if r.matches(it, q) {
			filtered = append(filtered, it)
		}
	}
	if q.Offset >= len(filtered) {
		return nil, nil
	}
	end := q.Offset + q.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	out := make([]*entity.MenuItem, 0, end-q.Offset)
	for _, it := range filtered[q.Offset:end] {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memMenuRepo) Count(q repository.ListQuery) (int, error) {
	n := 0
	for _, it := range r.items {
		if r.matches(it, q) {
			n++
		}
	}
	return n, nil
}

// noopImageStore para os testes que não tocam em imagens.
type noopImageStore struct{}

func (noopImageStore) Save(file *multipart.FileHeader) (string, error) { return "/uploads/x", nil }
func (noopImageStore) Remove(publicPath string) error                  { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Montagem do app de teste
// ──────────────────────────────────────────────────────────────────────────────

// newTestApp monta o app fiber completo com repositórios em memória e o
// armazenamento de imagens recebido (usualmente o LocalImageStore em um
// diretório temporário).
func newTestApp(images usecase.ImageStorage) *fiber.App {
	userRepo := &memUserRepo{}
	menuRepo := &memMenuRepo{}
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: testJWTSecret, ExpHours: 24}),
		UserUC:    usecase.NewUserUseCase(userRepo),
		MenuUC:    usecase.NewMenuUseCase(menuRepo, images, log),
		JWTSecret: testJWTSecret,
	})
	return app
}

func jsonRequest(t *testing.T, method, target, token string, payload any) *nethttp.Request {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *nethttp.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// registerAndLogin cadastra um usuário pela rota pública e loga, devolvendo o
// token e o ID do usuário criado.
func registerAndLogin(t *testing.T, app *fiber.App, email string) (token, userID string) {
	t.Helper()
	createBody := map[string]any{
		"firstName": "Ana",
		"lastName":  "Silva",
		"email":     email,
		"password":  "senha-123",
		"cref":      "000001-G/SP",
		"group":     "admin",
		"cellphone": "+55 11 98888-7777",
	}
	resp, err := app.Test(jsonRequest(t, nethttp.MethodPost, "/api/v1/users", "", createBody))
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	userID, _ = created["id"].(string)
	require.NotEmpty(t, userID)

	resp, err = app.Test(jsonRequest(t, nethttp.MethodPost, "/api/v1/login", "", map[string]any{
		"email":    email,
		"password": "senha-123",
	}))
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	login := decodeBody(t, resp)
	token, _ = login["token"].(string)
	require.NotEmpty(t, token)
	return token, userID
}

// multipartMenuRequest monta uma requisição multipart de criação de item,
// opcionalmente com um arquivo de imagem.
func multipartMenuRequest(t *testing.T, token, title, description, filename string, content []byte) *nethttp.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("title", title))
	require.NoError(t, w.WriteField("description", description))
	if filename != "" {
		part, err := w.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/menu", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// multipartImageUpdateRequest monta um PUT multipart só com a imagem nova.
func multipartImageUpdateRequest(t *testing.T, token, itemID, filename string, content []byte) *nethttp.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(nethttp.MethodPut, "/api/v1/menu/"+itemID, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}
