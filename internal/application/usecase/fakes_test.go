package usecase_test

import (
	"mime/multipart"
	"strings"
	"sync"

	"github.com/christian-de-ornellas/menuio-backend/internal/domain"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain/entity"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos portos de persistência e de armazenamento
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*entity.User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{} }

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.users {
		if existing.ID == u.ID {
			cp := *u
			f.users[i] = &cp
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) List(q repository.ListQuery) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	filtered := f.filtered(q)
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

func (f *fakeUserRepo) Count(q repository.ListQuery) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.filtered(q)), nil
}

func (f *fakeUserRepo) filtered(q repository.ListQuery) []*entity.User {
	if !q.HasFilter() {
		return f.users
	}
	value := func(u *entity.User) string {
		switch q.FilterField {
		case "firstName":
			return u.FirstName
		case "lastName":
			return u.LastName
		case "email":
			return u.Email
		}
		return ""
	}
	var out []*entity.User
	for _, u := range f.users {
		v := value(u)
		switch q.FilterOp {
		case repository.OpEq:
			if v == q.FilterValue {
				out = append(out, u)
			}
		case repository.OpContains:
			if strings.Contains(strings.ToLower(v), strings.ToLower(q.FilterValue)) {
				out = append(out, u)
			}
		}
	}
	return out
}

type fakeMenuRepo struct {
	mu    sync.Mutex
	items []*entity.MenuItem
}

func newFakeMenuRepo() *fakeMenuRepo { return &fakeMenuRepo{} }

func (f *fakeMenuRepo) Create(it *entity.MenuItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *it
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeMenuRepo) GetByID(id string) (*entity.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMenuRepo) Update(it *entity.MenuItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.items {
		if existing.ID == it.ID {
			cp := *it
			f.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (f *fakeMenuRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeMenuRepo) List(q repository.ListQuery) ([]*entity.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	filtered := f.filtered(q)
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

func (f *fakeMenuRepo) Count(q repository.ListQuery) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.filtered(q)), nil
}

func (f *fakeMenuRepo) filtered(q repository.ListQuery) []*entity.MenuItem {
	if !q.HasFilter() {
		return f.items
	}
	var out []*entity.MenuItem
	for _, it := range f.items {
		var v string
		switch q.FilterField {
		case "title":
			v = it.Title
		case "description":
			v = it.Description
		}
		switch q.FilterOp {
		case repository.OpEq:
			if v == q.FilterValue {
				out = append(out, it)
			}
		case repository.OpContains:
			if strings.Contains(strings.ToLower(v), strings.ToLower(q.FilterValue)) {
				out = append(out, it)
			}
		}
	}
	return out
}

// fakeImageStore registra as chamadas de Save/Remove sem tocar no disco.
type fakeImageStore struct {
	saved     []string
	removed   []string
	removeErr error
	savedPath string
}

func (f *fakeImageStore) Save(file *multipart.FileHeader) (string, error) {
	path := f.savedPath
	if path == "" {
		path = "/uploads/0-" + file.Filename
	}
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeImageStore) Remove(publicPath string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, publicPath)
	return nil
}
