package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PublicPrefix caminho público sob o qual as imagens são servidas.
const PublicPrefix = "/uploads"

// LocalImageStore guarda as imagens do cardápio em disco, endereçáveis sob
// o diretório estático /uploads.
type LocalImageStore struct {
	dir string
}

// NewLocalImageStore cria o store garantindo que o diretório existe.
func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("criar diretório de upload: %w", err)
	}
	return &LocalImageStore{dir: dir}, nil
}

// Dir devolve o diretório físico (usado para servir os arquivos).
func (s *LocalImageStore) Dir() string {
	return s.dir
}

// Save grava o arquivo com prefixo de timestamp para evitar colisão de
// nomes e devolve o caminho público.
func (s *LocalImageStore) Save(file *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("abrir upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("criar arquivo de imagem: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("gravar imagem: %w", err)
	}
	return PublicPrefix + "/" + name, nil
}

// Remove apaga o artefato do caminho público. Caminhos fora de /uploads ou
// com separadores extras são recusados.
func (s *LocalImageStore) Remove(publicPath string) error {
	name := strings.TrimPrefix(publicPath, PublicPrefix+"/")
	if name == publicPath || name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("caminho de imagem inválido: %s", publicPath)
	}
	return os.Remove(filepath.Join(s.dir, name))
}
