package usecase

import "mime/multipart"

// ImageStorage porto de armazenamento dos arquivos de imagem do cardápio.
// Save devolve o caminho público servido estaticamente (ex.: /uploads/arquivo.jpg).
type ImageStorage interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(publicPath string) error
}
