// Package storage guarda las imágenes de producto en el directorio estático
// de la aplicación, con nombres únicos {uuid}_{nombre original}.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/losmayitos/appstore-api/internal/application/usecase"
)

const imagesDir = "images"

var _ usecase.ImageStore = (*LocalImageStore)(nil)

// LocalImageStore almacén de imágenes sobre el sistema de archivos local.
// Las rutas públicas que devuelve son de la forma /images/<archivo> y se
// sirven como contenido estático.
type LocalImageStore struct {
	root string // raíz estática (ej. ./wwwroot)
}

// NewLocalImageStore construye el almacén con la raíz estática configurada.
func NewLocalImageStore(root string) *LocalImageStore {
	return &LocalImageStore{root: root}
}

// Save copia el contenido a <root>/images/{uuid}_{originalName} y devuelve la
// ruta pública. Crea el directorio si no existe.
func (s *LocalImageStore) Save(originalName string, r io.Reader) (string, error) {
	dir := filepath.Join(s.root, imagesDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de imágenes: %w", err)
	}

	fileName := uuid.New().String() + "_" + filepath.Base(originalName)
	dst, err := os.Create(filepath.Join(dir, fileName))
	if err != nil {
		return "", fmt.Errorf("crear archivo de imagen: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("copiar imagen: %w", err)
	}
	return "/" + imagesDir + "/" + fileName, nil
}

// Remove borra el archivo referido por una ruta pública. Un archivo que ya no
// existe no es error.
func (s *LocalImageStore) Remove(publicPath string) error {
	full := filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(publicPath, "/")))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("borrar imagen: %w", err)
	}
	return nil
}
