package usecase

import "io"

// ImageStore define el puerto de almacenamiento de imágenes de producto.
// Save copia el contenido bajo la raíz estática con un nombre único y
// devuelve la ruta pública (/images/...). Remove borra un archivo por su ruta
// pública; un archivo inexistente no es error.
type ImageStore interface {
	Save(originalName string, r io.Reader) (string, error)
	Remove(publicPath string) error
}
