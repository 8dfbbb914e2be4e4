// Package storage almacenamiento de archivos en disco con la forma <raíz>/<bucket>/<ruta>.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/listas-precios/internal/domain"
)

// Local implementa pricelist.FileStorage sobre un directorio.
type Local struct {
	root string
}

// NewLocal construye el almacenamiento con raíz root.
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Download lee el objeto; domain.ErrNotFound si no existe.
func (s *Local) Download(ctx context.Context, bucket, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full, err := s.resolve(bucket, path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s/%s: %w", bucket, path, err)
	}
	return data, nil
}

// Upload escribe el objeto creando los directorios intermedios.
func (s *Local) Upload(ctx context.Context, bucket, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := s.resolve(bucket, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("crear directorio: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s/%s: %w", bucket, path, err)
	}
	return nil
}

// resolve rechaza rutas que escapen del bucket.
func (s *Local) resolve(bucket, path string) (string, error) {
	if bucket == "" || strings.ContainsAny(bucket, `/\`) || bucket == "." || bucket == ".." {
		return "", fmt.Errorf("%w: bucket %q", domain.ErrInvalidInput, bucket)
	}
	clean := filepath.Clean(filepath.FromSlash("/" + path))
	if clean == string(filepath.Separator) {
		return "", fmt.Errorf("%w: ruta vacía", domain.ErrInvalidInput)
	}
	base := filepath.Join(s.root, bucket)
	full := filepath.Join(base, clean)
	if !strings.HasPrefix(full, base+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: ruta %q", domain.ErrInvalidInput, path)
	}
	return full, nil
}
