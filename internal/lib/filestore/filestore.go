// Package filestore реализует сохранение загруженных изображений на диск.
//
// Файлы складываются в каталог контента под случайными именами,
// наружу возвращается полная публичная ссылка, которая хранится
// в записи объявления.
package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrEmptyFile возвращается при попытке сохранить отсутствующий
// или пустой файл.
var ErrEmptyFile = errors.New("empty file")

// Store сохраняет файлы в каталоге uploadDir и строит публичные ссылки
// вида publicHost + publicPrefix + "/" + имя файла.
type Store struct {
	uploadDir    string // Каталог контента на диске
	publicHost   string // Публичный хост, например http://localhost:3001
	publicPrefix string // Публичный префикс пути, например /images
}

// New создает новый Store с заданным каталогом и публичным адресом.
func New(uploadDir, publicHost, publicPrefix string) *Store {
	return &Store{
		uploadDir:    uploadDir,
		publicHost:   publicHost,
		publicPrefix: publicPrefix,
	}
}

// Save сохраняет содержимое src под новым уникальным именем и возвращает
// публичную ссылку на файл.
//
// Имя файла клиента не используется для хранения: берётся только его
// расширение (сегмент после последней точки, может быть пустым),
// само имя генерируется случайно. Совпадение имён перезаписывает
// существующий файл — при случайных именах коллизии не ожидаются.
func (s *Store) Save(originalName string, src io.Reader, size int64) (string, error) {
	const op = "filestore.Save"

	if src == nil || size == 0 {
		return "", fmt.Errorf("%s: %w", op, ErrEmptyFile)
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	filename := uuid.New().String() + filepath.Ext(originalName)

	dst, err := os.Create(filepath.Join(s.uploadDir, filename))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = dst.Close()
	}()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return s.publicHost + s.publicPrefix + "/" + filename, nil
}

// Dir возвращает каталог контента; используется при настройке
// раздачи статики.
func (s *Store) Dir() string {
	return s.uploadDir
}

// PublicPrefix возвращает публичный префикс пути к файлам.
func (s *Store) PublicPrefix() string {
	return s.publicPrefix
}
