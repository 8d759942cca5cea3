package local

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/GoArmGo/SalesTrack/internal/domain"
)

// Client реализует ports.FileStorage поверх каталога на локальном диске.
// Файлы хранятся под сгенерированными именами и отдаются побайтово
// тем же содержимым, что было загружено.
type Client struct {
	dir    string
	logger *slog.Logger
}

func NewClient(dir string, logger *slog.Logger) (*Client, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("не удалось создать каталог загрузок %s: %w", dir, err)
	}
	return &Client{dir: dir, logger: logger}, nil
}

// ключ не должен выходить за пределы каталога
func (c *Client) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) {
		return "", fmt.Errorf("%w: bad file key %q", domain.ErrValidation, key)
	}
	return filepath.Join(c.dir, key), nil
}

func (c *Client) UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) error {
	p, err := c.path(key)
	if err != nil {
		return err
	}

	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("ошибка создания файла %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return fmt.Errorf("ошибка записи файла %s: %w", key, err)
	}

	c.logger.Info("file stored locally", "key", key)
	return nil
}

func (c *Client) GetFile(ctx context.Context, key string) (io.ReadCloser, error) {
	p, err := c.path(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", key, err)
	}
	return f, nil
}

func (c *Client) RenameFile(ctx context.Context, oldKey, newKey string) error {
	oldPath, err := c.path(oldKey)
	if err != nil {
		return err
	}
	newPath, err := c.path(newKey)
	if err != nil {
		return err
	}

	if _, err := os.Stat(oldPath); os.IsNotExist(err) {
		return domain.ErrNotFound
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("ошибка переименования файла %s -> %s: %w", oldKey, newKey, err)
	}

	c.logger.Info("file renamed", "old_key", oldKey, "new_key", newKey)
	return nil
}

func (c *Client) DeleteFile(ctx context.Context, key string) error {
	p, err := c.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("ошибка удаления файла %s: %w", key, err)
	}
	return nil
}
