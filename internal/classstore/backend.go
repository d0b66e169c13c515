package classstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-redis/redis/v8"
)

// Backend reads and writes the whole snapshot list.
type Backend interface {
	Read(ctx context.Context) ([]SavedClass, error)
	Write(ctx context.Context, classes []SavedClass) error
}

// FileBackend keeps the list in <dir>/<key>.json.
type FileBackend struct {
	path string
}

func NewFileBackend(dir, key string) *FileBackend {
	if key == "" {
		key = DefaultKey
	}
	return &FileBackend{path: filepath.Join(dir, key+".json")}
}

func (b *FileBackend) Path() string { return b.path }

func (b *FileBackend) Read(_ context.Context) ([]SavedClass, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []SavedClass{}, nil
		}
		return nil, err
	}
	return decode(data)
}

func (b *FileBackend) Write(_ context.Context, classes []SavedClass) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(classes, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(b.path, data, 0644)
}

// RedisBackend keeps the list as one JSON string value.
type RedisBackend struct {
	client *redis.Client
	key    string
}

func NewRedisBackend(client *redis.Client, key string) *RedisBackend {
	if key == "" {
		key = DefaultKey
	}
	return &RedisBackend{client: client, key: key}
}

// DialRedis connects to addr and checks the connection.
func DialRedis(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("classstore: connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

func (b *RedisBackend) Read(ctx context.Context) ([]SavedClass, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []SavedClass{}, nil
		}
		return nil, fmt.Errorf("classstore: read %s: %w", b.key, err)
	}
	return decode(data)
}

func (b *RedisBackend) Write(ctx context.Context, classes []SavedClass) error {
	data, err := json.Marshal(classes)
	if err != nil {
		return err
	}
	if err := b.client.Set(ctx, b.key, data, 0).Err(); err != nil {
		return fmt.Errorf("classstore: write %s: %w", b.key, err)
	}
	return nil
}

func decode(data []byte) ([]SavedClass, error) {
	var classes []SavedClass
	if err := json.Unmarshal(data, &classes); err != nil {
		return nil, fmt.Errorf("classstore: decode: %w", err)
	}
	if classes == nil {
		classes = []SavedClass{}
	}
	return classes, nil
}
