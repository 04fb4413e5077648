package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/milefashell/nostrstats/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	relaysPathKey   = "relays.path"
	relaysFileMode  = 0o600
	relaysDirMode   = 0o700
	relaysConfigDir = ".nostrstats"
	relaysFile      = "relays.toml"
	tempFilePattern = ".relays-*.toml.tmp"
)

// DefaultRelays are the bootstrap relays used until the subject's own relay
// list has been discovered.
var DefaultRelays = []string{
	"wss://nos.lol",
	"wss://nostr.mom",
	"wss://relay.austrich.net",
	"wss://nostr-pub.wellorder.net",
	"wss://relay.damus.io",
	"wss://nostr.bitcoiner.social",
}

var ErrRelayNotConfigured = errors.New("relay not configured")

// Repository persists the bootstrap relay list as a TOML file, seeding it
// with DefaultRelays on first use.
type Repository struct {
	relaysPath string
	mu         *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, relaysConfigDir, relaysFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, relaysConfigDir))
	cfg.SetDefault(relaysPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	relaysPath := cfg.GetString(relaysPathKey)
	if relaysPath == "" {
		return nil, errors.New("relays path is empty")
	}
	relaysPath, err = normalizeRelaysPath(relaysPath)
	if err != nil {
		return nil, err
	}

	return &Repository{relaysPath: relaysPath, mu: lockForPath(relaysPath)}, nil
}

// List returns the configured bootstrap relays. A missing file is created
// and seeded with the defaults, so a fresh install always has somewhere to
// ask first.
func (r *Repository) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, found, err := r.readSchema()
	if err != nil {
		return nil, err
	}
	if !found {
		file = fileSchema{Relays: append([]string(nil), DefaultRelays...)}
		file.applyDefaults()
		if err := r.writeSchema(file); err != nil {
			return nil, err
		}
	}

	return append([]string(nil), file.Relays...), nil
}

func (r *Repository) Add(ctx context.Context, rawURL string) (domain.Relay, error) {
	relay, err := domain.NormalizeRelayURL(rawURL)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, found, err := r.readSchema()
	if err != nil {
		return "", err
	}
	if !found {
		file.Relays = append([]string(nil), DefaultRelays...)
	}
	file.applyDefaults()

	for _, existing := range file.Relays {
		if existing == string(relay) {
			return relay, nil
		}
	}
	file.Relays = append(file.Relays, string(relay))

	if err := r.writeSchema(file); err != nil {
		return "", err
	}

	return relay, nil
}

func (r *Repository) Remove(ctx context.Context, rawURL string) (domain.Relay, error) {
	relay, err := domain.NormalizeRelayURL(rawURL)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, found, err := r.readSchema()
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%w: %s", ErrRelayNotConfigured, relay)
	}
	file.applyDefaults()

	kept := file.Relays[:0]
	removed := false
	for _, existing := range file.Relays {
		if existing == string(relay) {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		return "", fmt.Errorf("%w: %s", ErrRelayNotConfigured, relay)
	}
	file.Relays = kept

	if err := r.writeSchema(file); err != nil {
		return "", err
	}

	return relay, nil
}

func (r *Repository) readSchema() (fileSchema, bool, error) {
	data, err := os.ReadFile(r.relaysPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, false, nil
		}
		return fileSchema{}, false, fmt.Errorf("read relays file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, false, fmt.Errorf("decode relays file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, false, err
	}
	file.applyDefaults()

	return file, true, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.relaysPath), relaysDirMode); err != nil {
		return fmt.Errorf("create relays directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode relays file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.relaysPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp relays file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp relays file: %w", err)
	}

	if err := tempFile.Chmod(relaysFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp relays file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp relays file: %w", err)
	}

	if err := os.Rename(tempName, r.relaysPath); err != nil {
		return fmt.Errorf("replace relays file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.relaysPath, relaysFileMode); err != nil {
		return fmt.Errorf("chmod relays file: %w", err)
	}

	return nil
}

func normalizeRelaysPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve relays path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
