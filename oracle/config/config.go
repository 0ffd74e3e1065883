package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pelletier/go-toml/v2"

	"github.com/GPTx-global/bandoracle/encoding"
	"github.com/GPTx-global/bandoracle/oracle/log"
	bandoracletypes "github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

const fileName = "config.toml"

var (
	globalConfig configData
	home         string
	mu           sync.Mutex
)

type configData struct {
	Chain chainConfig `toml:"chain"`
	Key   keyConfig   `toml:"key"`
	Gas   gasConfig   `toml:"gas"`
	Retry retryConfig `toml:"retry"`
	Log   logConfig   `toml:"log"`
	Jobs  []jobConfig `toml:"jobs"`
}

type chainConfig struct {
	ID       string `toml:"id"`
	Endpoint string `toml:"endpoint"`
}

type keyConfig struct {
	Name           string `toml:"name"`
	KeyringDir     string `toml:"keyring_dir"`
	KeyringBackend string `toml:"keyring_backend"`
}

type gasConfig struct {
	Limit  uint64 `toml:"limit"`
	Prices string `toml:"prices"`
}

type retryConfig struct {
	// MaxAttempts bounds the resends of a timed out request before it falls
	// back to its regular interval.
	MaxAttempts uint64 `toml:"max_attempts"`
	Delay       uint64 `toml:"delay"`
}

type logConfig struct {
	Level  string `toml:"level"`
	ToFile bool   `toml:"to_file"`
}

type jobConfig struct {
	RequestID string `toml:"request_id"`
	Interval  uint64 `toml:"interval"`
}

// Job is a registered request the daemon sends every Interval.
type Job struct {
	RequestID string
	Interval  time.Duration
}

// DefaultHome returns ~/.bandoracled
func DefaultHome() string {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".bandoracled"
	}

	return filepath.Join(userHome, ".bandoracled")
}

// Load reads <dir>/config.toml, writing the defaults first when the file does
// not exist yet.
func Load(dir string) error {
	mu.Lock()
	defer mu.Unlock()

	home = dir
	path := filepath.Join(dir, fileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfig(path); err != nil {
			return fmt.Errorf("failed to create default config: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded configData
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}

	if err := validateConfig(loaded); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	globalConfig = loaded
	return nil
}

func defaultConfig(dir string) configData {
	return configData{
		Chain: chainConfig{
			ID:       "guru_3110-1",
			Endpoint: "http://localhost:26657",
		},
		Key: keyConfig{
			Name:           "node1",
			KeyringDir:     dir,
			KeyringBackend: keyring.BackendTest,
		},
		Gas: gasConfig{
			Limit:  300000,
			Prices: "630000000000aguru",
		},
		Retry: retryConfig{
			MaxAttempts: 3,
			Delay:       10,
		},
		Log: logConfig{
			Level: "info",
		},
		Jobs: []jobConfig{},
	}
}

func createDefaultConfig(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(defaultConfig(dir))
	if err != nil {
		return fmt.Errorf("failed to marshal TOML: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func validateConfig(cfg configData) error {
	if cfg.Chain.ID == "" {
		return fmt.Errorf("chain ID is required")
	}

	if cfg.Chain.Endpoint == "" {
		return fmt.Errorf("chain endpoint is required")
	}

	if cfg.Key.Name == "" {
		return fmt.Errorf("key name is required")
	}

	if cfg.Key.KeyringDir == "" {
		return fmt.Errorf("keyring directory is required")
	}

	if _, err := keyringBackend(cfg.Key.KeyringBackend); err != nil {
		return err
	}

	if cfg.Gas.Limit == 0 {
		return fmt.Errorf("gas limit is required")
	}

	if _, err := sdk.ParseDecCoin(cfg.Gas.Prices); err != nil {
		return fmt.Errorf("invalid gas prices %q: %w", cfg.Gas.Prices, err)
	}

	seen := make(map[string]bool, len(cfg.Jobs))
	for _, job := range cfg.Jobs {
		if _, err := bandoracletypes.ParseRequestID(job.RequestID); err != nil {
			return fmt.Errorf("job: %w", err)
		}
		if seen[job.RequestID] {
			return fmt.Errorf("duplicate job for request %s", job.RequestID)
		}
		seen[job.RequestID] = true

		if job.Interval == 0 {
			return fmt.Errorf("interval of request %s cannot be zero", job.RequestID)
		}
	}

	return nil
}

func keyringBackend(name string) (string, error) {
	switch name {
	case keyring.BackendTest, keyring.BackendFile, keyring.BackendOS, keyring.BackendMemory:
		return name, nil
	default:
		return "", fmt.Errorf("invalid keyring backend: %q", name)
	}
}

func Print() {
	log.Infof("%-15s: %s", "Home", Home())
	log.Infof("%-15s: %s", "Chain ID", ChainID())
	log.Infof("%-15s: %s", "Chain Endpoint", ChainEndpoint())
	log.Infof("%-15s: %s", "Key Name", KeyName())
	log.Infof("%-15s: %s", "Keyring Dir", KeyringDir())
	log.Infof("%-15s: %s", "Keyring Backend", KeyringBackend())
	log.Infof("%-15s: %d", "Gas Limit", GasLimit())
	log.Infof("%-15s: %s", "Gas Prices", GasPrices())
	log.Infof("%-15s: %d", "Jobs", len(Jobs()))
}

func Home() string {
	mu.Lock()
	defer mu.Unlock()

	return home
}

func ChainID() string {
	return globalConfig.Chain.ID
}

func ChainEndpoint() string {
	return globalConfig.Chain.Endpoint
}

func KeyName() string {
	return globalConfig.Key.Name
}

func KeyringDir() string {
	return globalConfig.Key.KeyringDir
}

func KeyringBackend() string {
	return globalConfig.Key.KeyringBackend
}

// Keyring opens the configured keyring.
func Keyring() (keyring.Keyring, error) {
	backend, err := keyringBackend(KeyringBackend())
	if err != nil {
		return nil, err
	}

	encCfg := encoding.MakeConfig()
	kr, err := keyring.New(sdk.KeyringServiceName(), backend, KeyringDir(), nil, encCfg.Codec)
	if err != nil {
		return nil, fmt.Errorf("failed to create keyring: %w", err)
	}

	return kr, nil
}

// Address returns the address of the configured key in kr.
func Address(kr keyring.Keyring) (sdk.AccAddress, error) {
	info, err := kr.Key(KeyName())
	if err != nil {
		return nil, fmt.Errorf("failed to get key info: %w", err)
	}

	return info.GetAddress()
}

func GasLimit() uint64 {
	return globalConfig.Gas.Limit
}

func GasPrices() string {
	mu.Lock()
	defer mu.Unlock()

	return globalConfig.Gas.Prices
}

func SetGasPrices(gasPrices string) {
	mu.Lock()
	defer mu.Unlock()

	globalConfig.Gas.Prices = gasPrices
}

func RetryMaxAttempts() uint64 {
	return globalConfig.Retry.MaxAttempts
}

func RetryDelay() time.Duration {
	return time.Duration(globalConfig.Retry.Delay) * time.Second
}

func LogLevel() string {
	return globalConfig.Log.Level
}

func LogToFile() bool {
	return globalConfig.Log.ToFile
}

func Jobs() []Job {
	jobs := make([]Job, 0, len(globalConfig.Jobs))
	for _, job := range globalConfig.Jobs {
		jobs = append(jobs, Job{
			RequestID: job.RequestID,
			Interval:  time.Duration(job.Interval) * time.Second,
		})
	}

	return jobs
}

func ChannelSize() int {
	return 1 << 10
}

func SetForTesting(id, endpoint, keyName, keyringDir, keyringBackend, gasPrices string, gasLimit uint64) {
	mu.Lock()
	defer mu.Unlock()

	home = keyringDir
	globalConfig = defaultConfig(keyringDir)
	globalConfig.Chain = chainConfig{
		ID:       id,
		Endpoint: endpoint,
	}
	globalConfig.Key = keyConfig{
		Name:           keyName,
		KeyringDir:     keyringDir,
		KeyringBackend: keyringBackend,
	}
	globalConfig.Gas = gasConfig{
		Limit:  gasLimit,
		Prices: gasPrices,
	}
}
