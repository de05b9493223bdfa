package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoaderConfig configures where input documents are read from.
type LoaderConfig struct {
	DataDir string `yaml:"data_dir"`
}

// ChunkerConfig configures how document content is split into chunks.
type ChunkerConfig struct {
	ChunkSize    int `yaml:"chunk_size"`
	ChunkOverlap int `yaml:"chunk_overlap"`
}

// OpenAIEmbedderConfig holds configuration for the OpenAI-compatible
// embedder.
type OpenAIEmbedderConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// HashingEmbedderConfig holds configuration for the local hashing
// embedder.
type HashingEmbedderConfig struct {
	Dimension int `yaml:"dimension"`
}

// EmbedderConfig selects and configures the text embedder implementation.
type EmbedderConfig struct {
	Type    string                 `yaml:"type"`
	OpenAI  *OpenAIEmbedderConfig  `yaml:"openai,omitempty"`
	Hashing *HashingEmbedderConfig `yaml:"hashing,omitempty"`
}

// SQLiteStoreConfig contains the on-disk location of the SQLite store.
type SQLiteStoreConfig struct {
	Path string `yaml:"path"`
}

// StoreConfig selects and configures the vector store implementation.
type StoreConfig struct {
	Type       string             `yaml:"type"`
	Collection string             `yaml:"collection"`
	SQLite     *SQLiteStoreConfig `yaml:"sqlite,omitempty"`
}

// LLMConfig configures the chat-completion client. Credentials and model
// selection come from the environment (see internal/llm).
type LLMConfig struct {
	TimeoutSecs int `yaml:"timeout_secs"`
}

// RetrievalConfig configures the query path.
type RetrievalConfig struct {
	TopK int `yaml:"top_k"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Loader    LoaderConfig    `yaml:"loader"`
	Chunker   ChunkerConfig   `yaml:"chunker"`
	Embedder  EmbedderConfig  `yaml:"embedder"`
	Store     StoreConfig     `yaml:"store"`
	LLM       LLMConfig       `yaml:"llm"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults. Environment overrides are applied either way.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then
// ~/.config/rag-assistant/config.yaml. If neither exists, it writes
// defaults to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnvOverrides(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as
// needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "rag-assistant", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Loader:  LoaderConfig{DataDir: "data"},
		Chunker: ChunkerConfig{ChunkSize: 500, ChunkOverlap: 50},
		Embedder: EmbedderConfig{
			Type:    "hashing",
			Hashing: &HashingEmbedderConfig{Dimension: 384},
		},
		Store: StoreConfig{
			Type:       "sqlite",
			Collection: "rag_documents",
			SQLite:     &SQLiteStoreConfig{Path: filepath.Join(".rag", "vectors.db")},
		},
		LLM:       LLMConfig{TimeoutSecs: 120},
		Retrieval: RetrievalConfig{TopK: 3},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Loader.DataDir == "" {
		cfg.Loader.DataDir = "data"
	}
	if cfg.Chunker.ChunkSize == 0 {
		cfg.Chunker.ChunkSize = 500
	}
	if cfg.Chunker.ChunkOverlap == 0 {
		cfg.Chunker.ChunkOverlap = 50
	}
	if cfg.Store.Collection == "" {
		cfg.Store.Collection = "rag_documents"
	}
	if cfg.Store.Type == "sqlite" || cfg.Store.Type == "" {
		if cfg.Store.SQLite == nil {
			cfg.Store.SQLite = &SQLiteStoreConfig{}
		}
		if cfg.Store.SQLite.Path == "" {
			cfg.Store.SQLite.Path = filepath.Join(".rag", "vectors.db")
		}
	}
	if cfg.Embedder.Type == "hashing" || cfg.Embedder.Type == "" {
		if cfg.Embedder.Hashing == nil {
			cfg.Embedder.Hashing = &HashingEmbedderConfig{}
		}
		if cfg.Embedder.Hashing.Dimension == 0 {
			cfg.Embedder.Hashing.Dimension = 384
		}
	}
	if cfg.Embedder.Type == "openai" {
		if cfg.Embedder.OpenAI == nil {
			cfg.Embedder.OpenAI = &OpenAIEmbedderConfig{}
		}
		if cfg.Embedder.OpenAI.BaseURL == "" {
			cfg.Embedder.OpenAI.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Embedder.OpenAI.APIKeyEnv == "" {
			cfg.Embedder.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
		}
		if cfg.Embedder.OpenAI.Model == "" {
			cfg.Embedder.OpenAI.Model = "text-embedding-3-small"
		}
		if cfg.Embedder.OpenAI.TimeoutSecs == 0 {
			cfg.Embedder.OpenAI.TimeoutSecs = 30
		}
	}
	if cfg.LLM.TimeoutSecs == 0 {
		cfg.LLM.TimeoutSecs = 120
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = 3
	}
}

// applyEnvOverrides applies the environment-style overrides that take
// precedence over the config file.
func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("COLLECTION_NAME"); v != "" {
		cfg.Store.Collection = v
	}
	if v := os.Getenv("EMBEDDING_MODEL"); v != "" {
		if cfg.Embedder.OpenAI == nil {
			cfg.Embedder.OpenAI = &OpenAIEmbedderConfig{}
		}
		cfg.Embedder.OpenAI.Model = v
	}
}
