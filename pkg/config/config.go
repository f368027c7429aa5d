package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the config file search list.
const ConfigPathEnvVar = "COLDSTORE_CONFIG"

// DefaultConfigPaths is searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"coldstore.yaml",
	"coldstore.yml",
	"/etc/coldstore/coldstore.yaml",
}

// ArchiveSet is one logical backup destination under management.
type ArchiveSet struct {
	// Dest is the destination directory, relative to DestDir.
	Dest string `koanf:"dest"`
	// Name is the archive-set name used in volume filenames.
	Name string `koanf:"name"`
	// Source is the directory to archive, relative to BaseDir.
	Source string `koanf:"source"`
	// Exclude lists path patterns excluded from archiving.
	Exclude []string `koanf:"exclude"`
}

type SevenZip struct {
	CompressionLevel string `koanf:"compression_level"`
	VolumeSize       string `koanf:"volume_size"`
}

type Config struct {
	BaseDir     string       `koanf:"base_dir"`
	DestDir     string       `koanf:"dest_dir"`
	GitDirs     []string     `koanf:"git_dirs"`
	PasswordEnv string       `koanf:"password_env"`
	SevenZip    SevenZip     `koanf:"sevenzip"`
	ArchiveSets []ArchiveSet `koanf:"archive_sets"`
	AllowSkip   bool         `koanf:"allow_skip"`
	CatalogPath string       `koanf:"catalog_path"`
}

func defaultConfig() *Config {
	return &Config{
		BaseDir:     "/mnt/e",
		DestDir:     "/mnt/e/mnt/aws.local",
		PasswordEnv: "BACKUP_PASSWORD",
		SevenZip: SevenZip{
			CompressionLevel: "-mx5",
			VolumeSize:       "1g",
		},
		AllowSkip: true,
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// COLDSTORE_* environment variables, in increasing priority. An empty path
// falls back to the default search list.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// COLDSTORE_DEST_DIR -> dest_dir, COLDSTORE_SEVENZIP_VOLUME_SIZE stays
	// flat; nested keys are addressed with double underscores.
	envProvider := env.Provider("COLDSTORE_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "COLDSTORE_"))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	for i, set := range c.ArchiveSets {
		if set.Dest == "" {
			return fmt.Errorf("archive_sets[%d]: dest is required", i)
		}
		if set.Name == "" {
			return fmt.Errorf("archive_sets[%d]: name is required", i)
		}
	}
	return nil
}

// Password reads the backup password from the configured environment
// variable. The second return is false when the variable is unset.
func (c *Config) Password() (string, bool) {
	return os.LookupEnv(c.PasswordEnv)
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
