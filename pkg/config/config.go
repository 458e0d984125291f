package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/accrisk/pkg/automation"
	"github.com/doodlesbykumbi/accrisk/pkg/model"
)

const (
	DefaultConfigPath = "/etc/accrisk"
	ConfigFileName    = "accrisk.yml"

	// MinJWTSecretLength is the shortest accepted HS256 secret
	MinJWTSecretLength = 32
)

// Config holds all account risk settings
type Config struct {
	// OrgID is the organization stores are scoped to
	OrgID string `yaml:"org_id" json:"org_id"`

	// BulkBatchSize is the number of risks written per transaction
	BulkBatchSize int `yaml:"bulk_batch_size" json:"bulk_batch_size"`

	// SeedCount is the default number of synthetic risks to generate
	SeedCount int `yaml:"seed_count" json:"seed_count"`

	// CheckTaskName is the registered name of the account check task
	CheckTaskName string `yaml:"check_task_name" json:"check_task_name"`

	// CheckTaskCommand is the program run by "automation execute"; the
	// automation id and trigger are appended as arguments
	CheckTaskCommand string `yaml:"check_task_command" json:"check_task_command"`

	// JWTSecret signs and verifies API bearer tokens
	JWTSecret string `yaml:"jwt_secret" json:"-"`

	// ListLimitMax caps the page size of risk listings
	ListLimitMax int `yaml:"list_limit_max" json:"list_limit_max"`

	// AuditEnabled turns audit logging on
	AuditEnabled bool `yaml:"audit_enabled" json:"audit_enabled"`

	// RateLimitRPS is the sustained request rate allowed per client IP; 0 disables limiting
	RateLimitRPS int `yaml:"rate_limit_rps" json:"rate_limit_rps"`

	// RateLimitBurst is the request burst allowed per client IP
	RateLimitBurst int `yaml:"rate_limit_burst" json:"rate_limit_burst"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

func newDefault() *Config {
	return &Config{
		OrgID:          model.DefaultOrgID,
		BulkBatchSize:  50,
		SeedCount:      1000,
		CheckTaskName:  automation.DefaultCheckTaskName,
		ListLimitMax:   1000,
		AuditEnabled:   true,
		RateLimitRPS:   50,
		RateLimitBurst: 100,
		sources:        make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("ACCRISK_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig fileValues
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

// fileValues uses pointers for booleans so an explicit false in the file is
// distinguishable from an absent key
type fileValues struct {
	OrgID          string `yaml:"org_id"`
	BulkBatchSize  int    `yaml:"bulk_batch_size"`
	SeedCount      int    `yaml:"seed_count"`
	CheckTaskName  string `yaml:"check_task_name"`
	CheckTaskCmd   string `yaml:"check_task_command"`
	JWTSecret      string `yaml:"jwt_secret"`
	ListLimitMax   int    `yaml:"list_limit_max"`
	AuditEnabled   *bool  `yaml:"audit_enabled"`
	RateLimitRPS   *int   `yaml:"rate_limit_rps"`
	RateLimitBurst int    `yaml:"rate_limit_burst"`
}

func attributeNames() []string {
	return []string{
		"org_id", "bulk_batch_size", "seed_count", "check_task_name",
		"check_task_command", "jwt_secret", "list_limit_max", "audit_enabled",
		"rate_limit_rps", "rate_limit_burst",
	}
}

func (c *Config) applyFileConfig(file *fileValues) {
	if file.OrgID != "" {
		c.OrgID = file.OrgID
		c.sources["org_id"] = "file"
	}
	if file.BulkBatchSize != 0 {
		c.BulkBatchSize = file.BulkBatchSize
		c.sources["bulk_batch_size"] = "file"
	}
	if file.SeedCount != 0 {
		c.SeedCount = file.SeedCount
		c.sources["seed_count"] = "file"
	}
	if file.CheckTaskName != "" {
		c.CheckTaskName = file.CheckTaskName
		c.sources["check_task_name"] = "file"
	}
	if file.CheckTaskCmd != "" {
		c.CheckTaskCommand = file.CheckTaskCmd
		c.sources["check_task_command"] = "file"
	}
	if file.JWTSecret != "" {
		c.JWTSecret = file.JWTSecret
		c.sources["jwt_secret"] = "file"
	}
	if file.ListLimitMax != 0 {
		c.ListLimitMax = file.ListLimitMax
		c.sources["list_limit_max"] = "file"
	}
	if file.AuditEnabled != nil {
		c.AuditEnabled = *file.AuditEnabled
		c.sources["audit_enabled"] = "file"
	}
	if file.RateLimitRPS != nil {
		c.RateLimitRPS = *file.RateLimitRPS
		c.sources["rate_limit_rps"] = "file"
	}
	if file.RateLimitBurst != 0 {
		c.RateLimitBurst = file.RateLimitBurst
		c.sources["rate_limit_burst"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("ACCRISK_ORG_ID"); val != "" {
		c.OrgID = val
		c.sources["org_id"] = "environment"
	}
	if val := os.Getenv("ACCRISK_BULK_BATCH_SIZE"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.BulkBatchSize = i
			c.sources["bulk_batch_size"] = "environment"
		}
	}
	if val := os.Getenv("ACCRISK_SEED_COUNT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SeedCount = i
			c.sources["seed_count"] = "environment"
		}
	}
	if val := os.Getenv("ACCRISK_CHECK_TASK_NAME"); val != "" {
		c.CheckTaskName = val
		c.sources["check_task_name"] = "environment"
	}
	if val := os.Getenv("ACCRISK_CHECK_TASK_COMMAND"); val != "" {
		c.CheckTaskCommand = val
		c.sources["check_task_command"] = "environment"
	}
	if val := os.Getenv("ACCRISK_JWT_SECRET"); val != "" {
		c.JWTSecret = val
		c.sources["jwt_secret"] = "environment"
	}
	if val := os.Getenv("ACCRISK_LIST_LIMIT_MAX"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.ListLimitMax = i
			c.sources["list_limit_max"] = "environment"
		}
	}
	if val := os.Getenv("ACCRISK_AUDIT_ENABLED"); val != "" {
		c.AuditEnabled = val == "true" || val == "1"
		c.sources["audit_enabled"] = "environment"
	}
	if val := os.Getenv("ACCRISK_RATE_LIMIT_RPS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.RateLimitRPS = i
			c.sources["rate_limit_rps"] = "environment"
		}
	}
	if val := os.Getenv("ACCRISK_RATE_LIMIT_BURST"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.RateLimitBurst = i
			c.sources["rate_limit_burst"] = "environment"
		}
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OrgID) == "" {
		return fmt.Errorf("org_id must not be empty")
	}
	if c.BulkBatchSize < 1 {
		return fmt.Errorf("invalid bulk_batch_size: %d", c.BulkBatchSize)
	}
	if c.SeedCount < 0 {
		return fmt.Errorf("invalid seed_count: %d", c.SeedCount)
	}
	if c.ListLimitMax < 1 {
		return fmt.Errorf("invalid list_limit_max: %d", c.ListLimitMax)
	}
	if strings.TrimSpace(c.CheckTaskName) == "" {
		return fmt.Errorf("check_task_name must not be empty")
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("invalid rate_limit_rps: %d", c.RateLimitRPS)
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return fmt.Errorf("invalid rate_limit_burst: %d", c.RateLimitBurst)
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf("jwt_secret must be at least %d bytes", MinJWTSecretLength)
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources.
// The JWT secret is masked.
func (c *Config) Attributes() []Attribute {
	secret := ""
	if c.JWTSecret != "" {
		secret = "********"
	}
	return []Attribute{
		{Name: "org_id", Value: c.OrgID, Source: c.Source("org_id")},
		{Name: "bulk_batch_size", Value: strconv.Itoa(c.BulkBatchSize), Source: c.Source("bulk_batch_size")},
		{Name: "seed_count", Value: strconv.Itoa(c.SeedCount), Source: c.Source("seed_count")},
		{Name: "check_task_name", Value: c.CheckTaskName, Source: c.Source("check_task_name")},
		{Name: "check_task_command", Value: c.CheckTaskCommand, Source: c.Source("check_task_command")},
		{Name: "jwt_secret", Value: secret, Source: c.Source("jwt_secret")},
		{Name: "list_limit_max", Value: strconv.Itoa(c.ListLimitMax), Source: c.Source("list_limit_max")},
		{Name: "audit_enabled", Value: strconv.FormatBool(c.AuditEnabled), Source: c.Source("audit_enabled")},
		{Name: "rate_limit_rps", Value: strconv.Itoa(c.RateLimitRPS), Source: c.Source("rate_limit_rps")},
		{Name: "rate_limit_burst", Value: strconv.Itoa(c.RateLimitBurst), Source: c.Source("rate_limit_burst")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-24s %-50s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-24s %-50s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-24s %-50s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
