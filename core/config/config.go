package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"entra-sync/core/directory"
	"entra-sync/core/logger"
	"entra-sync/core/source"
	"entra-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Graph holds configuration for the remote identity directory.
	Graph directory.Config `mapstructure:"graph"`
	// Mongo holds configuration for the source document store.
	Mongo source.Config `mapstructure:"mongo"`
	// Orphans holds configuration for the orphan scan.
	Orphans OrphanConfig `mapstructure:"orphans"`
	// Storage holds configuration for optional report archiving.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// OrphanConfig holds configuration for the orphan scan.
type OrphanConfig struct {
	// KeepList is a comma-separated list of principal names exempt from
	// orphan reporting, matched case-insensitively.
	KeepList string `mapstructure:"keep_list" default:""`
	// ReportPath is where the orphan report artifact is written.
	ReportPath string `mapstructure:"report_path" default:"orphaned_entra_users.txt"`
}

// KeepListEntries returns the parsed keep-list, or nil when none is configured.
func (c OrphanConfig) KeepListEntries() []string {
	if strings.TrimSpace(c.KeepList) == "" {
		return nil
	}

	parts := strings.Split(c.KeepList, ",")
	entries := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			entries = append(entries, p)
		}
	}
	return entries
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. GRAPH_TENANT_ID -> graph.tenant_id)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate reports the required keys that are missing. A non-nil error is a
// fatal configuration failure: the run aborts before any record is processed.
func (c *Config) Validate() error {
	var missing []string

	required := map[string]string{
		"GRAPH_TENANT_ID":             c.Graph.TenantID,
		"GRAPH_CLIENT_ID":             c.Graph.ClientID,
		"GRAPH_CLIENT_SECRET":         c.Graph.ClientSecret,
		"GRAPH_DOMAIN":                c.Graph.Domain,
		"GRAPH_AFFILIATION_ATTRIBUTE": c.Graph.AffiliationAttribute,
		"MONGO_URI":                   c.Mongo.URI,
		"MONGO_DATABASE":              c.Mongo.Database,
		"MONGO_COLLECTION":            c.Mongo.Collection,
	}

	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		// Stable order for error messages and tests.
		sort.Strings(missing)
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
