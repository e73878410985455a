package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP:   HTTPConfig{Port: 8080},
		Corpus: CorpusConfig{Driver: "file", Path: "data/papers.json"},
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Corpus.Driver != "file" {
		t.Errorf("corpus driver = %q, want \"file\"", cfg.Corpus.Driver)
	}
	if cfg.Corpus.KeyPrefix != "litmatch:" {
		t.Errorf("key prefix = %q, want \"litmatch:\"", cfg.Corpus.KeyPrefix)
	}
	if cfg.Engine.MinTokenLength != 2 {
		t.Errorf("min token length = %d, want 2", cfg.Engine.MinTokenLength)
	}
	if cfg.Engine.ScorePrecision != 4 {
		t.Errorf("score precision = %d, want 4", cfg.Engine.ScorePrecision)
	}
	if cfg.Limits.DefaultResults != 5 || cfg.Limits.MaxResults != 20 {
		t.Errorf("limits = %d/%d, want 5/20", cfg.Limits.DefaultResults, cfg.Limits.MaxResults)
	}
	if cfg.Cache.Size != 100 {
		t.Errorf("cache size = %d, want 100", cfg.Cache.Size)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.WriteTimeoutSec != 10 || cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("unexpected http timeouts: %+v", cfg.HTTP)
	}
}

func TestApplyDefaults_NegativeCacheDisables(t *testing.T) {
	cfg := Config{Cache: CacheConfig{Size: -1}}
	cfg.ApplyDefaults()

	if cfg.Cache.Size != -1 {
		t.Errorf("cache size = %d, want -1 preserved", cfg.Cache.Size)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"port zero", func(c *Config) { c.HTTP.Port = 0 }, "http.port"},
		{"port too high", func(c *Config) { c.HTTP.Port = 70000 }, "http.port"},
		{"unknown driver", func(c *Config) { c.Corpus.Driver = "postgres" }, "corpus.driver"},
		{"file driver without path", func(c *Config) { c.Corpus.Path = "" }, "corpus.path"},
		{"redis driver without addrs", func(c *Config) {
			c.Corpus.Driver = "redis"
			c.Corpus.Addrs = nil
		}, "corpus.addrs"},
		{"precision too high", func(c *Config) { c.Engine.ScorePrecision = 9 }, "score_precision"},
		{"default above max", func(c *Config) {
			c.Limits.DefaultResults = 30
			c.Limits.MaxResults = 20
		}, "default_results"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("LITMATCH_TEST_ADDR", "redis:6379")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"set variable", "addr: ${LITMATCH_TEST_ADDR}", "addr: redis:6379"},
		{"unset variable", "addr: ${LITMATCH_TEST_UNSET}", "addr: "},
		{"default used", "addr: ${LITMATCH_TEST_UNSET:-localhost:6379}", "addr: localhost:6379"},
		{"default ignored when set", "addr: ${LITMATCH_TEST_ADDR:-localhost:6379}", "addr: redis:6379"},
		{"no variables", "port: 8080", "port: 8080"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(expandEnvVars([]byte(tt.in)))
			if got != tt.want {
				t.Errorf("expandEnvVars(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if env := GetEnv(); env != "local" {
		t.Errorf("GetEnv() = %q, want \"local\"", env)
	}

	t.Setenv("ENV", "prod")
	if env := GetEnv(); env != "prod" {
		t.Errorf("GetEnv() = %q, want \"prod\"", env)
	}
}
