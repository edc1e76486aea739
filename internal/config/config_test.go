package config

import "testing"

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
		Generation: GenerationConfig{
			Provider: "gemini",
			Providers: map[string]ProviderConfig{
				"gemini": {APIKey: "test-key", Model: "gemini-2.0-flash"},
			},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDatabaseAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Generation.Provider = "mistral"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}

	expected := `generation.provider must be "gemini" or "openai", got "mistral"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_SelectedProviderNotConfigured(t *testing.T) {
	cfg := validConfig()
	cfg.Generation.Provider = "openai"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unconfigured provider")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Generation.Provider != "gemini" {
		t.Errorf("expected Provider=gemini, got %q", cfg.Generation.Provider)
	}
	if cfg.Matching.TopK != 10 {
		t.Errorf("expected TopK=10, got %d", cfg.Matching.TopK)
	}
	if cfg.Matching.Concurrency != 4 {
		t.Errorf("expected Concurrency=4, got %d", cfg.Matching.Concurrency)
	}
	if cfg.Matching.MaxAnalysisLen != 500 {
		t.Errorf("expected MaxAnalysisLen=500, got %d", cfg.Matching.MaxAnalysisLen)
	}
	if cfg.Index.Dimensions != 1536 {
		t.Errorf("expected Dimensions=1536, got %d", cfg.Index.Dimensions)
	}
	if cfg.Index.HNSWM != 32 {
		t.Errorf("expected HNSWM=32, got %d", cfg.Index.HNSWM)
	}
	if cfg.Index.HNSWEFConstruct != 400 {
		t.Errorf("expected HNSWEFConstruct=400, got %d", cfg.Index.HNSWEFConstruct)
	}
	if cfg.Index.MaxListSize != 1000 {
		t.Errorf("expected MaxListSize=1000, got %d", cfg.Index.MaxListSize)
	}
	if cfg.Storage.KeyPrefix != "talentmatch:" {
		t.Errorf("expected KeyPrefix='talentmatch:', got %q", cfg.Storage.KeyPrefix)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 120, ShutdownSec: 5},
		Matching: MatchingConfig{TopK: 25, Concurrency: 8, MaxAnalysisLen: 300},
		Index:    IndexConfig{Dimensions: 768, HNSWM: 16, HNSWEFConstruct: 200, MaxListSize: 50},
		Storage:  StorageConfig{KeyPrefix: "custom:"},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Matching.TopK != 25 {
		t.Errorf("expected TopK=25, got %d", cfg.Matching.TopK)
	}
	if cfg.Index.Dimensions != 768 {
		t.Errorf("expected Dimensions=768, got %d", cfg.Index.Dimensions)
	}
	if cfg.Storage.KeyPrefix != "custom:" {
		t.Errorf("expected KeyPrefix='custom:', got %q", cfg.Storage.KeyPrefix)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TM_TEST_ADDR", "redis-main:6379")

	in := []byte("addrs: [\"${TM_TEST_ADDR}\"]\nprefix: \"${TM_TEST_MISSING:-talentmatch:}\"\nempty: \"${TM_TEST_MISSING}\"")
	out := string(expandEnvVars(in))

	want := "addrs: [\"redis-main:6379\"]\nprefix: \"talentmatch:\"\nempty: \"\""
	if out != want {
		t.Errorf("expanded config:\ngot:  %q\nwant: %q", out, want)
	}
}
