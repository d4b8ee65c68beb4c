package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestResolveServeConfigDefaults(t *testing.T) {
	cfg, err := resolveServeConfig(t.TempDir(), flagOverrides{})
	if err != nil {
		t.Fatalf("resolveServeConfig error: %v", err)
	}
	want := serveConfig{Port: 8000, Open: true, App: "."}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveServeConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, configFile), "port: 9000\nopen: false\napp: ./web\n")

	cfg, err := resolveServeConfig(dir, flagOverrides{})
	if err != nil {
		t.Fatalf("resolveServeConfig error: %v", err)
	}
	want := serveConfig{Port: 9000, Open: false, App: "./web"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveServeConfigEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, configFile), "port: 9000\nopen: false\n")
	t.Setenv("FORMIC_PORT", "9100")
	t.Setenv("FORMIC_OPEN", "true")
	t.Setenv("FORMIC_APP", "./env-app")

	cfg, err := resolveServeConfig(dir, flagOverrides{})
	if err != nil {
		t.Fatalf("resolveServeConfig error: %v", err)
	}
	want := serveConfig{Port: 9100, Open: true, App: "./env-app"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveServeConfigFlagsBeatEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FORMIC_PORT", "9100")
	t.Setenv("FORMIC_OPEN", "true")

	flags := flagOverrides{port: 9200, portSet: true, noOpen: true, app: "./flag-app"}
	cfg, err := resolveServeConfig(dir, flags)
	if err != nil {
		t.Fatalf("resolveServeConfig error: %v", err)
	}
	want := serveConfig{Port: 9200, Open: false, App: "./flag-app"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveServeConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "custom.env"), "FORMIC_PORT=9300\n")
	writeFile(t, filepath.Join(dir, configFile), "env_file: "+filepath.Join(dir, "custom.env")+"\n")
	// godotenv sets process-wide variables; clean up after the load.
	defer os.Unsetenv("FORMIC_PORT")

	cfg, err := resolveServeConfig(dir, flagOverrides{})
	if err != nil {
		t.Fatalf("resolveServeConfig error: %v", err)
	}
	if cfg.Port != 9300 {
		t.Errorf("Port = %d, want 9300 from env file", cfg.Port)
	}
}

func TestResolveServeConfigDefaultEnvFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "FORMIC_APP=./sub\n")
	defer os.Unsetenv("FORMIC_APP")

	cfg, err := resolveServeConfig(dir, flagOverrides{})
	if err != nil {
		t.Fatalf("resolveServeConfig error: %v", err)
	}
	if cfg.App != "./sub" {
		t.Errorf("App = %q, want %q from .env", cfg.App, "./sub")
	}
}

func TestResolveServeConfigMissingEnvFile(t *testing.T) {
	dir := t.TempDir()
	flags := flagOverrides{envFile: filepath.Join(dir, "missing.env")}
	if _, err := resolveServeConfig(dir, flags); err == nil {
		t.Fatal("expected error for missing env file")
	}
}

func TestResolveServeConfigBadPort(t *testing.T) {
	t.Setenv("FORMIC_PORT", "not-a-port")
	if _, err := resolveServeConfig(t.TempDir(), flagOverrides{}); err == nil {
		t.Fatal("expected error for unparseable FORMIC_PORT")
	}
}

func TestAppSettings(t *testing.T) {
	environ := []string{
		"FORMIC_APP_API_KEY=abc123",
		"HOME=/home/dev",
		"FORMIC_APP_REGION=eu-west",
		"FORMIC_APP_=ignored",
		"FORMIC_PORT=8000",
	}
	want := map[string]string{
		"API_KEY": "abc123",
		"REGION":  "eu-west",
	}
	if diff := cmp.Diff(want, appSettings(environ)); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}
