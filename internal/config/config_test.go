package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"
)

// TestSecretStringFmtRedaction verifies the database URL never leaks through
// the common formatting verbs.
func TestSecretStringFmtRedaction(t *testing.T) {
	cfg := Config{Database: DatabaseConfig{URL: "postgres://farm:hunter2@db:5432/farmdesk"}}

	for _, verb := range []string{"%s", "%v", "%+v", "%#v"} {
		out := fmt.Sprintf(verb, cfg.Database.URL)
		if strings.Contains(out, "hunter2") {
			t.Errorf("fmt %s leaked secret: %q", verb, out)
		}
	}
}

// TestConfigSecretFieldsJSONRedaction verifies a marshalled Config carries no
// plaintext secrets.
func TestConfigSecretFieldsJSONRedaction(t *testing.T) {
	cfg := Config{Database: DatabaseConfig{URL: "postgres://farm:hunter2@db:5432/farmdesk"}}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if strings.Contains(string(data), "hunter2") {
		t.Errorf("JSON output leaked secret: %s", data)
	}
	if !strings.Contains(string(data), "***REDACTED***") {
		t.Errorf("JSON output missing redaction placeholder: %s", data)
	}
}

// TestEnvconfigTags verifies every configurable field is bound to the
// documented environment variable.
func TestEnvconfigTags(t *testing.T) {
	tests := []struct {
		typ   reflect.Type
		field string
		env   string
	}{
		{reflect.TypeOf(Config{}), "Environment", "APP_ENV"},
		{reflect.TypeOf(Config{}), "LogLevel", "LOG_LEVEL"},
		{reflect.TypeOf(ServerConfig{}), "Port", "PORT"},
		{reflect.TypeOf(ServerConfig{}), "RequestTimeout", "REQUEST_TIMEOUT"},
		{reflect.TypeOf(ServerConfig{}), "ShutdownTimeout", "SHUTDOWN_TIMEOUT"},
		{reflect.TypeOf(ServerConfig{}), "EnableCompression", "ENABLE_COMPRESSION"},
		{reflect.TypeOf(DatabaseConfig{}), "URL", "DATABASE_URL"},
		{reflect.TypeOf(DatabaseConfig{}), "MaxConns", "DB_MAX_CONNS"},
		{reflect.TypeOf(DatabaseConfig{}), "AcquireTimeout", "DB_ACQUIRE_TIMEOUT"},
		{reflect.TypeOf(SecurityConfig{}), "CorsAllowedOrigins", "CORS_ALLOWED_ORIGINS"},
		{reflect.TypeOf(AgronomyConfig{}), "TablePath", "AGRONOMY_TABLE_PATH"},
		{reflect.TypeOf(AgronomyConfig{}), "CurrencySymbol", "CURRENCY_SYMBOL"},
	}

	for _, tt := range tests {
		f, ok := tt.typ.FieldByName(tt.field)
		if !ok {
			t.Errorf("%s has no field %s", tt.typ.Name(), tt.field)
			continue
		}
		if got := f.Tag.Get("envconfig"); got != tt.env {
			t.Errorf("%s.%s envconfig tag = %q, want %q", tt.typ.Name(), tt.field, got, tt.env)
		}
	}
}

// TestDurationFieldTypes verifies duration settings are typed as
// time.Duration so envconfig parses "15s" style values.
func TestDurationFieldTypes(t *testing.T) {
	durationType := reflect.TypeOf(time.Duration(0))
	for _, name := range []string{"RequestTimeout", "ShutdownTimeout"} {
		f, _ := reflect.TypeOf(ServerConfig{}).FieldByName(name)
		if f.Type != durationType {
			t.Errorf("ServerConfig.%s type = %v, want time.Duration", name, f.Type)
		}
	}
	for _, name := range []string{"MaxConnLifetime", "AcquireTimeout", "HealthCheckPeriod"} {
		f, _ := reflect.TypeOf(DatabaseConfig{}).FieldByName(name)
		if f.Type != durationType {
			t.Errorf("DatabaseConfig.%s type = %v, want time.Duration", name, f.Type)
		}
	}
}

// TestDatabaseEnabled verifies an empty URL selects the memory store.
func TestDatabaseEnabled(t *testing.T) {
	if (DatabaseConfig{}).Enabled() {
		t.Error("empty DatabaseConfig should not be enabled")
	}
	if !(DatabaseConfig{URL: "postgres://localhost/farmdesk"}).Enabled() {
		t.Error("DatabaseConfig with URL should be enabled")
	}
}

// TestConfigErrorTypeConstants verifies the string values used in logs.
func TestConfigErrorTypeConstants(t *testing.T) {
	tests := map[ConfigErrorType]string{
		ErrMissingEnv:       "MISSING_ENV",
		ErrSecretResolution: "SECRET_FILE_FAILURE",
		ErrValidation:       "VALIDATION_FAILED",
		ErrParsing:          "PARSING_FAILED",
	}
	for typ, want := range tests {
		if string(typ) != want {
			t.Errorf("ConfigErrorType = %q, want %q", typ, want)
		}
	}
}
