package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"FABRIC_WEB_PORT", "PORT", "FABRIC_WEB_DEV", "DEV",
		"FABRIC_WEB_API_BASE_URL", "FABRIC_WEB_CONTACT_URL",
		"FABRIC_WEB_APP_URL", "FABRIC_WEB_COMPANY_NAME",
	} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if cfg.APIBaseURL != defaultAPIBase {
		t.Errorf("api base = %q", cfg.APIBaseURL)
	}
	if cfg.ContactURL != defaultAPIBase+"/contacts" {
		t.Errorf("contact url = %q", cfg.ContactURL)
	}
	if cfg.APIKeyHeader != "x-api-key" || cfg.AdminEmailHeader != "x-admin-email" {
		t.Errorf("headers = %q / %q", cfg.APIKeyHeader, cfg.AdminEmailHeader)
	}
	if cfg.DevMode {
		t.Error("dev mode should default off")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FABRIC_WEB_PORT", "9001")
	t.Setenv("FABRIC_WEB_API_BASE_URL", "https://api.example.com/landing/")
	t.Setenv("FABRIC_WEB_CONTACT_URL", "https://crm.example.com/inquiries")
	t.Setenv("FABRIC_WEB_DEV", "1")

	cfg := Load()
	if cfg.Addr != ":9001" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if cfg.APIBaseURL != "https://api.example.com/landing" {
		t.Errorf("api base = %q, want trailing slash trimmed", cfg.APIBaseURL)
	}
	if cfg.ContactURL != "https://crm.example.com/inquiries" {
		t.Errorf("contact url = %q", cfg.ContactURL)
	}
	if !cfg.DevMode {
		t.Error("dev mode should be on")
	}
}
