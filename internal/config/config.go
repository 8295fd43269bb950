package config

import (
	"os"
	"strings"
)

// Config collects every environment-sourced setting once at startup. Handlers and
// clients receive it explicitly instead of reading the environment ad hoc.
type Config struct {
	// HTTP server
	Addr    string
	DevMode bool

	// Remote content API
	APIBaseURL       string
	APIKey           string
	APIKeyHeader     string
	AdminEmail       string
	AdminEmailHeader string

	// Contact/quote CRM endpoint. Defaults to {APIBaseURL}/contacts.
	ContactURL string

	// Chat automation webhook
	ChatWebhookURL string
	ChatWebhookKey string

	// Optional FAQ file overriding the embedded copy
	FAQPath string

	// Company identity surfaced in templates and structured data
	AppURL         string
	CompanyName    string
	CompanyEmail   string
	CompanyPhone   string
	CompanyAddress string
	WhatsAppNumber string
}

const (
	defaultAPIBase     = "http://localhost:7000/landing"
	defaultAppURL      = "https://fabricpro.com"
	defaultCompanyName = "FabricPro"
)

// Load builds a Config from the environment. Missing values fall back to
// development defaults; nothing here is required to boot.
func Load() Config {
	port := getenv("FABRIC_WEB_PORT", os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	base := strings.TrimRight(getenv("FABRIC_WEB_API_BASE_URL", defaultAPIBase), "/")

	cfg := Config{
		Addr:    ":" + port,
		DevMode: os.Getenv("FABRIC_WEB_DEV") != "" || os.Getenv("DEV") != "",

		APIBaseURL:       base,
		APIKey:           os.Getenv("FABRIC_WEB_API_KEY"),
		APIKeyHeader:     getenv("FABRIC_WEB_API_KEY_HEADER", "x-api-key"),
		AdminEmail:       os.Getenv("FABRIC_WEB_ADMIN_EMAIL"),
		AdminEmailHeader: getenv("FABRIC_WEB_ADMIN_EMAIL_HEADER", "x-admin-email"),

		ContactURL: getenv("FABRIC_WEB_CONTACT_URL", base+"/contacts"),

		ChatWebhookURL: os.Getenv("FABRIC_WEB_CHAT_WEBHOOK_URL"),
		ChatWebhookKey: os.Getenv("FABRIC_WEB_CHAT_WEBHOOK_KEY"),

		FAQPath: os.Getenv("FABRIC_WEB_FAQ_FILE"),

		AppURL:         strings.TrimRight(getenv("FABRIC_WEB_APP_URL", defaultAppURL), "/"),
		CompanyName:    getenv("FABRIC_WEB_COMPANY_NAME", defaultCompanyName),
		CompanyEmail:   os.Getenv("FABRIC_WEB_COMPANY_EMAIL"),
		CompanyPhone:   os.Getenv("FABRIC_WEB_COMPANY_PHONE"),
		CompanyAddress: os.Getenv("FABRIC_WEB_COMPANY_ADDRESS"),
		WhatsAppNumber: os.Getenv("FABRIC_WEB_WHATSAPP_NUMBER"),
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
