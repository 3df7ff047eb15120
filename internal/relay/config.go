// Package relay is a client for the transactional email relay (EmailJS REST API)
// that turns form submissions into delivered email.
package relay

import (
	"os"
	"strconv"
	"time"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvServiceID  = "EMAILJS_SERVICE_ID"
	EnvTemplateID = "EMAILJS_TEMPLATE_ID"
	EnvPublicKey  = "EMAILJS_PUBLIC_KEY"
	EnvPrivateKey = "EMAILJS_PRIVATE_KEY"
	EnvEndpoint   = "EMAILJS_ENDPOINT"
	EnvRateLimit  = "EMAILJS_RATE_PER_SECOND"
)

// DefaultEndpoint is the EmailJS send endpoint.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// DefaultTimeout bounds a single relay call.
const DefaultTimeout = 15 * time.Second

// Config holds the relay identifiers. ServiceID, TemplateID and PublicKey are required.
type Config struct {
	ServiceID  string        `yaml:"service_id"`
	TemplateID string        `yaml:"template_id"`
	PublicKey  string        `yaml:"public_key"`
	PrivateKey string        `yaml:"private_key"` // optional access token
	Endpoint   string        `yaml:"endpoint"`
	RatePerSec float64       `yaml:"rate_per_second"`
	Burst      int           `yaml:"burst"`
	Timeout    time.Duration `yaml:"timeout"`
}

// ConfigFromEnv reads the relay configuration from environment variables.
func ConfigFromEnv() Config {
	cfg := Config{
		ServiceID:  os.Getenv(EnvServiceID),
		TemplateID: os.Getenv(EnvTemplateID),
		PublicKey:  os.Getenv(EnvPublicKey),
		PrivateKey: os.Getenv(EnvPrivateKey),
		Endpoint:   os.Getenv(EnvEndpoint),
	}
	if v := os.Getenv(EnvRateLimit); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RatePerSec = f
		}
	}
	return cfg
}

// Missing lists the environment variable names of required identifiers that are empty.
func (c Config) Missing() []string {
	var missing []string
	if c.ServiceID == "" {
		missing = append(missing, EnvServiceID)
	}
	if c.PublicKey == "" {
		missing = append(missing, EnvPublicKey)
	}
	if c.TemplateID == "" {
		missing = append(missing, EnvTemplateID)
	}
	return missing
}

// Present summarises which identifiers are configured without exposing them.
func (c Config) Present() map[string]string {
	state := func(v string) string {
		if v == "" {
			return "Missing"
		}
		return "Present"
	}
	return map[string]string{
		"serviceId":  state(c.ServiceID),
		"templateId": state(c.TemplateID),
		"publicKey":  state(c.PublicKey),
	}
}

func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RatePerSec <= 0 {
		c.RatePerSec = 1
	}
	if c.Burst <= 0 {
		c.Burst = 5
	}
	return c
}
