package config

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/parsekit/errors"
)

const defaultTimeout = 30 * time.Second

// Settings holds the connection and credential configuration for a
// Parse-compatible backend. The zero value is "not configured".
type Settings struct {
	// ServerURL is the base API URL, e.g. "https://api.example.com/1".
	ServerURL string `yaml:"server_url" mapstructure:"server_url" validate:"required,url"`

	// ApplicationID is the application credential sent in
	// X-Parse-Application-Id.
	ApplicationID string `yaml:"application_id" mapstructure:"application_id" validate:"required"`

	// RESTAPIKey is the REST credential sent in X-Parse-REST-API-Key.
	RESTAPIKey string `yaml:"rest_api_key" mapstructure:"rest_api_key" validate:"required"`

	// SessionToken, when set, is sent in X-Parse-Session-Token.
	SessionToken string `yaml:"session_token" mapstructure:"session_token"`

	// Debug enables per-request debug logging in the transport.
	Debug bool `yaml:"debug" mapstructure:"debug"`

	// Timeout is the transport request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// IsZero reports whether no settings were provided at all.
func (s Settings) IsZero() bool {
	return s == Settings{}
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (s *Settings) ApplyDefaults() {
	if s.Timeout <= 0 {
		s.Timeout = defaultTimeout
	}
}

// Validate checks the settings using struct tags.
func (s Settings) Validate() error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.InvalidInput("", "settings validation failed")
	}

	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		messages = append(messages, e.Field()+" failed "+e.Tag())
	}
	return errors.InvalidInput("settings", strings.Join(messages, "; "))
}

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use yaml tag names for field names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}
