package binding

import (
	"strings"
	"time"

	"github.com/kbukum/parsekit/config"
	"github.com/kbukum/parsekit/errors"
	"github.com/kbukum/parsekit/logger"
)

// Credential headers expected by Parse-compatible backends.
const (
	HeaderApplicationID = "X-Parse-Application-Id"
	HeaderRESTAPIKey    = "X-Parse-REST-API-Key"
	HeaderSessionToken  = "X-Parse-Session-Token"
)

// IDAttribute is the canonical record-identifier field of the backend.
const IDAttribute = "objectId"

// AdapterTypeRESTAPI keys the transport adapter that consumes RequestConfig.
const AdapterTypeRESTAPI = "restapi"

// UserClass is the built-in class nested user references rehydrate into.
const UserClass = "users"

// classPrefix namespaces endpoints of non-built-in classes.
const classPrefix = "classes/"

// BuiltinClasses are the reserved class names served from root-level
// endpoints rather than the classes/ namespace.
var BuiltinClasses = []string{
	"users",
	"roles",
	"files",
	"installations",
	"events",
	"push",
	"functions",
}

// IsBuiltinClass reports whether name is a reserved root-level class.
func IsBuiltinClass(name string) bool {
	for _, c := range BuiltinClasses {
		if name == c {
			return true
		}
	}
	return false
}

// AdapterConfig identifies the transport adapter and the identifier
// attribute it should key records on.
type AdapterConfig struct {
	Type        string `json:"type"`
	IDAttribute string `json:"idAttribute"`
}

// RequestConfig is the per-class request configuration consumed by the
// transport adapter. It is recomputed on each BuildRequestConfig call and
// never mutated afterwards.
type RequestConfig struct {
	// URL is the fully derived endpoint for the class.
	URL string
	// Debug enables per-request debug logging in the transport.
	Debug bool
	// Adapter selects the transport and its identifier attribute.
	Adapter AdapterConfig
	// Headers carry the credential headers for every request.
	Headers map[string]string
	// Timeout is the transport request timeout.
	Timeout time.Duration
}

// BuildRequestConfig derives the request configuration for a class from
// explicit settings. Built-in classes map to root-level endpoints, every
// other class to the classes/ namespace. Missing settings are a fatal
// misconfiguration: logged and returned as a CONFIG_MISSING error.
func BuildRequestConfig(set config.Settings, class string) (RequestConfig, error) {
	if set.IsZero() {
		err := errors.MissingSettings("parse")
		logger.Error("parse settings are not configured", logger.Fields(logger.FieldClass, class))
		return RequestConfig{}, err
	}
	set.ApplyDefaults()

	// Exactly one trailing separator on the base URL, never a duplicate.
	endpoint := strings.TrimRight(set.ServerURL, "/") + "/"
	if IsBuiltinClass(class) {
		endpoint += class
	} else {
		endpoint += classPrefix + class
	}

	headers := map[string]string{
		HeaderApplicationID: set.ApplicationID,
		HeaderRESTAPIKey:    set.RESTAPIKey,
	}
	if set.SessionToken != "" {
		headers[HeaderSessionToken] = set.SessionToken
	}

	return RequestConfig{
		URL:   endpoint,
		Debug: set.Debug,
		Adapter: AdapterConfig{
			Type:        AdapterTypeRESTAPI,
			IDAttribute: IDAttribute,
		},
		Headers: headers,
		Timeout: set.Timeout,
	}, nil
}
