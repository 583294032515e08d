package binding

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/kbukum/parsekit/errors"
	"github.com/kbukum/parsekit/logger"
)

// resultsKey is the response-envelope field holding the real payload.
const resultsKey = "results"

// FetchOptions shape a single fetch before it reaches the transport.
type FetchOptions struct {
	// Query is a structured where-clause. OnFetch serializes it to JSON
	// under the "where" transport parameter.
	Query map[string]any

	// Data are transport-level query parameters sent as-is.
	Data map[string]string

	// Limit caps the number of returned records. Zero means backend default.
	Limit int
	// Skip offsets into the result set.
	Skip int
	// Order is a comma-separated sort specification, e.g. "-createdAt".
	Order string
	// Keys restricts the returned fields.
	Keys []string
	// Include expands the named pointer fields in the response.
	Include []string
}

// ModelHooks is the backend-specific lifecycle strategy for single models.
// The host model layer calls the hooks by composition; nested references
// are rehydrated through the injected factory.
type ModelHooks struct {
	factory Factory
	log     *logger.Logger
}

// NewModelHooks creates model hooks with the given factory. A nil logger
// falls back to the package global.
func NewModelHooks(factory Factory, log *logger.Logger) *ModelHooks {
	return &ModelHooks{
		factory: factory,
		log:     logger.OrGlobal(log).WithComponent("binding"),
	}
}

// OnConstruct normalizes raw attributes for a new model instance and
// applies them through the model's Set path.
//
// An objectId in the attributes becomes the instance identifier; its
// absence is logged, not an error. Nested references are rehydrated into
// live user models: the "owner" slot on its own, the "from"/"to" pair only
// when both sides are present. A lone "from" or "to" stays raw. Factory
// failures propagate unchanged.
func (h *ModelHooks) OnConstruct(m Model, attrs Attributes) error {
	if attrs == nil {
		attrs = Attributes{}
	}

	if id, ok := attrs[IDAttribute].(string); ok && id != "" {
		m.SetID(id)
		h.log.Info("model constructed with id", logger.Fields(logger.FieldObjectID, id))
	} else {
		h.log.Debug("model constructed without id")
	}

	if ref, ok := asReference(attrs["owner"]); ok {
		owner, err := h.factory.New(UserClass, stripTags(ref))
		if err != nil {
			return err
		}
		attrs["owner"] = owner
	}

	from, fromOK := asReference(attrs["from"])
	to, toOK := asReference(attrs["to"])
	if fromOK && toOK {
		fromModel, err := h.factory.New(UserClass, stripTags(from))
		if err != nil {
			return err
		}
		toModel, err := h.factory.New(UserClass, stripTags(to))
		if err != nil {
			return err
		}
		attrs["from"] = fromModel
		attrs["to"] = toModel
	}

	for k, v := range attrs {
		m.Set(k, v)
	}
	return nil
}

// OnFetch translates fetch options into transport query parameters. A
// structured Query is serialized to JSON under "where"; serialization
// failures surface as INVALID_QUERY. Options without a query pass through
// untouched.
func (h *ModelHooks) OnFetch(opts FetchOptions) (FetchOptions, error) {
	if opts.Query != nil {
		encoded, err := json.Marshal(opts.Query)
		if err != nil {
			return opts, errors.InvalidQuery(err)
		}
		opts.Data = ensureData(opts.Data)
		opts.Data["where"] = string(encoded)
		opts.Query = nil
	}

	if opts.Limit > 0 {
		opts.Data = ensureData(opts.Data)
		opts.Data["limit"] = strconv.Itoa(opts.Limit)
	}
	if opts.Skip > 0 {
		opts.Data = ensureData(opts.Data)
		opts.Data["skip"] = strconv.Itoa(opts.Skip)
	}
	if opts.Order != "" {
		opts.Data = ensureData(opts.Data)
		opts.Data["order"] = opts.Order
	}
	if len(opts.Keys) > 0 {
		opts.Data = ensureData(opts.Data)
		opts.Data["keys"] = strings.Join(opts.Keys, ",")
	}
	if len(opts.Include) > 0 {
		opts.Data = ensureData(opts.Data)
		opts.Data["include"] = strings.Join(opts.Include, ",")
	}

	return opts, nil
}

// OnParse unwraps a single-record fetch response. A "results" envelope
// yields its first element; anything else is returned as-is.
func (h *ModelHooks) OnParse(raw any) any {
	env, ok := asMap(raw)
	if !ok {
		return raw
	}
	results, ok := env[resultsKey].([]any)
	if !ok {
		return raw
	}
	if len(results) == 0 {
		return nil
	}
	return results[0]
}

// OnSerialize delegates serialization unchanged. Reserved for stripping
// backend-managed fields before save.
func (h *ModelHooks) OnSerialize(attrs Attributes) Attributes {
	return attrs
}

func ensureData(data map[string]string) map[string]string {
	if data == nil {
		return make(map[string]string)
	}
	return data
}
