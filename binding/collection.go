package binding

import "github.com/kbukum/parsekit/logger"

// CollectionHooks is the backend-specific lifecycle strategy for
// collections of models.
type CollectionHooks struct {
	log *logger.Logger
}

// NewCollectionHooks creates collection hooks. A nil logger falls back to
// the package global.
func NewCollectionHooks(log *logger.Logger) *CollectionHooks {
	return &CollectionHooks{log: logger.OrGlobal(log).WithComponent("binding")}
}

// OnParse unwraps a multi-record fetch response. Every record in the
// "results" envelope gets its identifier normalized; the slice is what the
// host collection machinery instantiates models from. A response without a
// "results" envelope parses to nothing — unlike the model-level hook,
// which passes a bare response through.
func (h *CollectionHooks) OnParse(raw any) []Attributes {
	env, ok := asMap(raw)
	if !ok {
		return nil
	}
	results, ok := env[resultsKey].([]any)
	if !ok {
		return nil
	}

	out := make([]Attributes, 0, len(results))
	for _, rec := range results {
		m, ok := asMap(rec)
		if !ok {
			// Records are objects on the wire; anything else is dropped.
			h.log.Debug("skipping non-object record in results")
			continue
		}
		out = append(out, NormalizeID(Attributes(m)))
	}
	return out
}

// NormalizeID copies the backend's objectId into the generic "id" field
// the host framework keys identity on. Records without an objectId are
// left untouched.
func NormalizeID(rec Attributes) Attributes {
	if rec == nil {
		return rec
	}
	if id, ok := rec[IDAttribute]; ok {
		rec["id"] = id
	}
	return rec
}
