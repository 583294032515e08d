// Package binding adapts a generic client-side model/collection layer to
// the conventions of a Parse-compatible REST backend: endpoint shapes,
// credential headers, pointer rehydration, and response-envelope
// unwrapping.
//
// The package exposes three pieces:
//
//   - BuildRequestConfig derives the per-class request configuration
//     (endpoint URL, idAttribute, auth headers) from explicit Settings.
//   - ModelHooks is the lifecycle strategy for single models: construction
//     normalization, fetch query translation, and single-record response
//     unwrapping.
//   - CollectionHooks is the lifecycle strategy for collections:
//     multi-record envelope unwrapping and identifier normalization.
//
// Hooks are plain values the host model layer calls by composition; nothing
// here mutates shared state. Nested pointer references are rehydrated
// through an injected Factory, so construction is testable without a host
// application. MapFactory is a self-contained reference implementation.
//
//	set, _ := config.Load()
//	cfg, err := binding.BuildRequestConfig(set, "GameScore")
//
//	factory := binding.NewMapFactory(nil)
//	m, err := factory.New("GameScore", attrs)
package binding
