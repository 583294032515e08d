package binding

import "github.com/kbukum/parsekit/logger"

// MapModel is a map-backed Model implementation. It is what MapFactory
// instantiates and is sufficient for hosts that work with untyped records.
type MapModel struct {
	class string
	id    string
	attrs Attributes
}

// NewMapModel creates an empty model of the given class.
func NewMapModel(class string) *MapModel {
	return &MapModel{class: class, attrs: Attributes{}}
}

// Class returns the class the model belongs to.
func (m *MapModel) Class() string { return m.class }

// ID returns the instance identifier, or "" when unset.
func (m *MapModel) ID() string { return m.id }

// SetID assigns the instance identifier.
func (m *MapModel) SetID(id string) { m.id = id }

// Set stores a single attribute.
func (m *MapModel) Set(key string, value any) { m.attrs[key] = value }

// Get returns a single attribute.
func (m *MapModel) Get(key string) (any, bool) {
	v, ok := m.attrs[key]
	return v, ok
}

// Attributes returns the live attribute map of the model.
func (m *MapModel) Attributes() Attributes { return m.attrs }

// MapFactory builds MapModel instances, running every construction through
// the model hooks so nested references rehydrate recursively.
type MapFactory struct {
	hooks *ModelHooks
}

// NewMapFactory creates a factory wired to its own model hooks. A nil
// logger falls back to the package global.
func NewMapFactory(log *logger.Logger) *MapFactory {
	f := &MapFactory{}
	f.hooks = NewModelHooks(f, log)
	return f
}

// Hooks returns the model hooks the factory constructs through.
func (f *MapFactory) Hooks() *ModelHooks { return f.hooks }

// New constructs a model of the given class from raw attributes.
func (f *MapFactory) New(class string, attrs Attributes) (Model, error) {
	m := NewMapModel(class)
	if err := f.hooks.OnConstruct(m, attrs); err != nil {
		return nil, err
	}
	return m, nil
}
