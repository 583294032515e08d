package binding

// Model is the capability the hooks need from a host model instance.
type Model interface {
	// ID returns the instance identifier, or "" when unset.
	ID() string
	// SetID assigns the instance identifier.
	SetID(id string)
	// Set stores a single attribute through the model's normal
	// attribute-setting path.
	Set(key string, value any)
}

// Factory constructs model instances for a class. It is how nested pointer
// references are rehydrated into live models during construction.
type Factory interface {
	New(class string, attrs Attributes) (Model, error)
}
