package binding

// Attributes is a decoded-JSON record, the attribute payload flowing
// between the backend and the model layer.
type Attributes map[string]any

// Clone returns a shallow copy of the attributes.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Wire tag fields marking a value as a pointer reference.
const (
	tagType      = "__type"
	tagClassName = "className"

	pointerType = "Pointer"
)

// Pointer is a typed reference to another object.
type Pointer struct {
	ClassName string
	ObjectID  string
}

// ToAttributes returns the wire shape of the pointer,
// {"__type":"Pointer","className":...,"objectId":...}.
func (p Pointer) ToAttributes() Attributes {
	return Attributes{
		tagType:      pointerType,
		tagClassName: p.ClassName,
		IDAttribute:  p.ObjectID,
	}
}

// asMap normalizes a decoded-JSON value to map form.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Attributes:
		return m, true
	case map[string]any:
		return m, true
	}
	return nil, false
}

// asReference reports whether v is a map-shaped nested reference.
func asReference(v any) (map[string]any, bool) {
	return asMap(v)
}

// stripTags returns the reference fields without the pointer type tags.
func stripTags(ref map[string]any) Attributes {
	out := make(Attributes, len(ref))
	for k, v := range ref {
		if k == tagType || k == tagClassName {
			continue
		}
		out[k] = v
	}
	return out
}
