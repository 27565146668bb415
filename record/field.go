package record

// Field describes one declared field of a record type.
//
// A plain field stores a value of its kind in every instance. A
// computed field stores nothing: its getter derives a value from the
// backing stored field on every read, and its setter back-computes and
// overwrites the backing field. Exactly one of the pair is ever
// persisted; the other is always recomputed, so a computed read can
// never observe a stale value.
type Field struct {
	Name string
	Kind Kind

	// Elem is the sub-record type a KindRecord field must hold.
	Elem *Type

	// Check, when set, validates every value a setter stores. The
	// default is no validation.
	Check func(Value) error

	// Backing names the stored field a computed field derives from.
	// It is empty for plain fields.
	Backing string
	Derive  func(Value) (Value, error)
	Revert  func(Value) (Value, error)
}

// Computed reports whether the field derives its value instead of
// storing one.
func (f *Field) Computed() bool { return f.Backing != "" }

// Computed declares a derived field for Builder.Computed: Derive turns
// the backing stored value into the field's value, Revert turns an
// assigned value back into the backing one.
type Computed struct {
	Name    string
	Kind    Kind
	Backing string
	Derive  func(Value) (Value, error)
	Revert  func(Value) (Value, error)
}
