package github

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Shape is implemented by every typed response object. DecodeObject reads
// the shape's fields from o and returns o.Err().
type Shape interface {
	DecodeObject(o *Object) error
}

// shapePtr lets the decoding functions allocate a T and call the pointer
// receiver DecodeObject on it.
type shapePtr[T any] interface {
	*T
	Shape
}

// Extension is embedded by shapes to keep wire fields the SDK does not know.
type Extension struct {
	// Extra is keyed by field name after renames.
	Extra map[string]json.RawMessage `json:"extra,omitempty"`
}

// ExtraField returns the raw JSON of an unknown wire field.
func (x *Extension) ExtraField(name string) (json.RawMessage, bool) {
	v, ok := x.Extra[name]
	return v, ok
}

func (x *Extension) setExtra(m map[string]json.RawMessage) {
	x.Extra = m
}

type extensible interface {
	setExtra(map[string]json.RawMessage)
}

// Object reads the fields of one JSON object on behalf of a shape. The first
// failure sticks: once Err is non-nil every accessor returns a zero value.
type Object struct {
	shape  string
	path   string
	fields map[string]gjson.Result
	read   map[string]struct{}
	err    error
}

type fieldMode int

const (
	// present and not null
	modeRequired fieldMode = iota
	// present, may be null
	modeNullable
	// may be absent or null
	modeOptional
)

func newObject(shape, path string, v gjson.Result, renames RenameTable) (*Object, error) {
	if !v.IsObject() {
		return nil, newDecodeError(shape, path, errors.Wrapf(ErrUnexpectedType, "expected object, got %s", jsonType(v)))
	}

	wire := make(map[string]gjson.Result)
	v.ForEach(func(key, value gjson.Result) bool {
		wire[key.String()] = value
		return true
	})

	fields, err := ApplyFieldRenames(wire, renames)
	if err != nil {
		return nil, newDecodeError(shape, path, err)
	}

	return &Object{
		shape:  shape,
		path:   path,
		fields: fields,
		read:   make(map[string]struct{}, len(fields)),
	}, nil
}

// Err returns the first failure met while reading fields.
func (o *Object) Err() error {
	return o.err
}

// Has reports whether the field is present, even if null.
func (o *Object) Has(name string) bool {
	_, ok := o.fields[name]
	return ok
}

func (o *Object) fieldPath(name string) string {
	if o.path == "" {
		return name
	}
	return o.path + "." + name
}

func (o *Object) fail(name string, err error) {
	if o.err == nil {
		o.err = newDecodeError(o.shape, o.fieldPath(name), err)
	}
}

// lookup returns the field value and whether it holds a non-null value,
// enforcing mode.
func (o *Object) lookup(name string, mode fieldMode) (gjson.Result, bool) {
	if o.err != nil {
		return gjson.Result{}, false
	}
	o.read[name] = struct{}{}

	v, ok := o.fields[name]
	switch {
	case !ok && mode != modeOptional:
		o.fail(name, ErrMissingRequiredField)
		return v, false
	case ok && v.Type == gjson.Null && mode == modeRequired:
		o.fail(name, errors.Wrap(ErrMissingRequiredField, "null value"))
		return v, false
	}

	return v, ok && v.Type != gjson.Null
}

// unread collects the fields no accessor asked for.
func (o *Object) unread() map[string]json.RawMessage {
	var extra map[string]json.RawMessage
	for k, v := range o.fields {
		if _, ok := o.read[k]; ok {
			continue
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[k] = json.RawMessage(v.Raw)
	}

	return extra
}

func field[V any](o *Object, name string, mode fieldMode, conv func(gjson.Result) (V, error)) (V, bool) {
	var zero V
	raw, ok := o.lookup(name, mode)
	if !ok {
		return zero, false
	}

	v, err := conv(raw)
	if err != nil {
		o.fail(name, err)
		return zero, false
	}

	return v, true
}

func ptr[V any](v V, ok bool) *V {
	if !ok {
		return nil
	}
	return &v
}

func or[V any](v V, ok bool, def V) V {
	if !ok {
		return def
	}
	return v
}

// String reads a required string.
func (o *Object) String(name string) string {
	v, _ := field(o, name, modeRequired, asString)
	return v
}

// NullableString reads a string that must be present but may be null.
func (o *Object) NullableString(name string) *string {
	v, ok := field(o, name, modeNullable, asString)
	return ptr(v, ok)
}

// OptString reads an optional string; nil when absent or null.
func (o *Object) OptString(name string) *string {
	v, ok := field(o, name, modeOptional, asString)
	return ptr(v, ok)
}

// StringOr reads an optional string, falling back to def.
func (o *Object) StringOr(name, def string) string {
	v, ok := field(o, name, modeOptional, asString)
	return or(v, ok, def)
}

func (o *Object) Int(name string) int64 {
	v, _ := field(o, name, modeRequired, asInt)
	return v
}

func (o *Object) NullableInt(name string) *int64 {
	v, ok := field(o, name, modeNullable, asInt)
	return ptr(v, ok)
}

func (o *Object) OptInt(name string) *int64 {
	v, ok := field(o, name, modeOptional, asInt)
	return ptr(v, ok)
}

func (o *Object) IntOr(name string, def int64) int64 {
	v, ok := field(o, name, modeOptional, asInt)
	return or(v, ok, def)
}

func (o *Object) Float(name string) float64 {
	v, _ := field(o, name, modeRequired, asFloat)
	return v
}

func (o *Object) OptFloat(name string) *float64 {
	v, ok := field(o, name, modeOptional, asFloat)
	return ptr(v, ok)
}

func (o *Object) Bool(name string) bool {
	v, _ := field(o, name, modeRequired, asBool)
	return v
}

func (o *Object) NullableBool(name string) *bool {
	v, ok := field(o, name, modeNullable, asBool)
	return ptr(v, ok)
}

func (o *Object) OptBool(name string) *bool {
	v, ok := field(o, name, modeOptional, asBool)
	return ptr(v, ok)
}

func (o *Object) BoolOr(name string, def bool) bool {
	v, ok := field(o, name, modeOptional, asBool)
	return or(v, ok, def)
}

// Timestamp reads a required timestamp.
func (o *Object) Timestamp(name string) Timestamp {
	v, _ := field(o, name, modeRequired, asTimestamp)
	return v
}

func (o *Object) NullableTimestamp(name string) *Timestamp {
	v, ok := field(o, name, modeNullable, asTimestamp)
	return ptr(v, ok)
}

func (o *Object) OptTimestamp(name string) *Timestamp {
	v, ok := field(o, name, modeOptional, asTimestamp)
	return ptr(v, ok)
}

// StringList reads a required array of strings.
func (o *Object) StringList(name string) []string {
	v, _ := field(o, name, modeRequired, asStringList)
	return v
}

// OptStringList reads an optional array of strings; nil when absent.
func (o *Object) OptStringList(name string) []string {
	v, _ := field(o, name, modeOptional, asStringList)
	return v
}

// Enum reads a required enum field.
func Enum[E ~string](o *Object, name string, candidates ...E) E {
	v, _ := field(o, name, modeRequired, enumConv(candidates))
	return v
}

// NullableEnum reads an enum that must be present but may be null.
func NullableEnum[E ~string](o *Object, name string, candidates ...E) *E {
	v, ok := field(o, name, modeNullable, enumConv(candidates))
	return ptr(v, ok)
}

// OptEnum reads an optional enum; nil when absent or null.
func OptEnum[E ~string](o *Object, name string, candidates ...E) *E {
	v, ok := field(o, name, modeOptional, enumConv(candidates))
	return ptr(v, ok)
}

// EnumOr reads an optional enum, falling back to def.
func EnumOr[E ~string](o *Object, name string, def E, candidates ...E) E {
	v, ok := field(o, name, modeOptional, enumConv(candidates))
	return or(v, ok, def)
}

// Nested decodes a required nested shape.
func Nested[T any, P shapePtr[T]](o *Object, name string) *T {
	v, _ := field(o, name, modeRequired, nestedConv[T, P](o.fieldPath(name)))
	return v
}

// NullableNested decodes a nested shape whose key must be present but may be
// null. A null value yields nil without constructing T.
func NullableNested[T any, P shapePtr[T]](o *Object, name string) *T {
	v, _ := field(o, name, modeNullable, nestedConv[T, P](o.fieldPath(name)))
	return v
}

// OptNested decodes an optional nested shape. An absent or null value yields
// nil without constructing T, so T's required fields are not checked.
func OptNested[T any, P shapePtr[T]](o *Object, name string) *T {
	v, _ := field(o, name, modeOptional, nestedConv[T, P](o.fieldPath(name)))
	return v
}

// NestedList decodes a required array of nested shapes. Null entries are
// kept as nil.
func NestedList[T any, P shapePtr[T]](o *Object, name string) []*T {
	v, _ := field(o, name, modeRequired, nestedListConv[T, P](o.fieldPath(name)))
	return v
}

// OptNestedList decodes an optional array of nested shapes.
func OptNestedList[T any, P shapePtr[T]](o *Object, name string) []*T {
	v, _ := field(o, name, modeOptional, nestedListConv[T, P](o.fieldPath(name)))
	return v
}

func nestedConv[T any, P shapePtr[T]](path string) func(gjson.Result) (*T, error) {
	return func(v gjson.Result) (*T, error) {
		return decodeShape[T, P](v, path)
	}
}

func nestedListConv[T any, P shapePtr[T]](path string) func(gjson.Result) ([]*T, error) {
	return func(v gjson.Result) ([]*T, error) {
		return decodeShapeList[T, P](v, path)
	}
}

// decodeShape builds a T from a JSON object. path locates the object in the
// response for error reporting.
func decodeShape[T any, P shapePtr[T]](v gjson.Result, path string) (*T, error) {
	t := new(T)
	p := P(t)
	name := shapeName[T]()

	var renames RenameTable
	if r, ok := any(p).(Renamer); ok {
		renames = r.FieldRenames()
	}

	o, err := newObject(name, path, v, renames)
	if err != nil {
		return nil, err
	}

	if err := p.DecodeObject(o); err != nil {
		return nil, newDecodeError(name, path, err)
	}
	if o.err != nil {
		return nil, o.err
	}

	if x, ok := any(p).(extensible); ok {
		x.setExtra(o.unread())
	}

	return t, nil
}

func decodeShapeList[T any, P shapePtr[T]](v gjson.Result, path string) ([]*T, error) {
	if !v.IsArray() {
		return nil, newDecodeError(shapeName[T](), path, errors.Wrapf(ErrUnexpectedType, "expected array, got %s", jsonType(v)))
	}

	entries := v.Array()
	list := make([]*T, len(entries))
	for i, entry := range entries {
		if entry.Type == gjson.Null {
			continue
		}

		t, err := decodeShape[T, P](entry, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		list[i] = t
	}

	return list, nil
}

func shapeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().Name()
}

func jsonType(v gjson.Result) string {
	switch {
	case !v.Exists():
		return "nothing"
	case v.IsObject():
		return "object"
	case v.IsArray():
		return "array"
	}

	switch v.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "bool"
	}

	return "null"
}

func unexpected(want string, v gjson.Result) error {
	return errors.Wrapf(ErrUnexpectedType, "expected %s, got %s", want, jsonType(v))
}

func asString(v gjson.Result) (string, error) {
	if v.Type != gjson.String {
		return "", unexpected("string", v)
	}
	return v.Str, nil
}

func asInt(v gjson.Result) (int64, error) {
	if v.Type != gjson.Number {
		return 0, unexpected("integer", v)
	}

	i := v.Int()
	if float64(i) != v.Num {
		return 0, errors.Wrapf(ErrUnexpectedType, "expected integer, got %s", v.Raw)
	}

	return i, nil
}

func asFloat(v gjson.Result) (float64, error) {
	if v.Type != gjson.Number {
		return 0, unexpected("number", v)
	}
	return v.Num, nil
}

func asBool(v gjson.Result) (bool, error) {
	if v.Type != gjson.True && v.Type != gjson.False {
		return false, unexpected("bool", v)
	}
	return v.Bool(), nil
}

func asTimestamp(v gjson.Result) (Timestamp, error) {
	s, err := asString(v)
	if err != nil {
		return Timestamp{}, err
	}

	ts, err := CoerceTimestamp(s)
	if err != nil {
		return Timestamp{}, err
	}
	if ts == nil {
		return Timestamp{}, errors.Wrap(ErrMalformedTimestamp, "empty string")
	}

	return *ts, nil
}

func asStringList(v gjson.Result) ([]string, error) {
	list, err := CoerceList(v, asString)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(list))
	for i, s := range list {
		if s == nil {
			return nil, errors.Wrapf(ErrUnexpectedType, "index %d: expected string, got null", i)
		}
		out = append(out, *s)
	}

	return out, nil
}

func enumConv[E ~string](candidates []E) func(gjson.Result) (E, error) {
	return func(v gjson.Result) (E, error) {
		s, err := asString(v)
		if err != nil {
			var zero E
			return zero, err
		}
		return CoerceEnum(s, candidates...)
	}
}
