package entities

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// decodeObject splits a JSON object into its members. null decodes to no members.
func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// decodeField decodes one member into dst. It reports false, leaving dst
// untouched, when the value does not fit the type. null leaves dst at its zero value.
func decodeField[T any](raw json.RawMessage, dst *T) bool {
	if isNull(raw) {
		return true
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	*dst = v
	return true
}

// keepRaw stores a member verbatim (compacted) under key
func keepRaw(extra *map[string]json.RawMessage, key string, raw json.RawMessage) error {
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return err
	}
	if *extra == nil {
		*extra = make(map[string]json.RawMessage)
	}
	(*extra)[key] = json.RawMessage(compact.Bytes())
	return nil
}

func cloneRaw(in map[string]json.RawMessage) map[string]json.RawMessage {
	if in == nil {
		return nil
	}
	out := make(map[string]json.RawMessage, len(in))
	for k, v := range in {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}

// objectWriter emits typed members in a fixed order followed by the
// verbatim members, sorted by key. A typed member left at its zero value
// yields to a verbatim member of the same key.
type objectWriter struct {
	buf     bytes.Buffer
	extra   map[string]json.RawMessage
	written map[string]bool
	err     error
}

func newObjectWriter(extra map[string]json.RawMessage) *objectWriter {
	w := &objectWriter{extra: extra, written: make(map[string]bool)}
	w.buf.WriteByte('{')
	return w
}

// field writes a typed member
func (w *objectWriter) field(key string, v any, zero bool) {
	if zero && w.fromExtra(key) {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		w.err = err
		return
	}
	w.raw(key, data)
}

// optional writes a typed member only when it is set
func (w *objectWriter) optional(key string, v any, zero bool) {
	if zero {
		w.fromExtra(key)
		return
	}
	w.field(key, v, false)
}

func (w *objectWriter) fromExtra(key string) bool {
	raw, ok := w.extra[key]
	if ok {
		w.raw(key, raw)
	}
	return ok
}

func (w *objectWriter) raw(key string, raw json.RawMessage) {
	if w.written[key] {
		return
	}
	w.written[key] = true
	if len(w.written) > 1 {
		w.buf.WriteByte(',')
	}
	name, _ := json.Marshal(key)
	w.buf.Write(name)
	w.buf.WriteByte(':')
	w.buf.Write(raw)
}

func (w *objectWriter) bytes() ([]byte, error) {
	for _, key := range slices.Sorted(maps.Keys(w.extra)) {
		w.raw(key, w.extra[key])
	}
	if w.err != nil {
		return nil, w.err
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes(), nil
}
