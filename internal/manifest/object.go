package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Object is a JSON object that remembers key order.
type Object struct {
	keys   []string
	values map[string]json.RawMessage
}

// Keys returns the object's keys in document order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Raw returns the undecoded value stored under key.
func (o *Object) Raw(key string) (json.RawMessage, bool) {
	v, ok := o.values[key]
	return v, ok
}

// String returns the value under key when it is a JSON string.
func (o *Object) String(key string) string {
	raw, ok := o.values[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Set encodes v and stores it under key. New keys are appended.
func (o *Object) Set(key string, v any) error {
	raw, err := encode(v)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	if o.values == nil {
		o.values = make(map[string]json.RawMessage)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = raw
	return nil
}

// Object decodes the nested object under key. A missing key yields an
// empty object; a non-object value is an error.
func (o *Object) Object(key string) (*Object, error) {
	nested := &Object{}
	raw, ok := o.values[key]
	if !ok || string(raw) == "null" {
		return nested, nil
	}
	if err := json.Unmarshal(raw, nested); err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	return nested, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	o.keys = nil
	o.values = make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decoding %q: %w", key, err)
		}
		if _, dup := o.values[key]; !dup {
			o.keys = append(o.keys, key)
		}
		o.values[key] = raw
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := encode(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(o.values[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encode marshals v without HTML escaping, so "&&" in npm scripts stays readable.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
