package lukaz

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
)

// decodeLenient decodes a JSON object into the struct pointed to by v and
// returns a copy of data. A field whose value does not fit its Go type is
// left zero instead of failing the whole body; only a body that is not an
// object (or null) is an error.
func decodeLenient(data []byte, v interface{}) (json.RawMessage, error) {
	raw := append(json.RawMessage(nil), bytes.TrimSpace(data)...)

	if err := json.Unmarshal(raw, v); err == nil {
		return raw, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	rv := reflect.ValueOf(v).Elem()
	rv.Set(reflect.Zero(rv.Type()))
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		name := jsonName(f)
		if name == "" {
			continue
		}
		value, ok := lookupField(fields, name)
		if !ok {
			continue
		}

		target := reflect.New(f.Type)
		if err := json.Unmarshal(value, target.Interface()); err != nil {
			continue
		}
		rv.Field(i).Set(target.Elem())
	}

	return raw, nil
}

// encodeRaw writes raw when it is set, otherwise the JSON encoding of v.
func encodeRaw(raw json.RawMessage, v interface{}) ([]byte, error) {
	if len(raw) > 0 {
		return raw, nil
	}
	return json.Marshal(v)
}

func jsonName(f reflect.StructField) string {
	if f.PkgPath != "" {
		return ""
	}
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return f.Name
}

// lookupField matches keys the way encoding/json does: exact first, then
// case-insensitively.
func lookupField(fields map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if v, ok := fields[name]; ok {
		return v, true
	}
	for k, v := range fields {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}
