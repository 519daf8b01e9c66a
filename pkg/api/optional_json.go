package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// fieldSet is a loosely typed JSON object whose fields are inspected one at
// a time. The upstream API treats wrongly typed optional fields as absent
// instead of rejecting the request, so extraction never fails per field.
type fieldSet map[string]any

// decodeOptionalFields decodes a JSON object body when one is present.
// Empty bodies are treated as "no fields provided" and are not errors.
func decodeOptionalFields(r *http.Request) (fieldSet, error) {
	fields := fieldSet{}
	if r == nil || r.Body == nil || r.Body == http.NoBody {
		return fields, nil
	}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return fields, nil
		}
		return nil, err
	}
	return fields, nil
}

// optString is an optional string-typed field value.
type optString struct {
	value string
	ok    bool
}

// str extracts key as an optional string. Fields that are present but not
// strings come back absent.
func (f fieldSet) str(key string) optString {
	if v, ok := f[key].(string); ok {
		return optString{value: v, ok: true}
	}
	return optString{}
}

// or returns the field value, or fallback when the field is absent.
func (o optString) or(fallback string) string {
	if o.ok {
		return o.value
	}
	return fallback
}

// ptr returns the value as a nullable pointer, nil when absent.
func (o optString) ptr() *string {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}
