package utils

import (
	"bytes"
	"encoding/json"
)

// DecodeStrict decodes data into target, rejecting unknown fields
func DecodeStrict(data []byte, target interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}
