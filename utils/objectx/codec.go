// File: codec.go
// Title: Serialization Codecs for Generic Objects
// Description: Implements JSON, YAML, and TOML encoding and decoding with
//              structured errors.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation

package objectx

import (
	"bytes"
	"encoding/json"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/icapri/utilities-sub001/core/errors"
)

// ===============================
// JSON
// ===============================

// ToJSON encodes value as compact JSON
func ToJSON(value interface{}) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, errors.OperationFailed(errors.ModuleObjectx, "ToJSON", err)
	}
	return data, nil
}

// ToPrettyJSON encodes value as indented JSON
func ToPrettyJSON(value interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, errors.OperationFailed(errors.ModuleObjectx, "ToPrettyJSON", err)
	}
	return data, nil
}

// FromJSON decodes JSON data into target, which must be a non-nil
// pointer
func FromJSON(data []byte, target interface{}) error {
	if IsNil(target) {
		return errors.InvalidInput(errors.ModuleObjectx, "FromJSON", target, "non-nil pointer target")
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errors.OperationFailed(errors.ModuleObjectx, "FromJSON", err)
	}
	return nil
}

// ===============================
// YAML
// ===============================

// ToYAML encodes value as YAML
func ToYAML(value interface{}) ([]byte, error) {
	data, err := yaml.Marshal(value)
	if err != nil {
		return nil, errors.OperationFailed(errors.ModuleObjectx, "ToYAML", err)
	}
	return data, nil
}

// FromYAML decodes YAML data into target, which must be a non-nil
// pointer
func FromYAML(data []byte, target interface{}) error {
	if IsNil(target) {
		return errors.InvalidInput(errors.ModuleObjectx, "FromYAML", target, "non-nil pointer target")
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return errors.OperationFailed(errors.ModuleObjectx, "FromYAML", err)
	}
	return nil
}

// ===============================
// TOML
// ===============================

// ToTOML encodes value as TOML. The value must map to a TOML table,
// so top-level scalars and arrays are rejected by the encoder.
func ToTOML(value interface{}) ([]byte, error) {
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(value); err != nil {
		return nil, errors.OperationFailed(errors.ModuleObjectx, "ToTOML", err)
	}
	return buffer.Bytes(), nil
}

// FromTOML decodes TOML data into target, which must be a non-nil
// pointer
func FromTOML(data []byte, target interface{}) error {
	if IsNil(target) {
		return errors.InvalidInput(errors.ModuleObjectx, "FromTOML", target, "non-nil pointer target")
	}
	if err := toml.Unmarshal(data, target); err != nil {
		return errors.OperationFailed(errors.ModuleObjectx, "FromTOML", err)
	}
	return nil
}
