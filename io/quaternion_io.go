package io

import (
	"encoding/json"
	"fmt"
	"os"

	"exercises/math"
)

const quaternionFileVersion = "1.0"

// QuaternionFile is the JSON document written by SaveQuaternions.
type QuaternionFile struct {
	Version     string            `json:"version"`
	Quaternions []math.Quaternion `json:"quaternions"`
}

// SaveQuaternions writes qs as JSON. JSON has no NaN or Inf, so a quaternion
// with such a coefficient fails to marshal and nothing is written.
func SaveQuaternions(path string, qs []math.Quaternion) error {
	data, err := json.MarshalIndent(QuaternionFile{Version: quaternionFileVersion, Quaternions: qs}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal quaternions: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write quaternions %q: %w", path, err)
	}
	return nil
}

func LoadQuaternions(path string) ([]math.Quaternion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quaternions %q: %w", path, err)
	}
	var file QuaternionFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal quaternions: %w", err)
	}
	return file.Quaternions, nil
}
