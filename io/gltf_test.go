package io

import (
	stdmath "math"
	"path/filepath"
	"testing"

	"exercises/math"
)

func TestSaveLoadGLTFRotations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotations.gltf")
	s := stdmath.Sqrt2 / 2
	rotations := []NodeRotation{
		{Name: "identity", Rotation: math.Identity},
		{Name: "quarter-y", Rotation: math.NewQuaternion(s, 0, s, 0)},
		{Name: "diagonal", Rotation: math.NewQuaternion(0.5, 0.5, 0.5, 0.5)},
	}

	if err := SaveGLTFRotations(path, rotations); err != nil {
		t.Fatalf("SaveGLTFRotations: %v", err)
	}

	loaded, err := LoadGLTFRotations(path)
	if err != nil {
		t.Fatalf("LoadGLTFRotations: %v", err)
	}
	if len(loaded) != len(rotations) {
		t.Fatalf("LoadGLTFRotations: expected %d nodes, got %d", len(rotations), len(loaded))
	}
	for i, want := range rotations {
		got := loaded[i]
		if got.Name != want.Name || got.Rotation != want.Rotation {
			t.Errorf("node %d: expected %s %v, got %s %v", i, want.Name, want.Rotation, got.Name, got.Rotation)
		}
	}
}

func TestLoadGLTFRotationsMissingFile(t *testing.T) {
	if _, err := LoadGLTFRotations(filepath.Join(t.TempDir(), "missing.gltf")); err == nil {
		t.Error("LoadGLTFRotations: expected error for missing file")
	}
}
