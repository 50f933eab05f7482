package io

import (
	"fmt"

	"github.com/qmuntal/gltf"

	"exercises/math"
)

// NodeRotation is the name and rotation of one glTF node.
type NodeRotation struct {
	Name     string
	Rotation math.Quaternion
}

var (
	identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	unitScale      = [3]float64{1, 1, 1}
)

// LoadGLTFRotations returns the rotation of every node in a .gltf or .glb
// file, in document order. Nodes transformed by a matrix report Identity.
func LoadGLTFRotations(path string) ([]NodeRotation, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	out := make([]NodeRotation, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		// glTF stores rotations as [x y z w].
		r := n.Rotation
		out = append(out, NodeRotation{
			Name:     n.Name,
			Rotation: math.NewQuaternion(r[3], r[0], r[1], r[2]),
		})
	}
	return out, nil
}

// SaveGLTFRotations writes one node per rotation into the default scene.
func SaveGLTFRotations(path string, rotations []NodeRotation) error {
	doc := &gltf.Document{
		Asset:  gltf.Asset{Version: "2.0", Generator: "exercises"},
		Scene:  gltf.Index(0),
		Scenes: []*gltf.Scene{{Name: "Root"}},
	}
	for i, nr := range rotations {
		q := nr.Rotation
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:     nr.Name,
			Matrix:   identityMatrix,
			Scale:    unitScale,
			Rotation: [4]float64{q.B, q.C, q.D, q.A},
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, i)
	}

	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("gltf save %q: %w", path, err)
	}
	return nil
}
