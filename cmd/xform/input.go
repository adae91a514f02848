package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/gmath/pkg/gmath"
)

// MatrixDoc is a YAML document holding a 4x4 matrix as 16 numbers in
// column-major order.
type MatrixDoc struct {
	Matrix []float64 `yaml:"matrix"`
}

// Rotation is a YAML rotation given either as a quaternion (x, y, z, w)
// or as an Euler triple in degrees with an optional axis order.
type Rotation struct {
	Quat  []float64 `yaml:"quat"`
	Euler []float64 `yaml:"euler"`
	Order string    `yaml:"order"`
}

// Resolve converts the rotation to a quaternion. An Euler rotation
// without an explicit order uses fallback.
func (r Rotation) Resolve(fallback gmath.EulerOrder) (gmath.Quat, error) {
	switch {
	case len(r.Quat) > 0 && len(r.Euler) > 0:
		return gmath.Quat{}, fmt.Errorf("rotation: quat and euler are mutually exclusive")
	case len(r.Quat) > 0:
		if len(r.Quat) != 4 {
			return gmath.Quat{}, fmt.Errorf("rotation: quat needs 4 components, got %d", len(r.Quat))
		}
		return gmath.Quat{X: r.Quat[0], Y: r.Quat[1], Z: r.Quat[2], W: r.Quat[3]}, nil
	case len(r.Euler) > 0:
		e, err := toVec3(r.Euler, "rotation.euler")
		if err != nil {
			return gmath.Quat{}, err
		}
		order := fallback
		if r.Order != "" {
			var ok bool
			if order, ok = gmath.ParseEulerOrder(r.Order); !ok {
				return gmath.Quat{}, fmt.Errorf("rotation: unknown euler order %q", r.Order)
			}
		}
		return gmath.QuatFromEuler(e, order), nil
	default:
		return gmath.QuatIdentity(), nil
	}
}

// Scale is a YAML scale accepting either a single number (uniform) or a
// per-axis triple.
type Scale struct {
	value gmath.Vec3
	set   bool
}

// UnmarshalYAML resolves the scalar/tuple union at the document boundary
// so the numeric core stays monomorphic.
func (s *Scale) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var u float64
		if err := node.Decode(&u); err != nil {
			return err
		}
		s.value = gmath.Vec3{X: u, Y: u, Z: u}
		s.set = true
		return nil
	}

	var parts []float64
	if err := node.Decode(&parts); err != nil {
		return err
	}
	v, err := toVec3(parts, "scale")
	if err != nil {
		return err
	}
	s.value = v
	s.set = true
	return nil
}

// Vec3 returns the scale, defaulting to (1,1,1) when absent.
func (s Scale) Vec3() gmath.Vec3 {
	if !s.set {
		return gmath.Vec3{X: 1, Y: 1, Z: 1}
	}
	return s.value
}

// TransformDoc is a YAML document holding decomposed transform
// components.
type TransformDoc struct {
	Translation []float64 `yaml:"translation"`
	Rotation    Rotation  `yaml:"rotation"`
	Scale       Scale     `yaml:"scale"`
	Origin      []float64 `yaml:"origin"`
}

// CurveDoc is a YAML document holding a cubic curve. Kind selects the
// basis: "bezier" (default, four control points) or "hermite" (points are
// endpoint a, tangent at a, tangent at b, endpoint b).
type CurveDoc struct {
	Kind   string      `yaml:"kind"`
	Points [][]float64 `yaml:"points"`
}

// Key is one keyframe of a sampled track.
type Key struct {
	Time     float64   `yaml:"time"`
	Position []float64 `yaml:"position"`
	Rotation Rotation  `yaml:"rotation"`
}

// TrackDoc is a YAML document holding a keyframe track.
type TrackDoc struct {
	Keys []Key `yaml:"keys"`
}

func toVec3(parts []float64, name string) (gmath.Vec3, error) {
	if len(parts) != 3 {
		return gmath.Vec3{}, fmt.Errorf("%s: need 3 components, got %d", name, len(parts))
	}
	return gmath.Vec3{X: parts[0], Y: parts[1], Z: parts[2]}, nil
}

func loadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func loadMatrix(path string) (gmath.Mat4, error) {
	var doc MatrixDoc
	if err := loadYAML(path, &doc); err != nil {
		return gmath.Mat4{}, err
	}
	if len(doc.Matrix) != 16 {
		return gmath.Mat4{}, fmt.Errorf("%s: matrix needs 16 components, got %d", path, len(doc.Matrix))
	}
	var m gmath.Mat4
	copy(m[:], doc.Matrix)
	return m, nil
}
