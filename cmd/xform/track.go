package main

import (
	"fmt"

	"github.com/Faultbox/gmath/pkg/gmath"
)

// trackKey is a resolved keyframe.
type trackKey struct {
	time float64
	pos  gmath.Vec3
	rot  gmath.Quat
}

// resolveTrack validates a track document and converts every key to
// numeric form. Keys must be sorted by time.
func resolveTrack(doc TrackDoc, order gmath.EulerOrder) ([]trackKey, error) {
	if len(doc.Keys) < 2 {
		return nil, fmt.Errorf("track needs at least 2 keys, got %d", len(doc.Keys))
	}

	keys := make([]trackKey, len(doc.Keys))
	for i, k := range doc.Keys {
		if i > 0 && k.Time <= keys[i-1].time {
			return nil, fmt.Errorf("key %d: time %v is not increasing", i, k.Time)
		}
		pos := gmath.Vec3{}
		if len(k.Position) > 0 {
			var err error
			if pos, err = toVec3(k.Position, fmt.Sprintf("key %d position", i)); err != nil {
				return nil, err
			}
		}
		rot, err := k.Rotation.Resolve(order)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		keys[i] = trackKey{time: k.Time, pos: pos, rot: rot.Normalize()}
	}
	return keys, nil
}

// sampleTrack evaluates the track at time tm. Rotation uses the given
// method ("slerp", "nlerp", or "sqlerp"); position always uses lerp.
// Times outside the key range clamp to the boundary keys.
func sampleTrack(keys []trackKey, tm float64, method string) (gmath.Vec3, gmath.Quat, error) {
	if tm <= keys[0].time {
		return keys[0].pos, keys[0].rot, nil
	}
	last := len(keys) - 1
	if tm >= keys[last].time {
		return keys[last].pos, keys[last].rot, nil
	}

	i := 0
	for keys[i+1].time < tm {
		i++
	}
	k0, k1 := keys[i], keys[i+1]
	t := (tm - k0.time) / (k1.time - k0.time)

	pos := k0.pos.Lerp(k1.pos, t)

	var rot gmath.Quat
	switch method {
	case "slerp":
		rot = k0.rot.Slerp(k1.rot, t)
	case "nlerp":
		rot = k0.rot.Nlerp(k1.rot, t)
	case "sqlerp":
		// Neighboring keys act as the outer control points, clamped at
		// the track boundary.
		b := keys[max(i-1, 0)].rot
		c := keys[min(i+2, last)].rot
		rot = gmath.Sqlerp(k0.rot, b, c, k1.rot, t)
	default:
		return gmath.Vec3{}, gmath.Quat{}, fmt.Errorf("unknown interpolation method %q", method)
	}
	return pos, rot.Normalize(), nil
}
