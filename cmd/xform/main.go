// xform is a CLI utility for inspecting 3D transforms: matrix
// decomposition, transform composition, Euler order conversion, and
// keyframe track sampling.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/gmath/internal/config"
	"github.com/Faultbox/gmath/internal/logger"
	"github.com/Faultbox/gmath/pkg/gmath"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "decompose":
		err = cmdDecompose(cfg, args[1:])
	case "compose":
		err = cmdCompose(cfg, args[1:])
	case "euler":
		err = cmdEuler(cfg, args[1:])
	case "sample":
		err = cmdSample(cfg, args[1:])
	case "curve":
		err = cmdCurve(cfg, args[1:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`xform - 3D transform inspection utility

Usage:
  xform [flags] <command> [arguments]

Commands:
  decompose <matrix.yaml>        Split a 4x4 matrix into T/R/S
  compose <transform.yaml>       Build a 4x4 matrix from T/R/S
  euler <x,y,z> [order]          Re-express an Euler triple in another order
  sample <track.yaml>            Interpolate a keyframe track
  curve <curve.yaml>             Evaluate a cubic Bezier or Hermite curve

Flags:
  -config path    Config file path
  -debug          Enable debug logging
  -digits n       Fractional digits per printed component
  -order o        Euler axis order (xyz, xzy, yxz, yzx, zxy, zyx)
  -samples n      Samples per interpolated track
  -method m       Interpolation method (slerp, nlerp, sqlerp)

Examples:
  xform decompose node.yaml
  xform -order xyz euler 30,45,60 zyx
  xform -samples 20 -method sqlerp sample walk.yaml`)
}

func eulerOrder(cfg *config.Config) (gmath.EulerOrder, error) {
	order, ok := gmath.ParseEulerOrder(cfg.Euler.Order)
	if !ok {
		return gmath.OrderZYX, fmt.Errorf("unknown euler order %q", cfg.Euler.Order)
	}
	return order, nil
}

func cmdDecompose(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: xform decompose <matrix.yaml>")
	}
	order, err := eulerOrder(cfg)
	if err != nil {
		return err
	}

	m, err := loadMatrix(args[0])
	if err != nil {
		return err
	}
	logger.Debug("matrix loaded", zap.String("path", args[0]))

	tr := gmath.Decompose(m)
	d := cfg.Output.Digits

	if cfg.Output.Format == "yaml" {
		q := tr.Rotation
		fmt.Printf("translation: [%.*f, %.*f, %.*f]\n",
			d, tr.Translation.X, d, tr.Translation.Y, d, tr.Translation.Z)
		fmt.Printf("rotation:\n  quat: [%.*f, %.*f, %.*f, %.*f]\n",
			d, q.X, d, q.Y, d, q.Z, d, q.W)
		fmt.Printf("scale: [%.*f, %.*f, %.*f]\n",
			d, tr.Scale.X, d, tr.Scale.Y, d, tr.Scale.Z)
		return nil
	}

	fmt.Printf("translation %s\n", fmtVec3(tr.Translation, d))
	fmt.Printf("rotation    %s\n", fmtQuat(tr.Rotation, d))
	fmt.Printf("euler (%s)  %s\n", order, fmtVec3(tr.Rotation.Euler(order), d))
	fmt.Printf("scale       %s\n", fmtVec3(tr.Scale, d))
	return nil
}

func cmdCompose(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: xform compose <transform.yaml>")
	}
	order, err := eulerOrder(cfg)
	if err != nil {
		return err
	}

	var doc TransformDoc
	if err := loadYAML(args[0], &doc); err != nil {
		return err
	}

	tr := gmath.Transform{Scale: doc.Scale.Vec3()}
	if len(doc.Translation) > 0 {
		if tr.Translation, err = toVec3(doc.Translation, "translation"); err != nil {
			return err
		}
	}
	if tr.Rotation, err = doc.Rotation.Resolve(order); err != nil {
		return err
	}
	tr.Rotation = tr.Rotation.Normalize()

	var m gmath.Mat4
	if len(doc.Origin) > 0 {
		origin, err := toVec3(doc.Origin, "origin")
		if err != nil {
			return err
		}
		m = gmath.ComposeAt(tr, origin)
	} else {
		m = gmath.Compose(tr)
	}

	printMat4(m, cfg.Output.Digits)
	return nil
}

func cmdEuler(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: xform euler <x,y,z> [order]")
	}
	from, err := eulerOrder(cfg)
	if err != nil {
		return err
	}

	to := from
	if len(args) > 1 {
		var ok bool
		if to, ok = gmath.ParseEulerOrder(args[1]); !ok {
			return fmt.Errorf("unknown euler order %q", args[1])
		}
	}

	e, err := parseTriple(args[0])
	if err != nil {
		return err
	}

	q := gmath.QuatFromEuler(e, from)
	d := cfg.Output.Digits
	fmt.Printf("quat        %s\n", fmtQuat(q, d))
	fmt.Printf("euler (%s)  %s\n", to, fmtVec3(q.Euler(to), d))
	return nil
}

func cmdSample(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: xform sample <track.yaml>")
	}
	order, err := eulerOrder(cfg)
	if err != nil {
		return err
	}

	var doc TrackDoc
	if err := loadYAML(args[0], &doc); err != nil {
		return err
	}
	keys, err := resolveTrack(doc, order)
	if err != nil {
		return err
	}

	n := cfg.Sample.Count
	if n < 2 {
		n = 2
	}
	logger.Debug("sampling track",
		zap.Int("keys", len(keys)),
		zap.Int("samples", n),
		zap.String("method", cfg.Sample.Method))

	t0 := keys[0].time
	t1 := keys[len(keys)-1].time
	d := cfg.Output.Digits
	for i := 0; i < n; i++ {
		tm := t0 + (t1-t0)*float64(i)/float64(n-1)
		pos, rot, err := sampleTrack(keys, tm, cfg.Sample.Method)
		if err != nil {
			return err
		}
		fmt.Printf("t=%-8s pos %s rot %s\n",
			strconv.FormatFloat(tm, 'g', -1, 64), fmtVec3(pos, d), fmtQuat(rot, d))
	}
	return nil
}

func cmdCurve(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: xform curve <curve.yaml>")
	}

	var doc CurveDoc
	if err := loadYAML(args[0], &doc); err != nil {
		return err
	}
	if len(doc.Points) != 4 {
		return fmt.Errorf("curve needs 4 points, got %d", len(doc.Points))
	}
	var pts [4]gmath.Vec3
	for i, p := range doc.Points {
		v, err := toVec3(p, fmt.Sprintf("point %d", i))
		if err != nil {
			return err
		}
		pts[i] = v
	}

	eval, err := curveEval(doc.Kind)
	if err != nil {
		return err
	}

	n := cfg.Sample.Count
	if n < 2 {
		n = 2
	}
	d := cfg.Output.Digits
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		fmt.Printf("t=%-8s %s\n",
			strconv.FormatFloat(t, 'g', -1, 64), fmtVec3(eval(pts, t), d))
	}
	return nil
}

func curveEval(kind string) (func([4]gmath.Vec3, float64) gmath.Vec3, error) {
	switch kind {
	case "bezier", "":
		return func(p [4]gmath.Vec3, t float64) gmath.Vec3 {
			return gmath.Bezier(p[0], p[1], p[2], p[3], t)
		}, nil
	case "hermite":
		return func(p [4]gmath.Vec3, t float64) gmath.Vec3 {
			return gmath.Hermite(p[0], p[1], p[2], p[3], t)
		}, nil
	}
	return nil, fmt.Errorf("unknown curve kind %q", kind)
}

func parseTriple(s string) (gmath.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return gmath.Vec3{}, fmt.Errorf("need 3 comma-separated angles, got %q", s)
	}
	var out [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return gmath.Vec3{}, fmt.Errorf("bad angle %q: %w", p, err)
		}
		out[i] = v
	}
	return gmath.Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
}

func fmtVec3(v gmath.Vec3, digits int) string {
	return fmt.Sprintf("(%.*f, %.*f, %.*f)", digits, v.X, digits, v.Y, digits, v.Z)
}

func fmtQuat(q gmath.Quat, digits int) string {
	return fmt.Sprintf("(%.*f, %.*f, %.*f, %.*f)", digits, q.X, digits, q.Y, digits, q.Z, digits, q.W)
}

func printMat4(m gmath.Mat4, digits int) {
	for row := 0; row < 4; row++ {
		fmt.Printf("[%.*f %.*f %.*f %.*f]\n",
			digits, m[row], digits, m[4+row], digits, m[8+row], digits, m[12+row])
	}
}
