package preset

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/velmaran/noisefield/coherent"
	"github.com/velmaran/noisefield/field"
	"github.com/velmaran/noisefield/fractal"
)

// node is the YAML shape of one tree node. Pointer fields distinguish
// "absent" from zero so omitted parameters can default.
type node struct {
	Kind string `yaml:"kind"`

	// Sources.
	Value       float64  `yaml:"value"`
	Frequency   *float64 `yaml:"frequency"`
	Lacunarity  *float64 `yaml:"lacunarity"`
	Persistence *float64 `yaml:"persistence"`
	Octaves     *int     `yaml:"octaves"`
	Seed        *int64   `yaml:"seed"`
	Quality     string   `yaml:"quality"`
	Offset      *float64 `yaml:"offset"`
	Gain        *float64 `yaml:"gain"`
	Exponent    *float64 `yaml:"exponent"`

	// Children, by role.
	Source  *node `yaml:"source"`
	Base    *node `yaml:"base"`
	Power   *node `yaml:"power"`
	First   *node `yaml:"first"`
	Second  *node `yaml:"second"`
	Control *node `yaml:"control"`
	Lower   *node `yaml:"lower"`
	Upper   *node `yaml:"upper"`
	X       *node `yaml:"x"`
	Y       *node `yaml:"y"`
	Z       *node `yaml:"z"`
}

// Decode parses a YAML document and builds the field tree it describes.
func Decode(data []byte) (field.Field, error) {
	var root node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}

	return build(&root)
}

// build recursively constructs the node and its children.
func build(n *node) (field.Field, error) {
	switch n.Kind {
	case "constant":
		return field.Constant{Value: n.Value}, nil
	case "billow":
		return buildBillow(n)
	case "perlin":
		return buildPerlin(n)
	case "ridged":
		return buildRidged(n)
	case "simplex":
		return buildSimplex(n), nil
	case "abs":
		src, err := child(n, "source", n.Source)
		if err != nil {
			return nil, err
		}

		return field.Abs{Source: src}, nil
	case "exp":
		return buildExp(n)
	case "add", "subtract", "multiply", "min", "max":
		return buildPairwise(n)
	case "blend":
		return buildBlend(n)
	case "clamp":
		return buildClamp(n)
	case "displace":
		return buildDisplace(n)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, n.Kind)
	}
}

// child builds a required child node, reporting ErrArity when absent.
func child(parent *node, role string, c *node) (field.Field, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: %s node needs %q", ErrArity, parent.Kind, role)
	}

	return build(c)
}

func buildExp(n *node) (field.Field, error) {
	base, err := child(n, "base", n.Base)
	if err != nil {
		return nil, err
	}
	power, err := child(n, "power", n.Power)
	if err != nil {
		return nil, err
	}

	return field.Exp{Base: base, Exponent: power}, nil
}

func buildPairwise(n *node) (field.Field, error) {
	first, err := child(n, "first", n.First)
	if err != nil {
		return nil, err
	}
	second, err := child(n, "second", n.Second)
	if err != nil {
		return nil, err
	}
	switch n.Kind {
	case "add":
		return field.Add{First: first, Second: second}, nil
	case "subtract":
		return field.Subtract{First: first, Second: second}, nil
	case "multiply":
		return field.Multiply{First: first, Second: second}, nil
	case "min":
		return field.Min{First: first, Second: second}, nil
	default:
		return field.Max{First: first, Second: second}, nil
	}
}

func buildBlend(n *node) (field.Field, error) {
	control, err := child(n, "control", n.Control)
	if err != nil {
		return nil, err
	}
	first, err := child(n, "first", n.First)
	if err != nil {
		return nil, err
	}
	second, err := child(n, "second", n.Second)
	if err != nil {
		return nil, err
	}

	return field.Blend{Control: control, First: first, Second: second}, nil
}

func buildClamp(n *node) (field.Field, error) {
	src, err := child(n, "source", n.Source)
	if err != nil {
		return nil, err
	}
	lower, err := child(n, "lower", n.Lower)
	if err != nil {
		return nil, err
	}
	upper, err := child(n, "upper", n.Upper)
	if err != nil {
		return nil, err
	}

	return field.Clamped{Source: src, Lower: lower, Upper: upper}, nil
}

func buildDisplace(n *node) (field.Field, error) {
	src, err := child(n, "source", n.Source)
	if err != nil {
		return nil, err
	}
	dx, err := child(n, "x", n.X)
	if err != nil {
		return nil, err
	}
	dy, err := child(n, "y", n.Y)
	if err != nil {
		return nil, err
	}
	dz, err := child(n, "z", n.Z)
	if err != nil {
		return nil, err
	}

	return field.Displace{Source: src, X: dx, Y: dy, Z: dz}, nil
}

func buildBillow(n *node) (field.Field, error) {
	opts := fractal.DefaultBillowOptions()
	applyFloat(&opts.Frequency, n.Frequency)
	applyFloat(&opts.Lacunarity, n.Lacunarity)
	applyFloat(&opts.Persistence, n.Persistence)
	applyInt(&opts.OctaveCount, n.Octaves)
	applyInt64(&opts.Seed, n.Seed)
	if err := applyQuality(&opts.Quality, n.Quality); err != nil {
		return nil, err
	}

	return fractal.NewBillow(opts)
}

func buildPerlin(n *node) (field.Field, error) {
	opts := fractal.DefaultPerlinOptions()
	applyFloat(&opts.Frequency, n.Frequency)
	applyFloat(&opts.Lacunarity, n.Lacunarity)
	applyFloat(&opts.Persistence, n.Persistence)
	applyInt(&opts.OctaveCount, n.Octaves)
	applyInt64(&opts.Seed, n.Seed)
	if err := applyQuality(&opts.Quality, n.Quality); err != nil {
		return nil, err
	}

	return fractal.NewPerlin(opts)
}

func buildRidged(n *node) (field.Field, error) {
	opts := fractal.DefaultRidgedOptions()
	applyFloat(&opts.Frequency, n.Frequency)
	applyFloat(&opts.Lacunarity, n.Lacunarity)
	applyFloat(&opts.Offset, n.Offset)
	applyFloat(&opts.Gain, n.Gain)
	applyFloat(&opts.Exponent, n.Exponent)
	applyInt(&opts.OctaveCount, n.Octaves)
	applyInt64(&opts.Seed, n.Seed)
	if err := applyQuality(&opts.Quality, n.Quality); err != nil {
		return nil, err
	}

	return fractal.NewRidgedMulti(opts)
}

func buildSimplex(n *node) field.Field {
	opts := fractal.DefaultSimplexOptions()
	applyFloat(&opts.Frequency, n.Frequency)
	applyInt64(&opts.Seed, n.Seed)

	return fractal.NewSimplex(opts)
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func applyInt64(dst *int64, src *int64) {
	if src != nil {
		*dst = *src
	}
}

// applyQuality parses a quality name; empty keeps the default.
func applyQuality(dst *coherent.Quality, name string) error {
	switch name {
	case "":
		return nil
	case "fast":
		*dst = coherent.Fast
	case "standard":
		*dst = coherent.Standard
	case "best":
		*dst = coherent.Best
	default:
		return fmt.Errorf("%w: %q", ErrUnknownQuality, name)
	}

	return nil
}
