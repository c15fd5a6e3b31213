package integrate

import (
	"fmt"

	"github.com/grahamgower/moments/demography"
	"gonum.org/v1/gonum/mat"
)

// Config carries every parameter a call to Integrate needs. N is evaluated
// at the midpoint of each adaptive step; Gamma, H, ThetaFd, and ThetaBd are
// per-population (length must match the spectrum's population count, or be
// left nil where the corresponding feature is unused). Theta is a scalar
// (float64, applied to every axis) or a per-population []float64.
type Config struct {
	N      demography.SizeSchedule
	TFinal float64
	DtFac  float64

	Gamma []float64
	H     []float64
	Theta interface{}

	M *mat.Dense

	Frozen []bool

	FiniteGenome bool
	ThetaFd      []float64
	ThetaBd      []float64

	Verbose bool
}

// resolveTheta normalizes cfg.Theta (a float64 or []float64) to a
// per-population slice of length p.
func resolveTheta(theta interface{}, p int) ([]float64, error) {
	switch v := theta.(type) {
	case nil:
		return make([]float64, p), nil
	case float64:
		out := make([]float64, p)
		for k := range out {
			out[k] = v
		}
		return out, nil
	case []float64:
		if len(v) != p {
			return nil, fmt.Errorf("resolveTheta: len=%d want %d: %w", len(v), p, ErrBadConfig)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("resolveTheta: unsupported type %T: %w", theta, ErrBadConfig)
	}
}

// resolvePerPop fills a length-p default slice when v is nil, and checks
// the length otherwise. name is used only for the error message.
func resolvePerPop(v []float64, p int, name string) ([]float64, error) {
	if v == nil {
		return make([]float64, p), nil
	}
	if len(v) != p {
		return nil, fmt.Errorf("resolvePerPop: %s has len=%d want %d: %w", name, len(v), p, ErrBadConfig)
	}
	return v, nil
}

func resolveFrozen(v []bool, p int) ([]bool, error) {
	if v == nil {
		return make([]bool, p), nil
	}
	if len(v) != p {
		return nil, fmt.Errorf("resolveFrozen: len=%d want %d: %w", len(v), p, ErrBadConfig)
	}
	return v, nil
}
