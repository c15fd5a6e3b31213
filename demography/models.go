package demography

import "math"

// TwoEpoch returns the size schedule for a single-population instantaneous
// size change to nu (relative to the ancestral size), held constant for
// the rest of the integration. T is not read by Evaluate — the schedule is
// constant for any t — but is accepted to mirror Demographics1D.py's
// two_epoch(params, ns) signature, where T is the epoch's duration and is
// typically also used as the caller's integrate.Config.TFinal.
func TwoEpoch(nu, T float64) SizeSchedule {
	return Constant([]float64{nu})
}

// Bottlegrowth returns the size schedule for a single-population instant
// bottleneck to nuB followed by exponential growth (or decay) reaching nuF
// at time T: N(t) = nuB * (nuF/nuB)^(t/T), mirroring
// Demographics1D.py's bottlegrowth(params, ns).
func Bottlegrowth(nuB, nuF, T float64) SizeSchedule {
	return Func(func(t float64) []float64 {
		if T <= 0 {
			return []float64{nuF}
		}
		frac := t / T
		if frac > 1 {
			frac = 1
		}
		if frac < 0 {
			frac = 0
		}
		ratio := nuF / nuB
		return []float64{nuB * math.Pow(ratio, frac)}
	})
}
