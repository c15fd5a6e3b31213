// Grounded on Integration_nomig.py's per-axis dispatch (_ud1_Npop_k), here
// replaced by the single generic forEachLine walk so one code path handles
// any population count instead of one generated function per axis count.
// The operator cache (Integrator) and adaptive-dt halving keep cache
// ownership on the value returned by a single Integrate call, never in a
// package-level variable.
package integrate
