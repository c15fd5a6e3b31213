// The header/data/mask line structure mirrors dadi's and moments.py's
// Spectrum.from_file/to_file text format; TLSpectrum reuses the same
// three-line shape with a single sample-size integer in place of the
// per-axis shape list, since it has one implicit axis per haplotype
// rather than one axis per population.
package specio
