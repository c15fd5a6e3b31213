// Frozen wraps a schedule in a decorator that substitutes a sentinel size
// for frozen axes; integrate does not use it and handles its own Frozen
// flags by skipping those axes' drift+selection stage. TwoEpoch and Bottlegrowth mirror the named models in
// Demographics1D.py, reduced to just their size-schedule shape (the full
// demographic-model wrapper stays out of scope).
package demography
