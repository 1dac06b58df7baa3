package oracle

// ErrSolverNotConfigured is declared in subprocess.go; this file groups the
// package's other sentinel-error documentation.
//
// Per spec.md §4.1/§7, Subprocess.Entails never returns an error for solver
// crash or unparseable output — those are logged warnings treated as "not
// entailed". The errors it does return are: malformed input Formula
// (configuration, surfaces to the caller), a failure to encode or write the
// CNF file, context cancellation/deadline (propagated verbatim so callers
// can distinguish a timeout), and ErrSolverNotConfigured (configuration).
//
// InconsistencySubprocess.Measure has no "indeterminate" outcome: besides
// the context and ErrSolverNotConfigured cases, it returns an error when
// the measure binary fails, prints nothing, or prints an unparseable or
// negative value.
