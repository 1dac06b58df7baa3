package store

import "errors"

// ErrDatasetNotFound is returned when a requested dataset name has no row
// in the datasets table.
var ErrDatasetNotFound = errors.New("store: dataset not found")
