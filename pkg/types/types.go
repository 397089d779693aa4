// Package types defines the error taxonomy and small shared types.
package types

// Void is used for values in maps used as sets.
type Void struct{}
