// Package pipeline processes albums end to end: question generation,
// cover-art resolution, and the bookkeeping of failures.
package pipeline
