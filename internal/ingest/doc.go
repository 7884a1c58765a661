// Package ingest reads the plain-text album lists that feed the pipeline
// and moves finished input files out of the way.
package ingest
