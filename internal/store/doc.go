// Package store persists finished album records to flat JSON files and
// keeps the append-only log of albums whose cover art could not be
// resolved. It decides file formats; callers decide paths.
package store
