// Package mocks provides hand-written test doubles with call tracking for
// the application's boundary interfaces.
package mocks
