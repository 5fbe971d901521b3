// Package testsupport holds shared fixtures for package tests: isolated
// configs rooted in t.TempDir and an opened history store.
package testsupport
