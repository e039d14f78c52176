// Package snapshot implements the §6 persistent/snapshot JSON document: a
// stable, inspectable rendering of dual-module and graph state for tooling
// and tests, encoded through json-iterator's standard-library-compatible
// config per SPEC_FULL's DOMAIN STACK (grounded on lnz-BalancedGo's go.mod
// dependency on github.com/json-iterator/go).
package snapshot
