// Package harness runs end-to-end export scenarios for tests: decode a
// persisted workflow record, lower it to IR, generate the full artifact
// set, and compare selected artifacts against golden files.
//
// Golden files live in testdata/golden/ next to the test that uses the
// harness and are regenerated with:
//
//	go test ./... -update
package harness
