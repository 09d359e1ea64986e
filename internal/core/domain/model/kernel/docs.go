// Package kernel provides the shared primitives of the store domain.
//
// The package includes:
//   - UUID: identity of vehicles and manifests, so a manifest behaves as a set
//   - Temperature: a storage temperature bounded to the range a refrigerated
//     vehicle can hold ([MinTemperature, MaxTemperature])
//   - FormatCurrency: renders capital and prices the way store reports show them
//
// All primitives are immutable values; a zero UUID fails validation so that
// declared-but-unbuilt values are caught before they reach the store.
package kernel
