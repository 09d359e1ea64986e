// Package csvfile reads and writes the store's comma-separated files.
//
// Supported formats:
//   - Item properties: one item per line,
//     "name,cost,price,reorderPoint,reorderAmount" with an optional
//     trailing ",temperature" for temperature-controlled items
//   - Sales log: "name,quantity" per line
//   - Manifest: a ">Standard" (or ">Ordinary") or ">Refrigerated" line opens a
//     vehicle and the following "name,quantity" lines are its cargo
//
// A malformed line is reported as an errs.ValueIsInvalidError naming the line
// number, the expected shape and the fields found. Domain failures such as an
// unknown item keep their own error kind.
package csvfile
