// Package http exposes the store over a JSON and CSV HTTP API built on echo.
//
// Every request is validated against the embedded OpenAPI 3 document before
// it reaches a handler, and the same document is served at /swagger/.
//
// # Error mapping
//
// Handlers classify failures with errs.KindOf:
//
//	InvalidValue, IncompleteValue, InvalidQuantity,
//	CapacityExceeded, ContentMismatch  -> 400 Bad Request
//	UnknownItem                        -> 404 Not Found
//	InsufficientStock                  -> 409 Conflict
//	anything else                      -> 500 Internal Server Error
//
// The body of a failed request is always an Error document:
//
//	{"code": 409, "kind": "InsufficientStock", "message": "stock is insufficient: Rice requested 1000, available 70"}
package http
