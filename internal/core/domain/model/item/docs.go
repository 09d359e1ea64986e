// Package item provides the Item value object: a stockable product with its
// costs, reorder policy and optional storage temperature.
//
// The package includes:
//   - Item: immutable product description, identified by its case-sensitive name
//   - Builder: accumulates and validates the item's attributes field by field
//
// Key business rules:
//   - The name is non-empty; two items with the same name are the same item
//   - Manufacturing cost, sell price, reorder point and reorder amount are never negative
//   - An item with an ideal temperature is temperature-controlled and must be
//     stored within [kernel.MinTemperature, kernel.MaxTemperature]
//   - An item without an ideal temperature is a dry good
//   - Every attribute except the ideal temperature is required
package item
