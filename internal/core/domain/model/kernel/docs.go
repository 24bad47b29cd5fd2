// Package kernel provides core domain primitives for the food-ordering admin
// console. It implements fundamental building blocks following Domain-Driven
// Design principles that are used throughout the domain model.
//
// The package currently contains:
//   - UUID: a value object for unique identifiers with validation and comparison
//
// These primitives are immutable and thread-safe, making them suitable for
// concurrent use.
package kernel
