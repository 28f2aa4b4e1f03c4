// Package kernel contains shared value objects used across the order domain.
// It currently provides the UUID identifier type that entities and aggregates
// use as their primary key.
//
// Value objects in this package are immutable, validated at construction, and
// safe for concurrent use.
package kernel
