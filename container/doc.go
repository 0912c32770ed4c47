// Package container implements vectors and matrices of quantities.
//
// A container binds storage.Data (standard-unit values, dense or sparse) to a
// display unit of kind K. Vector and Matrix are immutable; MutableVector and
// MutableMatrix add in-place operations.
//
// AbsVector and AbsMatrix hold positions in the absolute counterpart of K,
// e.g. readings in °C for K = unit.Temperature. They move by relative
// containers (Plus, Minus) and their differences (MinusAbs) are relative
// containers.
//
// Mutable() and Immutable() never copy. Both the source and the result are
// flagged copy-on-write and share the storage; a mutable container copies
// the storage before its first mutation while the flag is set. Containers that
// share storage therefore never observe each other's later mutations.
//
// Containers are not safe for concurrent mutation.
package container
