// Package geom holds the float32 vector and ray types used by the tracer.
//
// All types are plain values. Every operation returns a new value and none of
// them allocate.
//
// Products are converted back to float32 before they are summed. A conversion
// forbids the compiler from fusing a multiply-add into a single FMA
// instruction, so the same inputs give the same bits on every architecture.
package geom
