package bytepack

// Package bytepack derives fixed binary wire layouts from declared structure
// types and compiles them into pack/unpack patterns:
//
// - A Schema Builder (BuildDescription) that walks an ordered field
//   declaration, validates annotations, and emits a Description tree
// - A Pattern Compiler (Pattern) that flattens a Description into a single
//   struct-style pattern string
// - A stable error model via Issues (field path, code, message)
// - A pattern-driven Pack/Unpack primitive over fixed-width values
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations
//   under subpackages where they grow.
// - Place the builder DSL under dsl/, layout export under layoutschema/, the
//   incremental reader under stream/, and the CLI under cmd/bytepack.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  point := dsl.Struct("Point").
//      Field("x", dsl.F32()).
//      Field("y", dsl.F32()).
//      MustBuild()
//
//  buf, err := point.Pack([]any{float32(1), float32(2)})
//  vals, err := point.Unpack(buf)
//
// Description trees are immutable once built and safe to share across
// goroutines; per-parse scratch lives in ParseState (see NewState).
