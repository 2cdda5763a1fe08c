// Package compile walks a record's fields and assembles the generated render
// procedures.
//
// For each field, in declaration order, the walker parses the `inspect` tag,
// classifies the declared type and emits one binding. Ignored fields produce
// nothing. The first fatal error aborts the record: a record compiles fully or
// not at all.
//
// The assembler packages the bindings into two procedures: a plain render and a
// nested render that writes the caller's label as a heading first. Both share the
// same bindings.
package compile
