// Package diagnostic provides the fatal error taxonomy and the non-fatal
// warnings produced while compiling a record into inspector bindings.
//
// Fatal errors:
//   - UnsupportedLiteralKind: a slider bound that is not an int or float literal
//   - MissingSliderBounds: a slider on a numeric field without both bounds
//   - UnsupportedFieldShape: slices, arrays, pointers, maps and other non-named field types
//   - UnknownRecordShape: the requested type is not a plain struct
//   - MalformedDirective: tag text that does not tokenize as a directive list
//
// Every fatal error aborts the whole record; no partial procedure is produced.
package diagnostic
