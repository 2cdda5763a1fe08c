// Package directive parses the per-field `inspect` struct tag into a set of
// directives.
//
// Tag grammar, tokenized with go/scanner:
//
//	tag  = item { ("," | ";") item } .
//	item = ident [ "(" [ arg { "," arg } ] ")" ] .
//	arg  = [ "-" ] literal | ident .
//
// Recognized keywords:
//
//	slider(min, max)  range slider; int or float bounds, first is min, second is max
//	ignore            no widget for this field; voids every other directive
//	nested            delegate to the field's own inspector even if it looks primitive
//
// Unknown keywords and their arguments are skipped.
package directive
