package directive

import (
	"go/scanner"
	"go/token"

	"inspector-generator/internal/diagnostic"
)

// lexeme is one scanned token of the tag.
type lexeme struct {
	tok token.Token
	lit string
	off int
}

// item is one keyword with its raw argument lexemes.
type item struct {
	name string
	args [][]lexeme // one entry per comma separated argument
}

// Parse extracts the directive set from a raw `inspect` tag value.
// An empty tag yields an empty set.
//
// ignore and nested both take no arguments, but they are checked differently.
// ignore voids the whole tag, its own arguments included, so ignore(1) still
// yields the ignore set. nested(1) is rejected as malformed.
func Parse(tag string) (Set, error) {
	lexemes, err := scan(tag)
	if err != nil {
		return nil, err
	}

	items, err := split(lexemes)
	if err != nil {
		return nil, err
	}

	// ignore voids everything else, including arguments that would not parse.
	for _, it := range items {
		if it.name == KindIgnore.String() {
			return Set{{Kind: KindIgnore}}, nil
		}
	}

	var set Set

	for _, it := range items {
		switch it.name {
		case KindSlider.String():
			bounds, err := sliderBounds(it.args)
			if err != nil {
				return nil, err
			}

			set = mergeSlider(set, bounds)

		case KindNested.String():
			if len(it.args) > 0 {
				return nil, diagnostic.Errorf(diagnostic.CodeMalformedDirective,
					"nested takes no arguments")
			}

			if !set.Has(KindNested) {
				set = append(set, Directive{Kind: KindNested})
			}

		default:
			// Unknown keywords are reserved for future use.
		}
	}

	return set, nil
}

// scan tokenizes the tag. The scanner's automatic semicolons double as separators.
func scan(tag string) ([]lexeme, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(tag))

	var scanErr error

	var s scanner.Scanner
	s.Init(file, []byte(tag), func(pos token.Position, msg string) {
		if scanErr == nil {
			scanErr = diagnostic.Errorf(diagnostic.CodeMalformedDirective,
				"%q: %s at offset %d", tag, msg, pos.Offset)
		}
	}, 0)

	var out []lexeme

	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		out = append(out, lexeme{tok: tok, lit: lit, off: file.Offset(pos)})
	}

	if scanErr != nil {
		return nil, scanErr
	}

	return out, nil
}

// split groups lexemes into keyword items.
func split(lexemes []lexeme) ([]item, error) {
	var items []item

	for i := 0; i < len(lexemes); {
		lx := lexemes[i]
		if isSeparator(lx.tok) {
			i++
			continue
		}

		if lx.tok != token.IDENT {
			return nil, malformed(lx, "expected directive name")
		}

		it := item{name: lx.lit}
		i++

		if i < len(lexemes) && lexemes[i].tok == token.LPAREN {
			args, next, err := splitArgs(lexemes, i+1)
			if err != nil {
				return nil, err
			}

			it.args = args
			i = next
		}

		if i < len(lexemes) && !isSeparator(lexemes[i].tok) {
			return nil, malformed(lexemes[i], "expected , or ; after "+it.name)
		}

		items = append(items, it)
	}

	return items, nil
}

// splitArgs collects the arguments of a parenthesized list starting at i and
// returns the index just past the closing parenthesis.
func splitArgs(lexemes []lexeme, i int) ([][]lexeme, int, error) {
	var (
		args  [][]lexeme
		cur   []lexeme
		depth int
	)

	for ; i < len(lexemes); i++ {
		lx := lexemes[i]

		switch lx.tok {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			if depth == 0 {
				if len(cur) > 0 {
					args = append(args, cur)
				} else if len(args) > 0 {
					return nil, 0, malformed(lx, "empty argument")
				}

				return args, i + 1, nil
			}

			depth--
		case token.COMMA:
			if depth == 0 {
				if len(cur) == 0 {
					return nil, 0, malformed(lx, "empty argument")
				}

				args = append(args, cur)
				cur = nil

				continue
			}
		case token.SEMICOLON:
			// Automatic semicolon before the end of input means ")" is missing.
			if lx.lit == "\n" {
				return nil, 0, malformed(lx, "missing )")
			}
		}

		cur = append(cur, lx)
	}

	return nil, 0, diagnostic.Errorf(diagnostic.CodeMalformedDirective, "missing )")
}

// sliderBounds classifies slider arguments. Every argument must be numeric; only the
// first two are kept.
func sliderBounds(args [][]lexeme) ([]Literal, error) {
	var bounds []Literal

	for _, arg := range args {
		lit, err := classifyArg(arg)
		if err != nil {
			return nil, err
		}

		if !lit.Kind.IsNumeric() {
			return nil, diagnostic.Errorf(diagnostic.CodeUnsupportedLiteralKind,
				"slider bound %s is a %s literal; only int and float bounds are supported",
				lit.Text, lit.Kind)
		}

		if len(bounds) < 2 {
			bounds = append(bounds, lit)
		}
	}

	return bounds, nil
}

// classifyArg turns one argument's lexemes into a Literal.
func classifyArg(arg []lexeme) (Literal, error) {
	first := arg[0]

	sign := ""
	if first.tok == token.SUB {
		sign = "-"
		arg = arg[1:]
	}

	if len(arg) != 1 {
		return Literal{}, malformed(first, "argument must be a single literal")
	}

	lx := arg[0]

	var kind LiteralKind

	switch lx.tok {
	case token.INT:
		kind = LiteralInt
	case token.FLOAT:
		kind = LiteralFloat
	case token.IMAG:
		kind = LiteralImag
	case token.CHAR:
		kind = LiteralChar
	case token.STRING:
		kind = LiteralString
	case token.IDENT:
		if lx.lit == "true" || lx.lit == "false" {
			kind = LiteralBool
		} else {
			kind = LiteralIdent
		}
	default:
		return Literal{}, malformed(lx, "unexpected "+lx.tok.String())
	}

	if sign != "" && !kind.IsNumeric() {
		return Literal{}, malformed(lx, "minus sign on a non-numeric literal")
	}

	return Literal{Kind: kind, Text: sign + lx.lit}, nil
}

// mergeSlider folds bounds into the set's slider directive. Repeated slider
// directives keep filling min, then max, in order of appearance.
func mergeSlider(set Set, bounds []Literal) Set {
	idx := -1

	for i, d := range set {
		if d.Kind == KindSlider {
			idx = i
			break
		}
	}

	if idx < 0 {
		set = append(set, Directive{Kind: KindSlider})
		idx = len(set) - 1
	}

	d := &set[idx]

	for _, b := range bounds {
		switch {
		case d.Min == nil:
			d.Min = &b
		case d.Max == nil:
			d.Max = &b
		}
	}

	return set
}

func isSeparator(tok token.Token) bool {
	return tok == token.COMMA || tok == token.SEMICOLON
}

func malformed(lx lexeme, msg string) error {
	return diagnostic.Errorf(diagnostic.CodeMalformedDirective, "%s at offset %d", msg, lx.off)
}
