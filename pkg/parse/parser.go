package parse

import (
	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
)

var (
	statementLexer = lexer.Unquote(
		lexer.Upper(
			lexer.Must(
				lexer.Regexp(`(\s+)`+
					`|(?P<Keyword>(?i)HASH|CHECK|PUT|LOOKUP|RESOLVE)`+
					`|(?P<Ident>[a-zA-Z_][a-zA-Z0-9_]*)`+
					`|(?P<String>'[^']*'|"[^"]*")`,
				),
			),
			"Keyword",
		),
		"String",
	)
	statementParser = participle.MustBuild(&Statement{}, statementLexer)
)

// Type keys and JSON values both arrive as quoted strings, e.g.
//
//	HASH 'Seq<Bool>' '[true, false]'
//	PUT 'Pair<Text, Number>' '["a", 1]'

type Statement struct {
	Hash    *Hash    `  @@`
	Check   *Check   `| @@`
	Put     *Put     `| @@`
	Lookup  *Lookup  `| @@`
	Resolve *Resolve `| @@`
}

// Hash computes the hash code of one value.
type Hash struct {
	TypeKey string `"HASH" @String`
	Value   string `@String`
}

// Check reports whether two values of one type are hash-equal.
type Check struct {
	TypeKey string `"CHECK" @String`
	A       string `@String`
	B       string `@String`
}

// Put stores a value in the index, unless an equal one is present.
type Put struct {
	TypeKey string `"PUT" @String`
	Value   string `@String`
}

// Lookup finds stored entries equal to a value.
type Lookup struct {
	TypeKey string `"LOOKUP" @String`
	Value   string `@String`
}

// Resolve warms the strategy for a type key.
type Resolve struct {
	TypeKey string `"RESOLVE" @String`
}

// Parse parses one wire statement.
func Parse(input string) (*Statement, error) {
	result := &Statement{}
	err := statementParser.ParseString(input, result)
	return result, err
}
