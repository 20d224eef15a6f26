package hashcode

import (
	"fmt"

	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
)

var (
	typeKeyLexer = lexer.Must(lexer.Regexp(`(\s+)` +
		`|(?P<Ident>[a-zA-Z_][a-zA-Z0-9_]*)` +
		`|(?P<Operators>[<>,])`,
	))
	typeKeyParser = participle.MustBuild(&typeKeyNode{}, typeKeyLexer)
)

type typeKeyNode struct {
	Name   string         `@Ident`
	Params []*typeKeyNode `[ "<" @@ { "," @@ } ">" ]`
}

// ParseKey parses the canonical type key syntax: Text, Seq<Bool>,
// Pair<Text, Number>, Union<Seq<Text>, Option<Bool>>, and so on.
// It round-trips with Key().
func ParseKey(input string) (TypeKey, error) {
	node := &typeKeyNode{}
	if err := typeKeyParser.ParseString(input, node); err != nil {
		return nil, &InvalidTypeKey{Key: input, Reason: err.Error()}
	}
	return node.toKey()
}

func (n *typeKeyNode) toKey() (TypeKey, error) {
	switch n.Name {
	case "Seq":
		elem, err := n.param1()
		if err != nil {
			return nil, err
		}
		return NewSeqKey(elem), nil
	case "Option":
		elem, err := n.param1()
		if err != nil {
			return nil, err
		}
		return NewOptionKey(elem), nil
	case "Pair":
		first, second, err := n.param2()
		if err != nil {
			return nil, err
		}
		return NewPairKey(first, second), nil
	case "Union":
		left, right, err := n.param2()
		if err != nil {
			return nil, err
		}
		return NewUnionKey(left, right), nil
	default:
		if len(n.Params) > 0 {
			return nil, &InvalidTypeKey{
				Key:    n.Name,
				Reason: "only Seq, Option, Pair, and Union take parameters",
			}
		}
		return NewPrimKey(n.Name)
	}
}

func (n *typeKeyNode) param1() (TypeKey, error) {
	if len(n.Params) != 1 {
		return nil, n.arityError(1)
	}
	return n.Params[0].toKey()
}

func (n *typeKeyNode) param2() (TypeKey, TypeKey, error) {
	if len(n.Params) != 2 {
		return nil, nil, n.arityError(2)
	}
	first, err := n.Params[0].toKey()
	if err != nil {
		return nil, nil, err
	}
	second, err := n.Params[1].toKey()
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

func (n *typeKeyNode) arityError(want int) error {
	return &InvalidTypeKey{
		Key:    n.Name,
		Reason: fmt.Sprintf("%s takes %d parameter(s); given %d", n.Name, want, len(n.Params)),
	}
}
