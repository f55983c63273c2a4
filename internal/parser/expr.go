package parser

import (
	"pytwig/internal/ast"
	"pytwig/internal/object"
	"pytwig/internal/token"
)

// variableRef wraps a VariableValue so assignmentOrExpr can recover the
// dotted segment list when the parsed expression turns out to be an
// assignment target; only a plain variable or dotted chain is wrapped, so
// any other expression is rejected as a target.
type variableRef struct {
	*ast.VariableValue
	dotted []string
}

func (p *Parser) expression() ast.Node {
	return p.orExpr()
}

func (p *Parser) orExpr() ast.Node {
	left := p.andExpr()
	for p.match(token.Or) {
		right := p.andExpr()
		left = ast.NewOr(left, right)
	}
	return left
}

func (p *Parser) andExpr() ast.Node {
	left := p.notExpr()
	for p.match(token.And) {
		right := p.notExpr()
		left = ast.NewAnd(left, right)
	}
	return left
}

func (p *Parser) notExpr() ast.Node {
	if p.match(token.Not) {
		return ast.NewNot(p.notExpr())
	}
	return p.comparisonExpr()
}

func (p *Parser) comparisonExpr() ast.Node {
	left := p.additionExpr()
	for {
		var cmp object.Comparator
		switch {
		case p.match(token.Eq):
			cmp = object.Equal
		case p.match(token.NotEq):
			cmp = object.NotEqual
		case p.match(token.LessOrEq):
			cmp = object.LessOrEqual
		case p.match(token.GreaterOrEq):
			cmp = object.GreaterOrEqual
		case p.matchChar('<'):
			cmp = object.Less
		case p.matchChar('>'):
			cmp = object.Greater
		default:
			return left
		}
		right := p.additionExpr()
		left = ast.NewComparison(left, right, cmp)
	}
}

func (p *Parser) additionExpr() ast.Node {
	left := p.multiplicationExpr()
	for {
		switch {
		case p.matchChar('+'):
			left = ast.NewAdd(left, p.multiplicationExpr())
		case p.matchChar('-'):
			left = ast.NewSub(left, p.multiplicationExpr())
		default:
			return left
		}
	}
}

func (p *Parser) multiplicationExpr() ast.Node {
	left := p.primary()
	for {
		switch {
		case p.matchChar('*'):
			left = ast.NewMult(left, p.primary())
		case p.matchChar('/'):
			left = ast.NewDiv(left, p.primary())
		default:
			return left
		}
	}
}

func (p *Parser) primary() ast.Node {
	tok := p.peek()
	switch {
	case p.match(token.Number):
		return ast.NewValueStatement(object.Own(object.Number(tok.IntValue)))
	case p.match(token.String):
		return ast.NewValueStatement(object.Own(object.String(tok.StrValue)))
	case p.match(token.True):
		return ast.NewValueStatement(object.Own(object.Bool(true)))
	case p.match(token.False):
		return ast.NewValueStatement(object.Own(object.Bool(false)))
	case p.match(token.None):
		return ast.NewNoneNode()
	case p.matchChar('('):
		expr := p.expression()
		p.consumeChar(')', "expected ')' to close parenthesized expression")
		return expr
	case p.check(token.Id):
		return p.identifierChain()
	}
	panic(p.errorf(tok.Line, "unexpected token %s", tok))
}

// identifierChain parses a leading identifier plus any '.'-separated
// dotted-attribute segments and/or call parentheses that follow it:
//
//   - a bare identifier or dotted chain with no call becomes a
//     VariableValue (wrapped so assignmentOrExpr can recover it as an
//     lvalue);
//   - `str(x)` is recognized as the Stringify builtin;
//   - `Name(args)` where Name is a previously declared class becomes a
//     NewInstance;
//   - `a.b.method(args)` becomes a MethodCall on VariableValue(a, b);
//   - any further `.method(args)` chained onto a call result is another
//     MethodCall — chained calls compose, but plain attribute access
//     after a call does not, since VariableValue can only walk a chain
//     rooted in the current closure.
func (p *Parser) identifierChain() ast.Node {
	first := p.consumeKind(token.Id, "expected identifier")

	if first.StrValue == "str" && p.checkChar('(') {
		args := p.callArgs()
		if len(args) != 1 {
			panic(p.errorf(first.Line, "str() takes exactly one argument"))
		}
		return p.chainCalls(ast.NewStringify(args[0]))
	}

	if p.checkChar('(') {
		cls, ok := p.classes[first.StrValue]
		if !ok {
			panic(p.errorf(first.Line, "%q is not a known class", first.StrValue))
		}
		return p.chainCalls(ast.NewNewInstance(cls, p.callArgs()...))
	}

	dotted := []string{first.StrValue}
	for p.checkChar('.') {
		p.advance()
		name := p.consumeKind(token.Id, "expected identifier after '.'")
		if p.checkChar('(') {
			base := ast.NewVariableValue(dotted...)
			return p.chainCalls(ast.NewMethodCall(base, name.StrValue, p.callArgs()...))
		}
		dotted = append(dotted, name.StrValue)
	}

	return &variableRef{VariableValue: ast.NewVariableValue(dotted...), dotted: dotted}
}

// chainCalls extends a call-producing node with any further `.method(...)`
// calls applied to its result.
func (p *Parser) chainCalls(node ast.Node) ast.Node {
	for p.checkChar('.') {
		p.advance()
		name := p.consumeKind(token.Id, "expected identifier after '.'")
		p.consumeChar('(', "expected '(' after method name")
		node = ast.NewMethodCall(node, name.StrValue, p.callArgsRest()...)
	}
	return node
}

func (p *Parser) callArgs() []ast.Node {
	p.consumeChar('(', "expected '('")
	return p.callArgsRest()
}

func (p *Parser) callArgsRest() []ast.Node {
	var args []ast.Node
	if !p.checkChar(')') {
		for {
			args = append(args, p.expression())
			if !p.matchChar(',') {
				break
			}
		}
	}
	p.consumeChar(')', "expected ')' after arguments")
	return args
}
