package httplint_test

import (
	"errors"
	"fmt"

	"github.com/ava12/httplint"
	g "github.com/ava12/httplint/grammar"
	"github.com/ava12/httplint/parser"
	"github.com/ava12/httplint/structure"
	"github.com/ava12/httplint/syntax"
)

func Example() {
	line, notes, e := syntax.ParseRequestLine([]byte("GET /index.html HTTP/1.1\r\n"))
	if e != nil {
		fmt.Println(e)
		return
	}
	fmt.Println(line.Method, line.Target.Form, line.Version, len(notes))

	hops, notes, e := syntax.ParseVia([]byte("1.1  proxy"))
	if e != nil {
		fmt.Println(e)
		return
	}
	fmt.Println(hops[0])
	for _, n := range notes {
		fmt.Println(n)
	}

	// Output:
	// GET origin-form HTTP/1.1 0
	// HTTP/1.1 proxy
	// 1014 Whitespace should be a single space num=2 (RFC 7230 § 3.2.3)
}

func Example_grammar() {
	pair := g.Map(g.Seq(syntax.Token, g.Skip(g.Octet('=')), syntax.Token), func(v any) any {
		vs := v.([]any)
		return structure.Param{Name: vs[0].(string), Value: vs[1].(string)}
	})
	params := parser.MustNew(syntax.CommaList1(pair))

	res, e := params.ParseString("params", "a=1, ,b=2")
	if e != nil {
		fmt.Println(e)
		return
	}
	for _, v := range res.Value.([]any) {
		fmt.Println(v)
	}
	fmt.Println(res.Notices.Codes())

	_, e = params.ParseString("params", "a=1, b")
	var he *httplint.Error
	if errors.As(e, &he) {
		fmt.Println(he.Code == parser.SyntaxError, he.Line, he.Col)
	}

	// Output:
	// a=1
	// b=2
	// [1151]
	// true 1 7
}
