package mapdesc

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Each line of a description is lexed on its own; newlines never reach the
// lexer so line accounting stays with Parse.
var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Punct", Pattern: `,`},
	{Name: "whitespace", Pattern: `[ \t\r]+`},
})

// headerLine is "rows,cols". Values stay strings so that the conversion
// rules (decimal only) are ours, not the parser's.
type headerLine struct {
	Rows string `parser:"@Int \",\""`
	Cols string `parser:"@Int"`
}

// cellLine is "Label[,field]*".
type cellLine struct {
	Label  string   `parser:"@Ident"`
	Fields []*field `parser:"( \",\" @@ )*"`
}

type field struct {
	Pos   lexer.Position
	Value string `parser:"@( Int | Ident )"`
}

var (
	headerParser = participle.MustBuild[headerLine](participle.Lexer(lineLexer))
	cellParser   = participle.MustBuild[cellLine](participle.Lexer(lineLexer))
)
