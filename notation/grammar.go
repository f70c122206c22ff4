package notation

import (
	"github.com/alecthomas/participle/v2"
)

// expression is either a mapping, a list or a product of cycles:
//
//	{1:2, 2:3, 3:1}
//	[5, 6, 1, 4, 2]
//	(1 2 4)(3 5)()
type expression struct {
	Mapping *mapping `  @@`
	List    *list    `| @@`
	Cycles  []*cycle `| @@+`
}

type mapping struct {
	Pairs []*pair `"{" ( @@ ( "," @@ )* ","? )? "}"`
}

type pair struct {
	Key   int `@Int ":"`
	Value int `@Int`
}

type list struct {
	Elements []int `"[" ( @Int ( "," @Int )* ","? )? "]"`
}

type cycle struct {
	Elements []int `"(" ( @Int ","? )* ")"`
}

var parseExpression = participle.MustBuild[expression]()
