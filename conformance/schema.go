// Package conformance is a YAML-fixture-driven scenario harness covering
// spec §8's testable properties and concrete scenario table. Since the
// core engine has no parser dependency (spec §4.1), fixtures describe
// the AST directly as a small tagged YAML tree instead of dices source
// text — the decoding equivalent of what an external parser would hand
// the engine.
//
// Grounded directly on the teacher's conformance/schema.go
// (TestCase/Expectation structs decoded from YAML via gopkg.in/yaml.v3)
// and conformance/loader.go (directory walk over fixture files), adapted
// from MOO verb/statement fixtures to dices expression-tree fixtures.
package conformance

// TestSuite is the top-level shape of one fixture file.
type TestSuite struct {
	Cases []TestCase `yaml:"cases"`
}

// TestCase is one scenario: an expression tree plus its expected
// outcome.
type TestCase struct {
	Name   string      `yaml:"name"`
	Seed   *uint64     `yaml:"seed,omitempty"`
	Expr   Node        `yaml:"expr"`
	Expect Expectation `yaml:"expect"`
}

// Expectation describes exactly one of: a successful value, a numeric
// range every element of a resulting List must fall in (spec §8
// scenario 3's "(d 6) ^ 3" — reproducible per element but not per draw),
// a named error kind, or a Quitted/CannotEvalInConst interrupt.
type Expectation struct {
	Value        *Node        `yaml:"value,omitempty"`
	ListEachInRange *RangeSpec `yaml:"list_each_in_range,omitempty"`
	ErrorKind    string       `yaml:"error,omitempty"`
	Interrupt    *InterruptSpec `yaml:"interrupt,omitempty"`
}

// RangeSpec bounds every element of a List result (inclusive).
type RangeSpec struct {
	Min int64 `yaml:"min"`
	Max int64 `yaml:"max"`
}

// InterruptSpec describes an expected structured interrupt (spec §5).
type InterruptSpec struct {
	Kind   string `yaml:"kind"` // "quitted" or "cannot_eval_in_const"
	Values []Node `yaml:"values,omitempty"`
}

// Node is a tagged tree node: either an ast.Expression shape (binop,
// call, scope, ...) or a value literal (null/bool/number/string/list/
// map), the latter always wrapped as ast.Const (or ast.List/ast.Map for
// composite literals) by Build.
type Node struct {
	Kind string `yaml:"kind"`

	// Literal payload for kind in {null, bool, number, string}.
	Lit any `yaml:"lit,omitempty"`

	Elements []Node          `yaml:"elements,omitempty"` // list
	Entries  map[string]Node `yaml:"entries,omitempty"`  // map

	Params []string `yaml:"params,omitempty"` // closure
	Body   *Node    `yaml:"body,omitempty"`   // closure body

	Items []Node `yaml:"items,omitempty"` // scope sequence

	Op      string `yaml:"op,omitempty"`      // unop/binop symbol
	Operand *Node  `yaml:"operand,omitempty"` // unop
	Lhs     *Node  `yaml:"lhs,omitempty"`     // binop
	Rhs     *Node  `yaml:"rhs,omitempty"`     // binop

	Callee *Node  `yaml:"callee,omitempty"` // call
	Args   []Node `yaml:"args,omitempty"`   // call

	Name string `yaml:"name,omitempty"` // ref / let / set root

	Indices []Node `yaml:"indices,omitempty"` // indexed set
	Value   *Node  `yaml:"value,omitempty"`   // set/let RHS

	Target *Node `yaml:"target,omitempty"` // member access
	Index  *Node `yaml:"index,omitempty"`  // member access
}
