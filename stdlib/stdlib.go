// Package stdlib assembles the dices standard library: the named-path
// map of intrinsics spec §2 item 7 describes (`intrisics`, `filters.{kh,
// kl,rh,rl}`, `prelude`), built directly as ast.Value literals rather
// than parsed from source, since the core engine has no parser
// dependency of its own (spec §4.1).
//
// Grounded on original_source/dices-engine/src/dices_std.rs's std()
// function, which builds the same three named sub-paths via a small
// nested-map macro; this package gets the identical shape without a
// macro, chained MapValue.Set calls doing the same job.
package stdlib

import (
	"github.com/zannabianca1997/dices-go/ast"
	"github.com/zannabianca1997/dices-go/ident"
	"github.com/zannabianca1997/dices-go/intrinsic"
)

// names of the core intrinsics this package refers to directly: the four
// filters bound under the "filters" sub-path, and help, wrapped by the
// prelude. The flat "intrisics" path takes its names from the registry.
const (
	nameKeepHigh   = "kh"
	nameKeepLow    = "kl"
	nameRemoveHigh = "rh"
	nameRemoveLow  = "rl"
	nameHelp       = "help"
)

// Std builds the default standard library map (spec §2 item 7): a Map
// with keys "intrisics" (every registered intrinsic, core and injected,
// keyed by name), "filters" (the four list filters under their short
// names), and "prelude" (convenience closures defined in terms of the
// injected intrinsics, per SPEC_FULL.md §6).
func Std(reg *intrinsic.Registry) ast.MapValue {
	intrisics := ast.EmptyMap
	for _, c := range reg.All() {
		intrisics = intrisics.Set(c.Name(), ast.NewIntrinsic(c.Name()))
	}

	filters := ast.EmptyMap.
		Set(nameKeepHigh, ast.NewIntrinsic(nameKeepHigh)).
		Set(nameKeepLow, ast.NewIntrinsic(nameKeepLow)).
		Set(nameRemoveHigh, ast.NewIntrinsic(nameRemoveHigh)).
		Set(nameRemoveLow, ast.NewIntrinsic(nameRemoveLow))

	return ast.EmptyMap.
		Set("intrisics", intrisics).
		Set("filters", filters).
		Set("prelude", Prelude())
}

// Prelude builds the small set of closures the original composes over
// the injected intrinsics (SPEC_FULL.md §6: "prelude itself is a small
// set of closures... that reference the injected intrinsics"). The core
// has no parser, so these are built directly as ast.ClosureValue/
// ast.Expression literals instead of parsed dices source. The dices AST
// has no conditional-expression node (spec §3.4's union is exhaustive
// and branch-free), so prelude closures are limited to straight-line
// wrappers rather than anything that would need to inspect `help`'s
// Null-on-miss result.
//
// topics() is a zero-argument convenience wrapper around `help`'s
// zero-arg form, so callers that only want the topic index don't need
// to know `help` overloads on arity.
func Prelude() ast.MapValue {
	topics := ast.NewClosure(
		nil,
		ast.EmptyMap.Set(nameHelp, ast.NewIntrinsic(nameHelp)),
		ast.Call{Callee: ast.Ref{Name: ident.MustNew(nameHelp)}},
	)

	return ast.EmptyMap.Set("topics", topics)
}
