/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"strconv"

	"github.com/valyala/bytebufferpool"

	"github.com/voedger/odata/pkg/edm"
)

// Dump renders expression tree in a compact parenthesized form, e.g.
//
//	(([Price] gt 10:Edm.SByte) and ([Name] eq 'Widget':Edm.String))
//
// Members are bracketed, typed literals are suffixed with type name
func Dump(e Expression) string {
	return render(func(b *bytebufferpool.ByteBuffer) { dumpExpression(b, e) })
}

// DumpOrderBy renders $orderby items separated by comma
func DumpOrderBy(opt *OrderByOption) string {
	return render(func(b *bytebufferpool.ByteBuffer) { dumpOrderBy(b, opt) })
}

// DumpSelect renders $select items separated by comma
func DumpSelect(opt *SelectOption) string {
	return render(func(b *bytebufferpool.ByteBuffer) { dumpSelect(b, opt) })
}

// DumpExpand renders $expand items with nested options
func DumpExpand(opt *ExpandOption) string {
	return render(func(b *bytebufferpool.ByteBuffer) { dumpExpand(b, opt) })
}

// DumpParameters renders key predicates or function parameters, e.g. «(ID=5,Name='a')»
func DumpParameters(params []*UriParameter) string {
	return render(func(b *bytebufferpool.ByteBuffer) { dumpParameters(b, params) })
}

func render(f func(b *bytebufferpool.ByteBuffer)) string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)
	f(b)
	return b.String()
}

func dumpExpression(b *bytebufferpool.ByteBuffer, e Expression) {
	switch e := e.(type) {
	case nil:
		b.WriteString("<nil>")
	case *Literal:
		b.WriteString(e.Text)
		if e.Typ != nil {
			b.WriteString(":")
			b.WriteString(e.Typ.QName().String())
		}
	case *Member:
		b.WriteString("[")
		if e.StartTypeFilter != nil {
			b.WriteString(e.StartTypeFilter.QName().String())
			if len(e.Resources) > 0 {
				b.WriteString("/")
			}
		}
		dumpResources(b, e.Resources)
		b.WriteString("]")
	case *Binary:
		b.WriteString("(")
		dumpExpression(b, e.Left)
		b.WriteString(" ")
		b.WriteString(e.Operator.String())
		b.WriteString(" ")
		dumpExpression(b, e.Right)
		b.WriteString(")")
	case *Unary:
		b.WriteString("(")
		b.WriteString(e.Operator.String())
		b.WriteString(" ")
		dumpExpression(b, e.Operand)
		b.WriteString(")")
	case *Method:
		b.WriteString(e.Kind.String())
		b.WriteString("(")
		for i, p := range e.Parameters {
			if i > 0 {
				b.WriteString(", ")
			}
			dumpExpression(b, p)
		}
		b.WriteString(")")
	case *Alias:
		b.WriteString(e.Name)
		if e.Value != nil {
			b.WriteString("=")
			dumpExpression(b, e.Value)
		}
	case *TypeLiteral:
		b.WriteString("type(")
		if e.Typ != nil {
			b.WriteString(e.Typ.QName().String())
		} else {
			b.WriteString(nullLiteral)
		}
		b.WriteString(")")
	}
}

func dumpResources(b *bytebufferpool.ByteBuffer, rr []UriResource) {
	for i, r := range rr {
		if i > 0 {
			b.WriteString("/")
		}
		switch r := r.(type) {
		case *LambdaResource:
			b.WriteString(r.Segment())
			b.WriteString("(")
			if r.Predicate != nil {
				b.WriteString(r.Variable)
				b.WriteString(": ")
				dumpExpression(b, r.Predicate)
			}
			b.WriteString(")")
		case *FunctionResource:
			b.WriteString(r.Segment())
			dumpParameters(b, r.Parameters)
			if len(r.KeyPredicates) > 0 {
				dumpParameters(b, r.KeyPredicates)
			}
		case *EntitySetResource:
			b.WriteString(r.Segment())
			if len(r.KeyPredicates) > 0 {
				dumpParameters(b, r.KeyPredicates)
			}
		case *NavigationResource:
			b.WriteString(r.Segment())
			if len(r.KeyPredicates) > 0 {
				dumpParameters(b, r.KeyPredicates)
			}
		default:
			b.WriteString(r.Segment())
		}
	}
}

func dumpParameters(b *bytebufferpool.ByteBuffer, params []*UriParameter) {
	b.WriteString("(")
	for i, p := range params {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(p.Name)
		b.WriteString("=")
		switch {
		case p.Alias != "":
			b.WriteString(p.Alias)
		case p.Expression != nil:
			dumpExpression(b, p.Expression)
		case p.ReferencedProperty != "":
			b.WriteString("ref(")
			b.WriteString(p.ReferencedProperty)
			b.WriteString(")")
		default:
			b.WriteString(p.Text)
		}
	}
	b.WriteString(")")
}

func dumpOrderBy(b *bytebufferpool.ByteBuffer, opt *OrderByOption) {
	for i, item := range opt.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		dumpExpression(b, item.Expression)
		if item.Descending {
			b.WriteString(" desc")
		}
	}
}

func dumpSelect(b *bytebufferpool.ByteBuffer, opt *SelectOption) {
	for i, item := range opt.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		switch {
		case item.Star:
			b.WriteString("*")
		case !item.AllOperationsInSchema.IsNull():
			b.WriteString(item.AllOperationsInSchema.String())
		default:
			dumpPath(b, item.TypeFilter, item.Resources)
		}
	}
}

func dumpPath(b *bytebufferpool.ByteBuffer, typeFilter edm.IType, rr []UriResource) {
	if typeFilter != nil {
		b.WriteString(typeFilter.QName().String())
		b.WriteString("/")
	}
	dumpResources(b, rr)
}

func dumpExpand(b *bytebufferpool.ByteBuffer, opt *ExpandOption) {
	for i, item := range opt.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		if item.Star {
			b.WriteString("*")
		} else {
			dumpPath(b, item.TypeFilter, item.Resources)
		}
		switch {
		case item.Ref:
			b.WriteString("/$ref")
		case item.CountPath:
			b.WriteString("/$count")
		}
		dumpExpandOptions(b, item)
	}
}

func dumpExpandOptions(b *bytebufferpool.ByteBuffer, item *ExpandItem) {
	var opts []func()
	add := func(name string, f func()) {
		opts = append(opts, func() {
			b.WriteString(name)
			b.WriteString("=")
			f()
		})
	}
	if item.Levels != nil {
		add(optionLevels, func() {
			if item.Levels.Max {
				b.WriteString("max")
			} else {
				b.WriteString(strconv.Itoa(item.Levels.Value))
			}
		})
	}
	if item.Filter != nil {
		add(optionFilter, func() { dumpExpression(b, item.Filter.Expression) })
	}
	if item.Search != nil {
		add(optionSearch, func() { dumpExpression(b, item.Search.Expression) })
	}
	if item.OrderBy != nil {
		add(optionOrderBy, func() { dumpOrderBy(b, item.OrderBy) })
	}
	if item.Skip != nil {
		add(optionSkip, func() { b.WriteString(strconv.Itoa(*item.Skip)) })
	}
	if item.Top != nil {
		add(optionTop, func() { b.WriteString(strconv.Itoa(*item.Top)) })
	}
	if item.Count != nil {
		add(optionCount, func() { b.WriteString(strconv.FormatBool(*item.Count)) })
	}
	if item.Select != nil {
		add(optionSelect, func() { dumpSelect(b, item.Select) })
	}
	if item.Expand != nil {
		add(optionExpand, func() { dumpExpand(b, item.Expand) })
	}
	if len(opts) == 0 {
		return
	}
	b.WriteString("(")
	for i, o := range opts {
		if i > 0 {
			b.WriteString(";")
		}
		o()
	}
	b.WriteString(")")
}
