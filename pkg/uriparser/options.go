/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import "github.com/voedger/odata/pkg/edm"

type FilterOption struct {
	Expression Expression
}

type OrderByOption struct {
	Items []*OrderByItem
}

type OrderByItem struct {
	Expression Expression
	Descending bool
}

type SelectOption struct {
	Items []*SelectItem
}

// Select item: «*», «Namespace.*» or path
type SelectItem struct {
	Star bool
	// «Namespace.*», name is «*»
	AllOperationsInSchema edm.QName
	// Leading type cast
	TypeFilter edm.IType
	Resources  []UriResource
}

type ExpandOption struct {
	Items []*ExpandItem
}

// Expand item with nested options. Options are nil if not specified
type ExpandItem struct {
	Star      bool
	Ref       bool
	CountPath bool
	// Leading type cast
	TypeFilter edm.IType
	Resources  []UriResource

	Levels  *Levels
	Filter  *FilterOption
	Select  *SelectOption
	OrderBy *OrderByOption
	Skip    *int
	Top     *int
	Count   *bool
	Search  *SearchOption
	Expand  *ExpandOption
}

// $levels value. Value is zero if Max
type Levels struct {
	Value int
	Max   bool
}

// $search expression of Binary, Unary and untyped Literal nodes
type SearchOption struct {
	Expression Expression
}

// Parsed system query options of request
type QueryOptions struct {
	Select    *SelectOption
	Expand    *ExpandOption
	Filter    *FilterOption
	OrderBy   *OrderByOption
	Search    *SearchOption
	Top       *int
	Skip      *int
	Count     *bool
	SkipToken string
	ID        string
	Format    string
	Aliases   Aliases
}

// $all or $crossjoin resource
type CollectionRoot struct {
	All       bool
	CrossJoin []string
}
