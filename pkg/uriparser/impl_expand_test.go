/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseExpand(t *testing.T) {
	p := testParser()

	tests := []struct {
		referenced string
		expand     string
		want       string
	}{
		{"Product", "Category", "Category"},
		{"Product", "Category($select=Name)", "Category($select=Name)"},
		{"Product", "Category($filter=Name eq 'Tools')", "Category($filter=([Name] eq 'Tools':Edm.String))"},
		{"Category", "Products,Parent", "Products, Parent"},
		{"Customer",
			"Orders($filter=Total gt 100;$orderby=OrderNo desc;$top=5;$skip=2;$count=true)",
			"Orders($filter=([Total] gt 100:Edm.SByte);$orderby=[OrderNo] desc;$skip=2;$top=5;$count=true)"},
		{"Customer", "Orders( $top = 1 )", "Orders($top=1)"},
		{"Customer", "Orders($expand=Customer($select=Name))", "Orders($expand=Customer($select=Name))"},
		{"Customer", "Orders/$count", "Orders/$count"},
		{"Customer", "Orders/$count($filter=Total gt 5)", "Orders/$count($filter=([Total] gt 5:Edm.SByte))"},
		{"Customer", `Orders($search="blue green";$top=1)`, "Orders($search=blue green;$top=1)"},
		{"Customer", "Orders($search=blue OR green)", "Orders($search=(blue or green))"},
	}

	for _, tt := range tests {
		t.Run(tt.expand, func(t *testing.T) {
			require := require.New(t)
			opt, err := p.ParseExpand(tt.expand, testEntity(tt.referenced), nil)
			require.NoError(err)
			require.Equal(tt.want, DumpExpand(opt))
		})
	}

	t.Run("nested options are resolved against navigation target", func(t *testing.T) {
		require := require.New(t)
		opt, err := p.ParseExpand("Orders($top=5;$count=false)", testEntity("Customer"), nil)
		require.NoError(err)
		item := opt.Items[0]
		require.Equal(5, *item.Top)
		require.False(*item.Count)
		require.Nil(item.Skip)
		require.Nil(item.Filter)
	})

	t.Run("alias in nested filter", func(t *testing.T) {
		require := require.New(t)
		opt, err := p.ParseExpand("Orders($filter=Total gt @min)", testEntity("Customer"), Aliases{"@min": "10"})
		require.NoError(err)
		require.Equal("Orders($filter=([Total] gt @min=10:Edm.SByte))", DumpExpand(opt))
	})
}

func TestParseExpand_Features(t *testing.T) {
	customer := testEntity("Customer")

	t.Run("$ref", func(t *testing.T) {
		_, err := testParser().ParseExpand("Orders/$ref", customer, nil)
		requireUnsupported(t, err, Feature_ExpandRef)

		require := require.New(t)
		opt, err := testParser(Feature_ExpandRef).ParseExpand("Orders/$ref($filter=Total gt 1;$top=2)", customer, nil)
		require.NoError(err)
		require.True(opt.Items[0].Ref)
		require.Equal("Orders/$ref($filter=([Total] gt 1:Edm.SByte);$top=2)", DumpExpand(opt))

		opt, err = testParser(Feature_ExpandRef).ParseExpand("*/$ref", customer, nil)
		require.NoError(err)
		require.Equal("*/$ref", DumpExpand(opt))
	})

	t.Run("$levels", func(t *testing.T) {
		category := testEntity("Category")
		_, err := testParser().ParseExpand("Children($levels=2)", category, nil)
		requireUnsupported(t, err, Feature_Levels)

		require := require.New(t)
		p := testParser(Feature_Levels)
		opt, err := p.ParseExpand("Children($levels=2),Parent($levels=max)", category, nil)
		require.NoError(err)
		require.Equal(&Levels{Value: 2}, opt.Items[0].Levels)
		require.Equal(&Levels{Max: true}, opt.Items[1].Levels)
		require.Equal("Children($levels=2), Parent($levels=max)", DumpExpand(opt))

		opt, err = p.ParseExpand("*($levels=3)", category, nil)
		require.NoError(err)
		require.Equal("*($levels=3)", DumpExpand(opt))

		_, err = p.ParseExpand("Products($levels=max)", category, nil)
		qe := requireQueryOption(t, err, "$levels", MsgNotCyclic)
		require.Equal([]any{"Products"}, qe.Args)
	})

	t.Run("type cast", func(t *testing.T) {
		product := testEntity("Product")
		_, err := testParser().ParseExpand("Demo.SpecialProduct/Category", product, nil)
		requireUnsupported(t, err, Feature_TypeCast)

		require := require.New(t)
		opt, err := testParser(Feature_TypeCast).ParseExpand("Demo.SpecialProduct/Category,Category", product, nil)
		require.NoError(err)
		require.Equal("Demo.SpecialProduct/Category, Category", DumpExpand(opt))
	})
}

func TestParseExpand_Errors(t *testing.T) {
	p := testParser(Feature_ExpandRef, Feature_Levels)
	product := testEntity("Product")
	customer := testEntity("Customer")

	t.Run("duplicate path", func(t *testing.T) {
		require := require.New(t)
		_, err := p.ParseExpand("Category,Category", product, nil)
		require.ErrorIs(err, ErrSyntax)

		_, err = p.ParseExpand("Orders,Orders($top=1)", customer, nil)
		require.ErrorIs(err, ErrSyntax)

		_, err = p.ParseExpand("Orders/$count,Orders", customer, nil)
		require.ErrorIs(err, ErrSyntax)
	})

	t.Run("duplicate option", func(t *testing.T) {
		_, err := p.ParseExpand("Orders($top=1;$top=2)", customer, nil)
		require.ErrorIs(t, err, ErrSyntax)
	})

	t.Run("options not allowed", func(t *testing.T) {
		tests := []struct {
			referenced string
			expand     string
			option     string
			key        string
		}{
			{"Product", "Category($top=1)", "$top", MsgNotAllowedForSingle},
			{"Product", "Category($orderby=Name)", "$orderby", MsgNotAllowedForSingle},
			{"Product", "Category($count=true)", "$count", MsgNotAllowedForSingle},
			{"Customer", "Orders/$ref($select=OrderNo)", "$select", MsgNotAllowedForRef},
			{"Customer", "Orders/$ref($expand=Customer)", "$expand", MsgNotAllowedForRef},
			{"Customer", "Orders/$count($top=1)", "$top", MsgNotAllowedForCount},
			{"Customer", "Orders($top=-1)", "$top", MsgNotNonNegativeInteger},
			{"Customer", "Orders($skip=x)", "$skip", MsgNotNonNegativeInteger},
			{"Customer", "Orders($count=yes)", "$count", MsgNotBoolean},
		}
		for _, tt := range tests {
			t.Run(tt.expand, func(t *testing.T) {
				_, err := p.ParseExpand(tt.expand, testEntity(tt.referenced), nil)
				requireQueryOption(t, err, tt.option, tt.key)
			})
		}
	})

	t.Run("single-valued navigation message", func(t *testing.T) {
		_, err := p.ParseExpand("Category($top=1)", product, nil)
		qe := requireQueryOption(t, err, "$top", MsgNotAllowedForSingle)
		require.Equal(t, "option is not allowed for single-valued target «Category»", qe.Localize(language.English))
	})

	t.Run("semantic", func(t *testing.T) {
		tests := []struct {
			expand string
			key    SemanticErrorKey
		}{
			{"Name", SemanticErrorKey_UnknownProperty},
			{"Foo", SemanticErrorKey_UnknownProperty},
			{"Category($select=Foo)", SemanticErrorKey_UnknownProperty},
			{"Category($filter=Name)", SemanticErrorKey_IncompatibleTypes},
			{"Demo.Nothing/Category", SemanticErrorKey_UnknownType},
		}
		for _, tt := range tests {
			t.Run(tt.expand, func(t *testing.T) {
				_, err := p.ParseExpand(tt.expand, product, nil)
				requireSemantic(t, err, tt.key)
			})
		}
	})

	t.Run("syntax", func(t *testing.T) {
		for _, expand := range []string{"", "Category(", "Category()", "Category($select)", "Category/", "Category($foo=1)"} {
			t.Run(expand, func(t *testing.T) {
				_, err := p.ParseExpand(expand, product, nil)
				require.ErrorIs(t, err, ErrSyntax)
			})
		}
	})
}
