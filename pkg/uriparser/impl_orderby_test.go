/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseOrderBy(t *testing.T) {
	p := testParser()
	product := testEntity("Product")

	tests := []struct {
		orderBy string
		want    string
	}{
		{"Name", "[Name]"},
		{"Name asc", "[Name]"},
		{"Name desc, Price", "[Name] desc, [Price]"},
		{"Category/Name desc,Price asc", "[Category/Name] desc, [Price]"},
		{"Color", "[Color]"},
		{"length(Name) desc", "length([Name]) desc"},
		{"Price mul 2", "([Price] mul 2:Edm.SByte)"},
	}

	for _, tt := range tests {
		t.Run(tt.orderBy, func(t *testing.T) {
			require := require.New(t)
			opt, err := p.ParseOrderBy(tt.orderBy, product, nil, nil)
			require.NoError(err)
			require.Equal(tt.want, DumpOrderBy(opt))
		})
	}

	t.Run("descending flag", func(t *testing.T) {
		require := require.New(t)
		opt, err := p.ParseOrderBy("Name desc, Price", product, nil, nil)
		require.NoError(err)
		require.Len(opt.Items, 2)
		require.True(opt.Items[0].Descending)
		require.False(opt.Items[1].Descending)
	})
}

func TestParseOrderBy_Errors(t *testing.T) {
	p := testParser()
	product := testEntity("Product")

	t.Run("not sortable type", func(t *testing.T) {
		require := require.New(t)
		_, err := p.ParseOrderBy("Location", product, nil, nil)
		qe := requireQueryOption(t, err, "$orderby", MsgNotSortableType)
		require.Equal([]any{"Edm.GeographyPoint"}, qe.Args)
		require.Equal("expression of type «Edm.GeographyPoint» is not sortable", qe.Localize(language.English))
		require.Equal("Ausdruck vom Typ «Edm.GeographyPoint» ist nicht sortierbar", qe.Localize(language.German))
	})

	t.Run("complex type", func(t *testing.T) {
		_, err := p.ParseOrderBy("Address", product, nil, nil)
		requireQueryOption(t, err, "$orderby", MsgNotSortableType)
	})

	t.Run("collection", func(t *testing.T) {
		_, err := p.ParseOrderBy("Tags", product, nil, nil)
		requireQueryOption(t, err, "$orderby", MsgNotSortableCollection)
	})

	t.Run("syntax", func(t *testing.T) {
		for _, orderBy := range []string{"", "Name,", "Name desc desc", "Name up"} {
			t.Run(orderBy, func(t *testing.T) {
				_, err := p.ParseOrderBy(orderBy, product, nil, nil)
				require.ErrorIs(t, err, ErrSyntax)
			})
		}
	})

	t.Run("unknown property", func(t *testing.T) {
		_, err := p.ParseOrderBy("Foo", product, nil, nil)
		requireSemantic(t, err, SemanticErrorKey_UnknownProperty)
	})
}
