/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/odata/pkg/edm"
)

func TestParseSelect(t *testing.T) {
	p := testParser(Feature_TypeCast)
	product := testEntity("Product")

	tests := []struct {
		sel  string
		want string
	}{
		{"*", "*"},
		{"Name", "Name"},
		{"Name, Price ,ID", "Name, Price, ID"},
		{"Address/City", "Address/City"},
		{"Address", "Address"},
		{"Address/Demo.PostalAddress/Zip", "Address/Demo.PostalAddress/Zip"},
		{"Category", "Category"},
		{"Demo.Rate", "Demo.Rate"},
		{"Demo.Discounted", "Demo.Discounted()"},
		{"Demo.Discounted(percent)", "Demo.Discounted()"},
		{"Demo.*", "Demo.*"},
		{"D.*", "Demo.*"},
		{"Demo.SpecialProduct/Bonus", "Demo.SpecialProduct/Bonus"},
		{"Name,Address/City,Category,Demo.Rate,Demo.*,*", "Name, Address/City, Category, Demo.Rate, Demo.*, *"},
	}

	for _, tt := range tests {
		t.Run(tt.sel, func(t *testing.T) {
			require := require.New(t)
			opt, err := p.ParseSelect(tt.sel, product, false)
			require.NoError(err)
			require.Equal(tt.want, DumpSelect(opt))
		})
	}

	t.Run("all operations in schema", func(t *testing.T) {
		require := require.New(t)
		opt, err := p.ParseSelect("D.*", product, false)
		require.NoError(err)
		require.Equal(edm.NewQName("Demo", "*"), opt.Items[0].AllOperationsInSchema)
	})

	t.Run("operation bound to base type", func(t *testing.T) {
		require := require.New(t)
		opt, err := p.ParseSelect("Demo.Rate", testEntity("SpecialProduct"), false)
		require.NoError(err)
		require.Equal(ResourceKind_Action, opt.Items[0].Resources[0].Kind())
	})

	t.Run("collection bound function", func(t *testing.T) {
		require := require.New(t)
		opt, err := p.ParseSelect("Demo.Cheapest", product, true)
		require.NoError(err)
		require.Equal("Demo.Cheapest()", DumpSelect(opt))

		_, err = p.ParseSelect("Demo.Cheapest", product, false)
		requireSemantic(t, err, SemanticErrorKey_UnknownFunction)
	})
}

func TestParseSelect_Errors(t *testing.T) {
	product := testEntity("Product")

	t.Run("type cast is gated", func(t *testing.T) {
		_, err := testParser().ParseSelect("Demo.SpecialProduct/Bonus", product, false)
		requireUnsupported(t, err, Feature_TypeCast)
	})

	p := testParser(Feature_TypeCast)

	tests := []struct {
		sel string
		key SemanticErrorKey
	}{
		{"Foo", SemanticErrorKey_UnknownProperty},
		{"Address/Foo", SemanticErrorKey_UnknownProperty},
		{"Nothing.*", SemanticErrorKey_UnknownNamespace},
		{"Demo.Nothing", SemanticErrorKey_UnknownFunction},
		{"Demo.Discounted(count)", SemanticErrorKey_UnknownFunction},
		{"Demo.Category/Name", SemanticErrorKey_IncompatibleTypes},
		{"Address/Demo.Nothing/Zip", SemanticErrorKey_UnknownType},
	}
	for _, tt := range tests {
		t.Run(tt.sel, func(t *testing.T) {
			_, err := p.ParseSelect(tt.sel, product, false)
			requireSemantic(t, err, tt.key)
		})
	}

	t.Run("syntax", func(t *testing.T) {
		for _, sel := range []string{"", "Name,", "Name Price", "Address/", "Demo.SpecialProduct"} {
			t.Run(sel, func(t *testing.T) {
				_, err := p.ParseSelect(sel, product, false)
				require.ErrorIs(t, err, ErrSyntax)
			})
		}
	})
}
