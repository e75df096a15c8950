/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/odata/pkg/edm"
	"github.com/voedger/odata/pkg/uritoken"
)

func TestParseKeyPredicate(t *testing.T) {
	p := testParser()

	tests := []struct {
		entity string
		text   string
		want   string
	}{
		{"Product", "5)", "(ID=5)"},
		{"Product", " 5 )", "(ID=5)"},
		{"Product", "ID=5)", "(ID=5)"},
		{"Product", "ID = 2147483647)", "(ID=2147483647)"},
		{"Device", "'SN-1')", "(Serial='SN-1')"},
		{"Order", "CustomerID=1,OrderNo=2)", "(CustomerID=1,OrderNo=2)"},
		{"Order", "OrderNo=2, CustomerID=1)", "(OrderNo=2,CustomerID=1)"},
		{"Report", "Year=2020)", "(Year=2020,Region='EU')"},
		{"Report", "Year=2020,Region='US')", "(Year=2020,Region='US')"},
	}

	for _, tt := range tests {
		t.Run(tt.entity+"("+tt.text, func(t *testing.T) {
			require := require.New(t)
			keys, err := p.ParseKeyPredicate(tt.text, testEntity(tt.entity), nil, nil)
			require.NoError(err)
			require.Equal(tt.want, DumpParameters(keys))
		})
	}

	t.Run("alias", func(t *testing.T) {
		require := require.New(t)
		keys, err := p.ParseKeyPredicate("@id)", testEntity("Product"), nil, Aliases{"@id": "5"})
		require.NoError(err)
		require.Equal("(ID=@id)", DumpParameters(keys))
		require.Equal("@id", keys[0].Alias)
		require.Equal(&Literal{Text: "5", Typ: edm.PrimitiveTypeOf(edm.PrimitiveKind_SByte)}, keys[0].Expression)
	})
}

func TestParseKeyPredicate_Errors(t *testing.T) {
	p := testParser()

	t.Run("semantic", func(t *testing.T) {
		tests := []struct {
			entity string
			text   string
			key    SemanticErrorKey
		}{
			{"Product", ")", SemanticErrorKey_KeyPredicate},
			{"Product", "ID=1,ID=2)", SemanticErrorKey_DuplicateParameter},
			{"Product", "ID=1,Name=2)", SemanticErrorKey_KeyPredicate},
			{"Product", "Foo=1)", SemanticErrorKey_KeyPredicate},
			{"Product", "3000000000)", SemanticErrorKey_KeyPredicate},
			{"Report", "2020)", SemanticErrorKey_KeyPredicate},
			{"Order", "OrderNo=1)", SemanticErrorKey_KeyPredicate},
		}
		for _, tt := range tests {
			t.Run(tt.entity+"("+tt.text, func(t *testing.T) {
				_, err := p.ParseKeyPredicate(tt.text, testEntity(tt.entity), nil, nil)
				requireSemantic(t, err, tt.key)
			})
		}
	})

	t.Run("syntax", func(t *testing.T) {
		for _, text := range []string{"'a')", "5", "ID=)", "5) x"} {
			t.Run(text, func(t *testing.T) {
				_, err := p.ParseKeyPredicate(text, testEntity("Product"), nil, nil)
				require.ErrorIs(t, err, ErrSyntax)
			})
		}
	})

	t.Run("alias", func(t *testing.T) {
		for name, aliases := range map[string]Aliases{
			"undefined":    nil,
			"null":         {"@id": "null"},
			"incompatible": {"@id": "'x'"},
			"self":         {"@id": "@id"},
		} {
			t.Run(name, func(t *testing.T) {
				_, err := p.ParseKeyPredicate("@id)", testEntity("Product"), nil, aliases)
				requireSemantic(t, err, SemanticErrorKey_AliasValue)
			})
		}
	})
}

func TestParseNavigationKeyPredicate(t *testing.T) {
	p := testParser()
	orders := testNavigation("Customer", "Orders")

	t.Run("key covered by partner constraint may be omitted", func(t *testing.T) {
		require := require.New(t)
		tok, err := uritoken.New("(5)")
		require.NoError(err)
		keys, err := p.ParseNavigationKeyPredicate(tok, orders, nil)
		require.NoError(err)
		require.Equal("(OrderNo=5,CustomerID=ref(ID))", DumpParameters(keys))
		require.Equal("ID", keys[1].ReferencedProperty)
		require.True(tok.Next(uritoken.Kind_EOF))
	})

	t.Run("full key", func(t *testing.T) {
		require := require.New(t)
		tok, err := uritoken.New("(CustomerID=1,OrderNo=2)/Total")
		require.NoError(err)
		keys, err := p.ParseNavigationKeyPredicate(tok, orders, nil)
		require.NoError(err)
		require.Equal("(CustomerID=1,OrderNo=2)", DumpParameters(keys))
		require.True(tok.Next(uritoken.Kind_Slash))
	})

	t.Run("no key predicate", func(t *testing.T) {
		require := require.New(t)
		tok, err := uritoken.New("/$count")
		require.NoError(err)
		keys, err := p.ParseNavigationKeyPredicate(tok, orders, nil)
		require.NoError(err)
		require.Nil(keys)
		require.True(tok.Next(uritoken.Kind_Slash))
	})

	t.Run("single-valued navigation", func(t *testing.T) {
		require := require.New(t)
		tok, err := uritoken.New("(1)")
		require.NoError(err)
		keys, err := p.ParseNavigationKeyPredicate(tok, testNavigation("Order", "Customer"), nil)
		require.NoError(err)
		require.Nil(keys)
		require.True(tok.Next(uritoken.Kind_Open))
	})

	t.Run("single-valued navigation is resolved without key", func(t *testing.T) {
		require := require.New(t)
		opt, err := p.ParseFilter("Customer/Name eq 'x'", testEntity("Order"), nil, nil)
		require.NoError(err)
		require.Equal("([Customer/Name] eq 'x':Edm.String)", Dump(opt.Expression))
	})

	t.Run("key in member path", func(t *testing.T) {
		require := require.New(t)
		opt, err := p.ParseFilter("Orders(7)/Total gt 1", testEntity("Customer"), nil, nil)
		require.NoError(err)
		require.Equal("([Orders(OrderNo=7,CustomerID=ref(ID))/Total] gt 1:Edm.SByte)", Dump(opt.Expression))
	})
}

func TestParseKeyAsSegment(t *testing.T) {
	p := testParser()

	tests := []struct {
		entity  string
		segment string
		want    string
	}{
		{"Product", "5", "5"},
		{"Device", "SN-1", "'SN-1'"},
		{"Device", "O'Neil", "'O''Neil'"},
		{"Device", "'quoted'", "'quoted'"},
	}
	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			require := require.New(t)
			key, err := p.ParseKeyAsSegment(tt.segment, testEntity(tt.entity))
			require.NoError(err)
			require.Equal(tt.want, key.Text)
		})
	}

	t.Run("compound key", func(t *testing.T) {
		_, err := p.ParseKeyAsSegment("1", testEntity("Order"))
		requireSemantic(t, err, SemanticErrorKey_KeyPredicate)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := p.ParseKeyAsSegment("x", testEntity("Product"))
		require.ErrorIs(t, err, ErrSyntax)
	})
}
