/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/odata/pkg/edm"
	"github.com/voedger/odata/pkg/edmschema"
	"github.com/voedger/odata/pkg/uritoken"
)

var testCatalog = sync.OnceValue(func() *edm.Catalog {
	p, err := edmschema.LoadFile("testdata/schema.yaml")
	if err != nil {
		panic(err)
	}
	return edm.NewCatalog(p, edm.NewDefaultCatalogParams())
})

func testEntity(name string) *edm.EntityType {
	et := testCatalog().EntityType(edm.NewQName("Demo", name))
	if et == nil {
		panic("entity type not found: " + name)
	}
	return et
}

func testNavigation(typeName, nav string) *edm.NavigationProperty {
	np := testEntity(typeName).NavigationProperty(nav)
	if np == nil {
		panic("navigation property not found: " + typeName + "." + nav)
	}
	return np
}

func testParser(ff ...Feature) *Parser {
	cfg := NewDefaultConfig()
	cfg.Features = FeaturesOf(ff...)
	return New(testCatalog(), cfg)
}

// Parses the whole text as an expression over referenced type
func parseExpr(p *Parser, text string, referenced edm.IType, aliases Aliases) (Expression, error) {
	tok, err := uritoken.New(text)
	if err != nil {
		return nil, err
	}
	e, err := p.ParseExpression(tok, referenced, nil, aliases)
	if err != nil {
		return nil, err
	}
	tok.Next(uritoken.Kind_BWS)
	if !tok.Next(uritoken.Kind_EOF) {
		return nil, &SyntaxError{Message: "unexpected input", Text: tok.Remaining(), Position: tok.Offset()}
	}
	return e, nil
}

func requireSemantic(t *testing.T, err error, key SemanticErrorKey) {
	t.Helper()
	require.ErrorIs(t, err, ErrSemantic)
	var se *SemanticError
	require.ErrorAs(t, err, &se)
	require.Equal(t, key, se.Key, err.Error())
}

func requireQueryOption(t *testing.T, err error, option, key string) *QueryOptionError {
	t.Helper()
	require.ErrorIs(t, err, ErrQueryOption)
	var qe *QueryOptionError
	require.ErrorAs(t, err, &qe)
	require.Equal(t, option, qe.Option, err.Error())
	require.Equal(t, key, qe.Key, err.Error())
	return qe
}

func requireUnsupported(t *testing.T, err error, f Feature) {
	t.Helper()
	require.ErrorIs(t, err, ErrUnsupported)
	var ue *UnsupportedError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, f, ue.Feature, err.Error())
}
