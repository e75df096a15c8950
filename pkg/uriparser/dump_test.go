/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import (
	"strconv"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func dumpQueryOptions(qo *QueryOptions) string {
	var lines []string
	add := func(name, value string) { lines = append(lines, name+": "+value) }
	if qo.Filter != nil {
		add(optionFilter, Dump(qo.Filter.Expression))
	}
	if qo.Search != nil {
		add(optionSearch, Dump(qo.Search.Expression))
	}
	if qo.OrderBy != nil {
		add(optionOrderBy, DumpOrderBy(qo.OrderBy))
	}
	if qo.Select != nil {
		add(optionSelect, DumpSelect(qo.Select))
	}
	if qo.Expand != nil {
		add(optionExpand, DumpExpand(qo.Expand))
	}
	if qo.Top != nil {
		add(optionTop, strconv.Itoa(*qo.Top))
	}
	if qo.Skip != nil {
		add(optionSkip, strconv.Itoa(*qo.Skip))
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestDump_Golden(t *testing.T) {
	p := testParser()
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))

	tests := []struct {
		name    string
		entity  string
		options map[string]string
	}{
		{"products", "Product", map[string]string{
			"$filter":  "Price gt 10 and Name eq 'Widget'",
			"$orderby": "Name desc, Price",
			"$select":  "Name, Price ,ID",
			"$expand":  "Category($select=Name)",
			"$top":     "20",
		}},
		{"customer_orders", "Customer", map[string]string{
			"$filter": "Orders(7)/Total gt 1",
			"$expand": "Orders($filter=Total gt 100;$orderby=OrderNo desc;$top=5;$skip=2;$count=true)",
			"$search": "blue green OR red",
			"$skip":   "40",
		}},
		{"lambda_and_methods", "Product", map[string]string{
			"$filter":  "Tags/any(t: t eq 'new')",
			"$orderby": "length(Name) desc",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qo, err := p.ParseQueryOptions(tt.options, testEntity(tt.entity), true)
			require.NoError(t, err)
			g.Assert(t, tt.name, []byte(dumpQueryOptions(qo)))
		})
	}
}
