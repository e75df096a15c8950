/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/voedger/odata/pkg/uriparser"
)

// Prints parsed options one per line, «$name: dump»
func printQueryOptions(w io.Writer, qo *uriparser.QueryOptions) {
	line := func(name, value string) { fmt.Fprintln(w, name+outputSep+value) }

	if qo.Filter != nil {
		line("$filter", uriparser.Dump(qo.Filter.Expression))
	}
	if qo.Search != nil {
		line("$search", uriparser.Dump(qo.Search.Expression))
	}
	if qo.OrderBy != nil {
		line("$orderby", uriparser.DumpOrderBy(qo.OrderBy))
	}
	if qo.Select != nil {
		line("$select", uriparser.DumpSelect(qo.Select))
	}
	if qo.Expand != nil {
		line("$expand", uriparser.DumpExpand(qo.Expand))
	}
	if qo.Top != nil {
		line("$top", strconv.Itoa(*qo.Top))
	}
	if qo.Skip != nil {
		line("$skip", strconv.Itoa(*qo.Skip))
	}
	if qo.Count != nil {
		line("$count", strconv.FormatBool(*qo.Count))
	}
	if qo.SkipToken != "" {
		line("$skiptoken", qo.SkipToken)
	}
	if qo.Format != "" {
		line("$format", qo.Format)
	}
}

// Prints gathered counters and histogram sample counts, «name{label=value,...} value»
func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			name := mf.GetName() + "{" + strings.Join(labels, ",") + "}"
			switch {
			case m.GetCounter() != nil:
				lines = append(lines, name+" "+strconv.FormatFloat(m.GetCounter().GetValue(), 'f', -1, 64))
			case m.GetHistogram() != nil:
				lines = append(lines, name+" "+strconv.FormatUint(m.GetHistogram().GetSampleCount(), 10))
			}
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	return nil
}
