// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/faultsort/pkg/util/humanizeutil"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const reportMetricPrefix = "faultsort_recovery_"

// renderReport writes the counters and histograms gathered from g as a
// table, one row per metric and label combination.
func renderReport(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"metric", "variant", "reason", "value"})
	table.SetAutoFormatHeaders(false)
	for _, mf := range families {
		name := strings.TrimPrefix(mf.GetName(), reportMetricPrefix)
		for _, m := range mf.GetMetric() {
			var value string
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				value = humanizeutil.Count(uint64(m.GetCounter().GetValue()))
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				value = humanizeutil.Count(h.GetSampleCount()) + " in " +
					humanizeutil.Duration(humanizeutil.Seconds(h.GetSampleSum()))
			default:
				continue
			}
			table.Append([]string{name, labelValue(m, "variant"), labelValue(m, "reason"), value})
		}
	}
	table.Render()
	return nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
