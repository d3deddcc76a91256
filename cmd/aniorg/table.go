package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"aniorg/internal/preflight"
	"aniorg/internal/workflow"
)

func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func renderFailureTable(failures []workflow.Failure) string {
	rows := make([][]string, 0, len(failures))
	for _, f := range failures {
		msg := ""
		if f.Err != nil {
			msg = f.Err.Error()
		}
		rows = append(rows, []string{f.Path, f.Kind, msg})
	}
	return renderTable([]string{"Path", "Kind", "Error"}, rows)
}

func renderCheckTable(results []preflight.Result, colorize bool) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		kind := statusOK
		if !r.Passed {
			kind = statusError
		}
		rows = append(rows, []string{r.Name, statusLabel(kind, colorize), r.Detail})
	}
	return renderTable([]string{"Check", "Status", "Detail"}, rows)
}
