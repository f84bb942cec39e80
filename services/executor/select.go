package executor

import (
	"go-lakedb/pkg/datafile"
	"go-lakedb/services/plan"
)

func (es *ExecutorService) selectRows(p *plan.Select) (*Result, error) {
	rs, err := es.registry.ReadTable(p.Table, p.Columns, datafile.ReadOptions{
		AllowPartial: p.AllowPartial,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Kind:    plan.SELECT,
		Table:   p.Table,
		Columns: rs.Columns,
		Rows:    rs.Rows,
		Missing: rs.Missing,
	}, nil
}
