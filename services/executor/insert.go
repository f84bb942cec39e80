package executor

import (
	"go-lakedb/services/plan"
)

func (es *ExecutorService) insert(p *plan.Insert) (*Result, error) {
	fd, err := es.registry.AppendRows(p.Table, p.Columns, p.Rows)
	if err != nil {
		return nil, err
	}

	return &Result{
		Kind:     plan.INSERT,
		Table:    p.Table,
		Inserted: len(p.Rows),
		File:     fd,
	}, nil
}
