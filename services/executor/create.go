package executor

import (
	"go-lakedb/services/plan"
)

func (es *ExecutorService) create(p *plan.Create) (*Result, error) {
	t, err := es.registry.CreateTable(p.Table, p.Schema())
	if err != nil {
		return nil, err
	}

	return &Result{
		Kind:    plan.CREATE,
		Table:   t.Name,
		Columns: t.Schema,
	}, nil
}
