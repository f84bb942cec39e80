// Package executor dispatches plans to the table registry.
package executor

import (
	"go-lakedb/pkg/customerrors"
	"go-lakedb/services/plan"
	"go-lakedb/services/registry"
	"go-lakedb/util/logger"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ExecutorService struct {
	registry *registry.Registry
}

func New(reg *registry.Registry) *ExecutorService {
	return &ExecutorService{registry: reg}
}

// Exec runs p and returns its result. Failures are returned as errors
// classified by the sentinels in customerrors.
func (es *ExecutorService) Exec(p plan.Plan) (*Result, error) {
	if p == nil {
		return nil, errors.Wrap(customerrors.ErrUnsupportedOperation, "nil plan")
	}

	log := logger.L.WithFields(logrus.Fields{
		"kind":  p.Kind(),
		"table": p.TableName(),
	})
	log.Debug("executing plan")

	var (
		res *Result
		err error
	)
	switch q := p.(type) {
	case *plan.Create:
		res, err = es.create(q)
	case *plan.Insert:
		res, err = es.insert(q)
	case *plan.Select:
		res, err = es.selectRows(q)
	default:
		err = errors.Wrapf(customerrors.ErrUnsupportedOperation, "'%s'", p.Kind())
	}

	if err != nil {
		log.WithError(err).Debug("plan failed")
		return nil, err
	}
	return res, nil
}
