package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSolve_Enumerated(t *testing.T) {
	SolveRequestsTotal.Reset()
	before := testutil.ToFloat64(MovesEmittedTotal)

	RecordSolve(3, true, 7, 0.0001)

	assert.Equal(t, 1.0, testutil.ToFloat64(SolveRequestsTotal.WithLabelValues(ModeEnumerated)))
	assert.Equal(t, before+7, testutil.ToFloat64(MovesEmittedTotal))
	assert.Positive(t, testutil.CollectAndCount(SolveDuration))
}

func TestRecordSolve_CountOnly(t *testing.T) {
	SolveRequestsTotal.Reset()
	before := testutil.ToFloat64(MovesEmittedTotal)

	RecordSolve(1000, false, 0, 0.00001)

	assert.Equal(t, 1.0, testutil.ToFloat64(SolveRequestsTotal.WithLabelValues(ModeCountOnly)))
	assert.Equal(t, before, testutil.ToFloat64(MovesEmittedTotal))
}

func TestRecordRejected(t *testing.T) {
	SolveRequestsTotal.Reset()

	RecordRejected()
	RecordRejected()

	assert.Equal(t, 2.0, testutil.ToFloat64(SolveRequestsTotal.WithLabelValues(ModeRejected)))
}
