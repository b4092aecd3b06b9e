package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestRecordSuccess(t *testing.T) {
	before := counterValue(t, CalculationsTotal.WithLabelValues("ok"))
	RecordSuccess(5, time.Millisecond)
	assert.Equal(t, before+1, counterValue(t, CalculationsTotal.WithLabelValues("ok")))
}

func TestRecordRejection(t *testing.T) {
	before := counterValue(t, CalculationErrors.WithLabelValues("IncompleteData"))
	rejected := counterValue(t, CalculationsTotal.WithLabelValues("rejected"))

	RecordRejection("IncompleteData", time.Millisecond)

	assert.Equal(t, before+1, counterValue(t, CalculationErrors.WithLabelValues("IncompleteData")))
	assert.Equal(t, rejected+1, counterValue(t, CalculationsTotal.WithLabelValues("rejected")))
}

func TestRecordRejectionUnknownKind(t *testing.T) {
	before := counterValue(t, CalculationErrors.WithLabelValues("unknown"))
	RecordRejection("", time.Millisecond)
	assert.Equal(t, before+1, counterValue(t, CalculationErrors.WithLabelValues("unknown")))
}
