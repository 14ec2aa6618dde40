package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Submissions.WithLabelValues(SubmissionGraded).Inc()
	m.Rehydrations.WithLabelValues("legacy_list").Inc()
	m.StaleReferences.Add(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues(SubmissionGraded)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.StaleReferences))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["quizmaster_submissions_total"])
	assert.True(t, names["quizmaster_result_stale_references_total"])
}

func TestNew_SeparateRegistriesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
