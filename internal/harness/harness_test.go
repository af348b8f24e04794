package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ItalyToGermany(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/italy-to-germany.yaml")
	require.NoError(t, err)

	snapshot, err := Run(scenario)
	require.NoError(t, err)

	assert.Equal(t, "italy-to-germany", snapshot.Scenario)
	assert.Equal(t, DefaultRequestID, snapshot.RequestID)
	assert.Equal(t, "approved", string(snapshot.Decision))
	assert.Equal(t, 0.85, snapshot.OverallConfidence)
	require.Len(t, snapshot.Alignments, 7)
	assert.Empty(t, snapshot.Unmatched)
	assert.Empty(t, snapshot.Warnings)

	assert.Equal(t, "familienname", snapshot.Alignments[0].Target)
	assert.Equal(t, "direct_map", snapshot.Alignments[0].Rule)
	assert.Equal(t, "Rossi", snapshot.Record["familienname"])
	assert.Equal(t, "1985-03-15", snapshot.Record["geburtsdatum"])
}

func TestRun_ReportsUnmatchedFields(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/unmatched-fields.yaml")
	require.NoError(t, err)

	snapshot, err := Run(scenario)
	require.NoError(t, err)

	assert.Equal(t, []string{"stato_civile"}, snapshot.Unmatched)
	assert.Nil(t, snapshot.Record)
}

func TestRun_ExpectationMismatch(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/italy-to-germany.yaml")
	require.NoError(t, err)

	scenario.Expect.Alignments[0].Target = "vorname"

	_, err = Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aligned to familienname, expected vorname")
}

func TestRun_DecisionMismatch(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/italy-to-germany.yaml")
	require.NoError(t, err)

	scenario.Expect.Decision = "needs_review"

	_, err = Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decision approved, expected needs_review")
}

func TestRun_ThresholdOverride(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/italy-to-germany.yaml")
	require.NoError(t, err)

	scenario.Threshold = 0.99
	scenario.Expect.Decision = "needs_review"

	snapshot, err := Run(scenario)
	require.NoError(t, err)
	assert.Equal(t, "needs_review", string(snapshot.Decision))
}
