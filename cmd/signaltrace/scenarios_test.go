package main

import (
	"bytes"
	"testing"

	"github.com/delaneyj/signalhelpers/cmd/signaltrace/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statesOf(rows []templates.Row) []string {
	states := make([]string, len(rows))
	for i, r := range rows {
		states[i] = r.State + ":" + r.Value
	}
	return states
}

func TestScenarios(t *testing.T) {
	cases := map[string][]string{
		"default-const": {"ready:42", "done:"},
		"default-inner": {"ready:1", "pending:", "ready:2", "done:"},
		"option-none":   {"ready:None", "done:"},
		"option-some":   {"ready:Some(1)", "ready:Some(2)", "done:"},
		"either-left":   {"ready:empty", "done:"},
		"either-right":  {"ready:<b>", "ready:&", "done:"},
		"factory-box":   {"ready:7", "ready:8", "done:", "ready:7", "ready:8", "done:"},
		"factory-rc":    {"ready:true", "done:", "ready:true", "done:"},
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			rows, err := runScenarios(name, 8)
			require.NoError(t, err)
			assert.Equal(t, want, statesOf(rows))
			for _, r := range rows {
				assert.Equal(t, name, r.Scenario)
			}
		})
	}
	assert.Len(t, scenarios, len(cases))
}

func TestFactoryScenariosNumberInstances(t *testing.T) {
	rows, err := runScenarios("factory-rc", 8)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []int{1, 1, 2, 2}, []int{rows[0].Instance, rows[1].Instance, rows[2].Instance, rows[3].Instance})
	assert.Equal(t, []int{1, 2, 1, 2}, []int{rows[0].Poll, rows[1].Poll, rows[2].Poll, rows[3].Poll})
}

func TestScenarioPollLimit(t *testing.T) {
	rows, err := runScenarios("default-inner", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"ready:1", "pending:"}, statesOf(rows))
}

func TestRunAllScenarios(t *testing.T) {
	rows, err := runScenarios("all", 8)
	require.NoError(t, err)
	assert.Len(t, rows, 26)
	assert.Equal(t, "default-const", rows[0].Scenario)
	assert.Equal(t, "factory-rc", rows[len(rows)-1].Scenario)
}

func TestUnknownScenario(t *testing.T) {
	_, err := runScenarios("nope", 8)
	assert.ErrorIs(t, err, ErrUnknownScenario)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestRenderTable(t *testing.T) {
	rows, err := runScenarios("option-some", 8)
	require.NoError(t, err)

	var buf bytes.Buffer
	renderTable(&buf, rows)
	out := buf.String()
	assert.Contains(t, out, "SCENARIO")
	assert.Contains(t, out, "Some(2)")
	assert.Contains(t, out, "3rd")
}
