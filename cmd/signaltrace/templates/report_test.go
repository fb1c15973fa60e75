package templates_test

import (
	"bytes"
	"testing"

	"github.com/delaneyj/signalhelpers/cmd/signaltrace/templates"
	"github.com/stretchr/testify/assert"
)

func TestTraceReportEscapesValues(t *testing.T) {
	rows := []templates.Row{
		{Scenario: "either-right", Instance: 1, Poll: 1, State: "ready", Value: "<b>"},
		{Scenario: "either-right", Instance: 1, Poll: 2, State: "done"},
	}
	html := templates.TraceReport("trace <all>", rows)

	assert.Contains(t, html, "<title>trace &lt;all&gt;</title>")
	assert.Contains(t, html, "<td>&lt;b&gt;</td>")
	assert.NotContains(t, html, "<td><b></td>")
	assert.Contains(t, html, "1 ready, 0 pending, 1 done")

	var buf bytes.Buffer
	templates.WriteTraceReport(&buf, "trace <all>", rows)
	assert.Equal(t, html, buf.String())
}

func TestSummary(t *testing.T) {
	ready, pending, done := templates.Summary([]templates.Row{
		{State: "ready"}, {State: "pending"}, {State: "ready"}, {State: "done"},
	})
	assert.Equal(t, 2, ready)
	assert.Equal(t, 1, pending)
	assert.Equal(t, 1, done)
}
