package main

import (
	"bytes"
	"testing"

	"github.com/martinemde/dotgraph/dotparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintGraphSummaryDefaultShape(t *testing.T) {
	graph, err := dotparser.Parse([]byte(`digraph G { A; B [shape=box] }`))
	require.NoError(t, err)

	var buf bytes.Buffer
	printGraphSummary(&buf, graph)
	out := buf.String()

	// Nodes without an explicit shape report Graphviz's default.
	assert.Contains(t, out, "- A [A] (ellipse)")
	assert.Contains(t, out, "- B [B] (box)")
}

func TestPrintGraphSummaryStructure(t *testing.T) {
	graph, err := dotparser.Parse([]byte(`strict digraph Net {
	    rankdir=LR
	    A [label="Start"]
	    A -> B [label="next"]
	    subgraph cluster_0 { C }
	}`))
	require.NoError(t, err)

	var buf bytes.Buffer
	printGraphSummary(&buf, graph)
	out := buf.String()

	assert.Contains(t, out, `strict digraph "Net"`)
	assert.Contains(t, out, "Nodes: 2")
	assert.Contains(t, out, "rankdir = LR")
	assert.Contains(t, out, "- A [Start] (ellipse)")
	assert.Contains(t, out, "- A -> B [next]")
	assert.Contains(t, out, "+ subgraph cluster_0: 1 nodes, 0 edges")
}
