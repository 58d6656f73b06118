package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture drops an edge-list file into a test temp dir.
func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestDegreesCommand(t *testing.T) {
	path := writeFixture(t, "4 4\n1 2\n2 3\n3 1\n1 4\n")

	cmd := newDegreesCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "maximum outdegree is (2), first for vertex (1)")
	assert.Contains(t, out, "maximum indegree is (1), first for vertex (1)")
	assert.Contains(t, out, "2, 4, ", "successor run of the max-outdegree vertex")
}

func TestClassifyCommand_SingleVertex(t *testing.T) {
	path := writeFixture(t, "4 4\n1 2\n2 3\n3 1\n1 4\n")

	cmd := newClassifyCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{path, "3"})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "tree edges:")
	assert.Contains(t, out, "  (1 -> 2)")
	assert.Contains(t, out, "(3 -> 1) is a back edge")
}

func TestClassifyCommand_All(t *testing.T) {
	path := writeFixture(t, "4 4\n1 2\n2 3\n3 1\n1 4\n")

	cmd := newClassifyCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{path, "ALL"})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "classification of the outgoing edges of vertex (1)")
	assert.Contains(t, out, "classification of the outgoing edges of vertex (4)")
	assert.Contains(t, out, "(1 -> 4) is a tree edge")
}

func TestDegreesCommand_MissingFile(t *testing.T) {
	cmd := newDegreesCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.txt")})

	assert.Error(t, cmd.Execute())
}

func TestClassifyCommand_BadVertexArg(t *testing.T) {
	path := writeFixture(t, "2 1\n1 2\n")

	cmd := newClassifyCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{path, "banana"})

	assert.Error(t, cmd.Execute())
}
