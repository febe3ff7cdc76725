package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmr-tortoise/slurm-jupyter/internal/model"
)

// TestFormatServerLine verifies one output line carries the URL (with
// token) and the notebook directory, indented under the header.
func TestFormatServerLine(t *testing.T) {
	line := FormatServerLine(&model.NotebookServer{
		URL:         "http://x:8888/",
		Token:       "abc",
		NotebookDir: "/home/u",
	})

	assert.Equal(t, "    http://x:8888/?token=abc :: /home/u", line)
	assert.Contains(t, line, "http://x:8888/")
	assert.Contains(t, line, "abc")
	assert.Contains(t, line, "/home/u")
}

// TestFormatServerLine_NoToken verifies token-less servers render
// without a dangling query parameter.
func TestFormatServerLine_NoToken(t *testing.T) {
	line := FormatServerLine(&model.NotebookServer{
		URL:         "http://y:9999/",
		NotebookDir: "/srv",
	})
	assert.Equal(t, "    http://y:9999/ :: /srv", line)
}
