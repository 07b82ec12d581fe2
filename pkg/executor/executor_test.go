package executor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	exec := New()

	out, err := exec.Execute(context.Background(), "sh", "-c", "printf hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestExecuteIncludesStderr(t *testing.T) {
	exec := New()

	_, err := exec.Execute(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command 'sh' failed")
	assert.Contains(t, err.Error(), "stderr: boom")
}

func TestExecuteWithEnvOverrides(t *testing.T) {
	t.Setenv("CUDA_VISIBLE_DEVICES", "0")
	exec := New()

	out, err := exec.ExecuteWithEnv(context.Background(), []string{"CUDA_VISIBLE_DEVICES="},
		"sh", "-c", `printf "[%s]" "$CUDA_VISIBLE_DEVICES"`)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(out))
}

func TestLookPathMissing(t *testing.T) {
	_, err := New().LookPath("definitely-not-a-real-binary-xyz")
	assert.Error(t, err)
}
