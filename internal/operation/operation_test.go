package operation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingExecutor struct {
	calls []Descriptor
}

func (r *recordingExecutor) Run(ctx context.Context, desc Descriptor, fn func(ctx context.Context) error) error {
	r.calls = append(r.calls, desc)
	return fn(ctx)
}

func TestCall_ReturnsResultUnchanged(t *testing.T) {
	exec := &recordingExecutor{}
	desc := Descriptor{DisplayName: "Toolchain detection", ProgressDisplayName: "Detecting local java toolchains"}

	got, err := Call(context.Background(), exec, desc, func(context.Context) ([]string, error) {
		return []string{"/opt/jdk17"}, nil
	})

	require.NoError(t, err)
	require.Equal(t, []string{"/opt/jdk17"}, got)
	require.Equal(t, []Descriptor{desc}, exec.calls)
}

func TestCall_PropagatesError(t *testing.T) {
	boom := errors.New("boom")

	got, err := Call(context.Background(), Direct{}, Descriptor{}, func(context.Context) (int, error) {
		return 7, boom
	})

	require.ErrorIs(t, err, boom)
	require.Equal(t, 7, got)
}

func TestCall_NilExecutorRunsDirectly(t *testing.T) {
	ran := false
	_, err := Call(context.Background(), nil, Descriptor{DisplayName: "x"}, func(context.Context) (struct{}, error) {
		ran = true
		return struct{}{}, nil
	})

	require.NoError(t, err)
	require.True(t, ran)
}
