package batch

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	poerr "github.com/msto63/poutil/foundation/core/error"
	"github.com/msto63/poutil/foundation/utils/filex"
	"github.com/msto63/poutil/foundation/utils/pathx"
)

func newValidator(t *testing.T) *pathx.Validator {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(`C:\`, 0o755))
	return pathx.NewValidator(pathx.WithStorage(filex.NewStorage(fs)))
}

func TestGo(t *testing.T) {
	t.Parallel()

	task := Go(func() error { return nil })
	require.NoError(t, task.Wait())

	want := errors.New("boom")
	task = Go(func() error { return want })
	assert.ErrorIs(t, task.Wait(), want)
	// Wait is repeatable
	assert.ErrorIs(t, task.Wait(), want)
}

func TestGoRecoversPanic(t *testing.T) {
	t.Parallel()

	task := Go(func() error { panic("kaputt") })

	err := task.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaputt")
	assert.True(t, poerr.HasCode(err, poerr.CodeInternal))
}

func TestTaskWaitContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	task := Go(func() error {
		<-release
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, task.WaitContext(ctx), context.Canceled)

	close(release)
	select {
	case <-task.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("task did not finish")
	}
	assert.NoError(t, task.WaitContext(context.Background()))
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"dir", KindDirectory, true},
		{"directory", KindDirectory, true},
		{"file", KindFile, true},
		{"name", KindName, true},
		{"disk", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		assert.Equal(t, tt.want, got, "ParseKind(%q)", tt.in)
		assert.Equal(t, tt.ok, ok, "ParseKind(%q)", tt.in)
	}
}

func TestValidatePaths(t *testing.T) {
	t.Parallel()

	v := newValidator(t)
	r := NewRunner(2, nil)

	tests := []struct {
		kind  Kind
		input []string
		valid []bool
		codes []poerr.Code
	}{
		{
			kind:  KindDirectory,
			input: []string{`C:\Users`, `C:\\Users`, `D:\Users`, ""},
			valid: []bool{true, false, false, false},
			codes: []poerr.Code{"", poerr.CodePathEmptySegment, poerr.CodePathRootNotFound, poerr.CodePathEmpty},
		},
		{
			kind:  KindFile,
			input: []string{`C:\Users\a.txt`, `C:\Users\a,b.txt`},
			valid: []bool{true, false},
			codes: []poerr.Code{"", poerr.CodePathComma},
		},
		{
			kind:  KindName,
			input: []string{"a.txt", `a\b`, "a?b"},
			valid: []bool{true, false, false},
			codes: []poerr.Code{"", poerr.CodePathSeparator, poerr.CodePathReservedChar},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()

			results := r.ValidatePaths(context.Background(), v, tt.kind, tt.input)
			require.Len(t, results, len(tt.input))

			for i, res := range results {
				assert.Equal(t, tt.input[i], res.Input)
				assert.Equal(t, tt.kind, res.Kind)
				assert.Equal(t, tt.valid[i], res.Valid, "input %q", res.Input)
				assert.Equal(t, tt.codes[i], pathx.Reason(res.Err), "input %q", res.Input)
			}
		})
	}
}

func TestValidatePathsCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := NewRunner(1, nil).ValidatePaths(ctx, newValidator(t), KindName, []string{"a", "b", "c"})
	require.Len(t, results, 3)
	for _, res := range results {
		assert.False(t, res.Valid)
		assert.ErrorIs(t, res.Err, context.Canceled)
	}
}

func TestFormatValues(t *testing.T) {
	t.Parallel()

	values := []float64{3.14159, 3.1, math.NaN(), 12345.678}
	out, err := NewRunner(0, nil).FormatValues(context.Background(), values, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"   3.14", "   3.10", " NaN", "12345.68"}, out)
}

func TestMapRespectsLimit(t *testing.T) {
	t.Parallel()

	const limit = 3
	var running, peak atomic.Int32

	items := make([]int, 24)
	r := NewRunner(limit, nil)
	_, err := Map(context.Background(), r, items, func(int) string {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		running.Add(-1)
		return ""
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(limit))
	assert.Equal(t, limit, r.Limit())
	assert.Equal(t, -1, NewRunner(0, nil).Limit())
}

func TestMapCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	_, err := Map(ctx, NewRunner(2, nil), []int{1, 2, 3}, func(int) string {
		calls.Add(1)
		return ""
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())
}
