package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	name  string
	err   error
	calls *[]string
}

func (r recordingWriter) WriteText(string) error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestNew(t *testing.T) {
	tests := []struct {
		backend string
		want    interface{}
		wantErr bool
	}{
		{backend: "", want: &Fallback{}},
		{backend: "auto", want: &Fallback{}},
		{backend: "SYSTEM", want: &System{}},
		{backend: "osc52", want: &OSC52{}},
		{backend: "pigeon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			w, err := New(tt.backend, &bytes.Buffer{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, w)
		})
	}
}

func TestSystem_WriteText(t *testing.T) {
	t.Run("unsupported platform", func(t *testing.T) {
		s := &System{unsupported: func() bool { return true }}
		err := s.WriteText("x")
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("write error", func(t *testing.T) {
		s := &System{
			unsupported: func() bool { return false },
			write:       func(string) error { return errors.New("exit status 1") },
		}
		err := s.WriteText("x")
		assert.ErrorIs(t, err, ErrWriteFailed)
		assert.Contains(t, err.Error(), "exit status 1")
	})

	t.Run("success", func(t *testing.T) {
		var got string
		s := &System{
			unsupported: func() bool { return false },
			write:       func(text string) error { got = text; return nil },
		}
		require.NoError(t, s.WriteText("<a>\n\n</a>"))
		assert.Equal(t, "<a>\n\n</a>", got)
	})
}

func TestOSC52_WriteText(t *testing.T) {
	var buf bytes.Buffer
	o := &OSC52{Out: &buf}

	require.NoError(t, o.WriteText("<div>\n\n</div>"))
	assert.Contains(t, buf.String(), base64.StdEncoding.EncodeToString([]byte("<div>\n\n</div>")))
	assert.Contains(t, buf.String(), "]52;")

	assert.ErrorIs(t, (&OSC52{}).WriteText("x"), ErrUnavailable)
	assert.ErrorIs(t, (&OSC52{Out: failingWriter{}}).WriteText("x"), ErrWriteFailed)
}

func TestFallback_WriteText(t *testing.T) {
	var calls []string
	record := func(name string, err error) Writer {
		return recordingWriter{name: name, err: err, calls: &calls}
	}

	t.Run("primary succeeds", func(t *testing.T) {
		calls = nil
		f := &Fallback{Primary: record("primary", nil), Secondary: record("secondary", nil)}
		require.NoError(t, f.WriteText("x"))
		assert.Equal(t, []string{"primary"}, calls)
	})

	t.Run("primary unavailable", func(t *testing.T) {
		calls = nil
		f := &Fallback{Primary: record("primary", ErrUnavailable), Secondary: record("secondary", nil)}
		require.NoError(t, f.WriteText("x"))
		assert.Equal(t, []string{"primary", "secondary"}, calls)
	})

	t.Run("primary write failure is not retried", func(t *testing.T) {
		calls = nil
		var noticed error
		f := &Fallback{
			Primary:    record("primary", ErrWriteFailed),
			Secondary:  record("secondary", nil),
			OnFallback: func(err error) { noticed = err },
		}
		assert.ErrorIs(t, f.WriteText("x"), ErrWriteFailed)
		assert.Equal(t, []string{"primary"}, calls)
		assert.NoError(t, noticed)
	})

	t.Run("fallback notice", func(t *testing.T) {
		calls = nil
		var noticed error
		f := &Fallback{
			Primary:    record("primary", ErrUnavailable),
			Secondary:  record("secondary", nil),
			OnFallback: func(err error) { noticed = err },
		}
		require.NoError(t, f.WriteText("x"))
		assert.ErrorIs(t, noticed, ErrUnavailable)
	})
}

func TestNew_FallbackNotice(t *testing.T) {
	var noticed bool
	w, err := New(BackendAuto, &bytes.Buffer{}, WithFallbackNotice(func(error) { noticed = true }))
	require.NoError(t, err)

	f, ok := w.(*Fallback)
	require.True(t, ok)
	require.NotNil(t, f.OnFallback)
	f.OnFallback(ErrUnavailable)
	assert.True(t, noticed)
}
