package session

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/stackb/inspect/pkg/testutil"
)

func TestBackendNames(t *testing.T) {
	if diff := cmp.Diff([]string{"starlark", "yaegi"}, BackendNames()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNew(t *testing.T) {
	for name, tc := range map[string]struct {
		backend string
		wantErr error
	}{
		"degenerate": {
			wantErr: errors.New(`session backend not found: "" (available: [starlark yaegi])`),
		},
		"unknown": {
			backend: "php",
			wantErr: errors.New(`session backend not found: "php" (available: [starlark yaegi])`),
		},
		"starlark": {backend: "starlark"},
		"yaegi":    {backend: "yaegi"},
	} {
		t.Run(name, func(t *testing.T) {
			sess, err := New(tc.backend)
			if testutil.ExpectError(t, tc.wantErr, err) {
				return
			}
			if diff := cmp.Diff(tc.backend, sess.Backend()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if sess.ID() == "" {
				t.Error("expected session id")
			}
		})
	}
}

func TestAddBackendDuplicate(t *testing.T) {
	r := &globalBackendRegistry{backends: make(map[string]Backend)}
	require.NoError(t, r.AddBackend(&starlarkBackend{}))
	err := r.AddBackend(&starlarkBackend{})
	testutil.ExpectError(t, errors.New(`duplicate session.Backend "starlark"`), err)
}
