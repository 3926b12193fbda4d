package adapters

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemapCommand(t *testing.T) {
	root := "/work/mod"
	only := func(names ...string) func(string) bool {
		return func(path string) bool {
			for _, name := range names {
				if path == filepath.Join(root, name) {
					return true
				}
			}
			return false
		}
	}
	tests := []struct {
		name   string
		goos   string
		api    string
		exists func(string) bool
		want   []string
	}{
		{
			name:   "unix wrapper",
			goos:   "linux",
			api:    "fabric",
			exists: only("gradlew", "gradlew.bat"),
			want:   []string{"sh", "./gradlew", "migrateMappings", "--mappings", "1.16.5+build.5", "clean", "cleanLoom"},
		},
		{
			name:   "windows wrapper",
			goos:   "windows",
			api:    "fabric",
			exists: only("gradlew", "gradlew.bat"),
			want:   []string{"./gradlew.bat", "migrateMappings", "--mappings", "1.16.5+build.5", "clean", "cleanLoom"},
		},
		{
			name:   "windows without bat falls back to gradle",
			goos:   "windows",
			api:    "fabric",
			exists: only("gradlew"),
			want:   []string{"gradle", "migrateMappings", "--mappings", "1.16.5+build.5", "clean", "cleanLoom"},
		},
		{
			name:   "no wrapper and no loom",
			goos:   "darwin",
			api:    "",
			exists: only(),
			want:   []string{"gradle", "migrateMappings", "--mappings", "1.16.5+build.5", "clean"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := remapCommand(tt.goos, root, "1.16.5+build.5", tt.api, tt.exists)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGradleRemapperAdapter_Migrate(t *testing.T) {
	root := t.TempDir()
	var gotDir, gotName string
	var gotArgs []string
	adapter := GradleRemapperAdapter{
		GOOS: "linux",
		Run: func(_ context.Context, dir string, name string, args ...string) ([]byte, error) {
			gotDir, gotName, gotArgs = dir, name, args
			return []byte("BUILD SUCCESSFUL"), nil
		},
	}
	require.NoError(t, adapter.Migrate(t.Context(), root, "1.16.5+build.5", "fabric"))
	assert.Equal(t, root, gotDir)
	assert.Equal(t, "gradle", gotName)
	assert.Equal(t, []string{"migrateMappings", "--mappings", "1.16.5+build.5", "clean", "cleanLoom"}, gotArgs)
}

func TestGradleRemapperAdapter_MigrateFailure(t *testing.T) {
	adapter := GradleRemapperAdapter{
		GOOS: "linux",
		Run: func(context.Context, string, string, ...string) ([]byte, error) {
			return []byte("BUILD FAILED"), errors.New("exit status 1")
		},
	}
	err := adapter.Migrate(t.Context(), t.TempDir(), "m", "fabric")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "migrateMappings failed")
}

func TestGradleRemapperAdapter_MigrateRequiresMappings(t *testing.T) {
	adapter := GradleRemapperAdapter{GOOS: "linux"}
	err := adapter.Migrate(t.Context(), t.TempDir(), "", "fabric")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}
