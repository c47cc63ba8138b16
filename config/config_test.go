package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/ninja/shared/kinematics"
)

func TestDefaultPhysicsMatchesKinematics(t *testing.T) {
	assert.Equal(t, kinematics.DefaultParams(), Defaults().Physics.Params())
	assert.NoError(t, Defaults().Validate())
}

func TestParseOverlaysDefaults(t *testing.T) {
	f, err := Parse([]byte(`
physics:
  gravity: 2500
  jump_power_ms: 200
window:
  title: Test
input:
  bindings:
    jump:
      keys: [Space]
`))
	require.NoError(t, err)

	assert.Equal(t, 2500.0, f.Physics.Gravity)
	assert.Equal(t, 200.0, f.Physics.JumpPowerMs)
	assert.Equal(t, Physics.WalkSpeed, f.Physics.WalkSpeed, "unset fields keep defaults")
	assert.Equal(t, "Test", f.Window.Title)
	assert.Equal(t, C.Width, f.Window.Width)

	assert.Equal(t, []string{"Space"}, f.Input.Bindings[ActionJump].Keys)
	assert.Equal(t, Input.Bindings[ActionMoveLeft], f.Input.Bindings[ActionMoveLeft], "other bindings survive")
	assert.Equal(t, []string{"ArrowUp", "X", "W"}, Input.Bindings[ActionJump].Keys, "package bindings untouched")
}

func TestParseIgnoresUnknownFields(t *testing.T) {
	f, err := Parse([]byte("physics:\n  wobble: 3\nsound:\n  volume: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, Defaults().Physics, f.Physics)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"downward jump", "physics:\n  jump_launch: 100\n"},
		{"zero frame delta", "physics:\n  max_frame_delta: 0\n"},
		{"zero search radius", "physics:\n  search_radius: 0\n"},
		{"no window", "window:\n  width: 0\n"},
		{"unknown action", "input:\n  bindings:\n    fly:\n      keys: [F]\n"},
		{"not yaml", "physics: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Parse([]byte(tc.yaml))
			assert.Error(t, err)
			assert.Equal(t, Defaults().Physics, f.Physics)
		})
	}

	_, err := Parse([]byte("physics:\n  jump_launch: 100\n"))
	assert.ErrorIs(t, err, kinematics.ErrInvalidParams)
}

func TestLoadCustomPathMustExist(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	f, path, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Defaults().Physics, f.Physics)

	require.NoError(t, os.MkdirAll(filepath.Join(work, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, "configs", FileName), []byte("physics:\n  gravity: 1000\n"), 0o644))
	f, path, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("configs", FileName), path)
	assert.Equal(t, 1000.0, f.Physics.Gravity)

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".ninja"), 0o755))
	user := filepath.Join(home, ".ninja", FileName)
	require.NoError(t, os.WriteFile(user, []byte("physics:\n  gravity: 2000\n"), 0o644))
	f, path, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, user, path)
	assert.Equal(t, 2000.0, f.Physics.Gravity)

	custom := filepath.Join(work, "custom.yaml")
	require.NoError(t, os.WriteFile(custom, []byte("physics:\n  gravity: 4000\n"), 0o644))
	f, path, err = Load(custom)
	require.NoError(t, err)
	assert.Equal(t, custom, path)
	assert.Equal(t, 4000.0, f.Physics.Gravity)
}

func TestLoadBrokenFallbackIsAnError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	t.Chdir(work)
	require.NoError(t, os.MkdirAll(filepath.Join(work, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, "configs", FileName), []byte("physics: ["), 0o644))

	_, path, err := Load("")
	assert.Error(t, err)
	assert.Equal(t, filepath.Join("configs", FileName), path)
}

func TestApply(t *testing.T) {
	saved := Defaults()
	t.Cleanup(func() { Apply(saved) })

	f, err := Parse([]byte("physics:\n  run_speed: 900\ndebug:\n  overlay: true\n"))
	require.NoError(t, err)
	Apply(f)

	assert.Equal(t, 900.0, Physics.RunSpeed)
	assert.True(t, Debug.Overlay)
	assert.Equal(t, saved.Debug.SolidColor, Debug.SolidColor)
}

func TestMarshalParsesBack(t *testing.T) {
	data, err := Defaults().Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "move_left:")

	f, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), f)
}

func TestParseAction(t *testing.T) {
	id, err := ParseAction("move_right")
	require.NoError(t, err)
	assert.Equal(t, ActionMoveRight, id)

	_, err = ParseAction("none")
	assert.Error(t, err)
	assert.Equal(t, "action(42)", ActionID(42).String())
}

func TestSettingsSanitize(t *testing.T) {
	s := DefaultSettings()
	s.WindowScale = 1.8
	assert.Equal(t, 2.0, s.Sanitize().WindowScale)
	s.WindowScale = 0
	assert.Equal(t, 1.0, s.Sanitize().WindowScale)
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 1000\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 2000\n"), 0o644))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case r := <-w.Updates:
			require.NoError(t, r.Err)
			if r.File.Physics.Gravity == 2000 {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("watcher error: %v", err)
		case <-timeout:
			t.Fatal("no reload")
		}
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-w.Updates
	assert.False(t, ok)
}

func waitReload(t *testing.T, w *Watcher, timeout time.Duration) Reload {
	t.Helper()
	select {
	case r := <-w.Updates:
		return r
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(timeout):
		t.Fatal("no reload")
	}
	return Reload{}
}

func TestWatcherAppliesConsecutiveReloads(t *testing.T) {
	saved := Defaults()
	t.Cleanup(func() { Apply(saved) })

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 1500\n"), 0o644))
	var r Reload
	for Physics.Gravity != 1500 {
		r = waitReload(t, w, 5*time.Second)
		require.NoError(t, r.Err)
		Apply(r.File)
	}

	// The second file no longer sets gravity, so it goes back to the value
	// the watcher started with rather than the one applied above.
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  run_speed: 900\n"), 0o644))
	for {
		r = waitReload(t, w, 5*time.Second)
		require.NoError(t, r.Err)
		Apply(r.File)
		if Physics.RunSpeed == 900 {
			break
		}
	}
	assert.Equal(t, saved.Physics.Gravity, Physics.Gravity)
}

func TestWatcherReloadsWhileFileKeepsChanging(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(30 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				_ = os.WriteFile(path, []byte("physics:\n  gravity: 2000\n"), 0o644)
			}
		}
	}()
	defer func() {
		close(stop)
		<-done
	}()

	start := time.Now()
	waitReload(t, w, 3*time.Second)
	assert.Less(t, time.Since(start), 2*time.Second)
}
