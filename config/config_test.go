// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audsrc/audio"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "audsrc.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()
	if c.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", c.LogLevel)
	}

	suffix := ".so.1"
	if runtime.GOOS == "darwin" {
		suffix = ".dylib"
	}
	for _, lib := range []string{c.Libraries.Sndfile, c.Libraries.Wavpack} {
		if !strings.HasSuffix(lib, suffix) {
			t.Errorf("library %q lacks %s", lib, suffix)
		}
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "libraries:\n  sndfile: /opt/lib/libsndfile.so\nlog_level: debug\n")

	t.Setenv(EnvSndfile, "")
	t.Setenv(EnvWavpack, "")
	t.Setenv(EnvLogLevel, "")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	want.Libraries.Sndfile = "/opt/lib/libsndfile.so"
	want.LogLevel = "debug"
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Env(t *testing.T) {
	path := writeConfig(t, "libraries:\n  sndfile: from-file.so\n  wavpack: from-file.so\n")

	t.Setenv(EnvSndfile, "")
	t.Setenv(EnvWavpack, "/env/libwavpack.so.1")
	t.Setenv(EnvLogLevel, "trace")

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	want := &Config{
		Libraries: Libraries{Sndfile: "from-file.so", Wavpack: "/env/libwavpack.so.1"},
		LogLevel:  "trace",
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() of a missing file error = %v, want fs.ErrNotExist", err)
	}

	if _, err := Load(writeConfig(t, "libraries: [not, a, map]\n")); err == nil {
		t.Error("Load() of a malformed file succeeded")
	}
}

func TestApply(t *testing.T) {
	old := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(old) })

	c := Default()
	c.LogLevel = "debug"
	if err := c.Apply(); err != nil {
		t.Fatal(err)
	}
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", logrus.GetLevel())
	}

	c.LogLevel = "chatty"
	if err := c.Apply(); err == nil {
		t.Error("Apply() accepted an unknown level")
	}
}

func TestModules_Registry(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c := &Config{Libraries: Libraries{
		Sndfile: filepath.Join(dir, "libsndfile.so.1"),
		Wavpack: filepath.Join(dir, "libwavpack.so.1"),
	}}

	mods := c.LoadModules()
	defer mods.Close()

	if mods.Sndfile.Loaded() || mods.Wavpack.Loaded() {
		t.Fatal("modules loaded from an empty directory")
	}

	r := mods.Registry()
	want := []string{"aiff", "flac", "mp3", "sndfile", "vorbis", "wav", "wavpack"}
	if diff := cmp.Diff(want, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	for _, name := range []string{"sndfile", "wavpack"} {
		src, err := r.Open(name, filepath.Join(dir, "x.wv"))
		if !errors.Is(err, audio.ErrBindingNotLoaded) {
			t.Errorf("Open(%q) error = %v, want ErrBindingNotLoaded", name, err)
		}
		if src != nil {
			t.Errorf("Open(%q) returned a non-nil reader on error", name)
		}
	}

	if _, err := r.Open("wav", filepath.Join(dir, "missing.wav")); err == nil {
		t.Error("Open(wav) of a missing file succeeded")
	}
}
