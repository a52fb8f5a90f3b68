package cmd

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testImage = "example.test/theme-dev:test"

// useHost pins the host OS, working directory, home and environment seen by
// the invocation builder.
func useHost(t *testing.T, goos string, env map[string]string) (home, cwd string) {
	t.Helper()
	home = t.TempDir()
	cwd = t.TempDir()
	t.Setenv("HOME", home)

	origOS, origLookup, origGetwd := hostOS, lookupEnv, getwd
	hostOS = goos
	lookupEnv = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	getwd = func() (string, error) { return cwd, nil }
	t.Cleanup(func() {
		hostOS, lookupEnv, getwd = origOS, origLookup, origGetwd
	})
	return home, cwd
}

// recordSpawn replaces the process spawner and records its arguments.
func recordSpawn(t *testing.T, result error) *[][]string {
	t.Helper()
	var calls [][]string
	orig := Spawn
	Spawn = func(name string, args []string) error {
		calls = append(calls, append([]string{name}, args...))
		return result
	}
	t.Cleanup(func() { Spawn = orig })
	return &calls
}

func TestBuildDockerArgsLinux(t *testing.T) {
	home, cwd := useHost(t, "linux", map[string]string{
		"HOSTNET_API_TOKEN": "tok",
		"HOSTNET_API_URL":   "",
		"UNRELATED":         "x",
	})
	theme := filepath.Join(cwd, "my-theme")

	got, err := BuildDockerArgs(Invocation{
		Command:   "push",
		ThemePath: theme,
		Args:      []string{"--create", "--env", "staging"},
		Ports:     []PortMapping{{Host: "3000", Container: "4000"}},
		Env:       []EnvVar{Env("HOSTNET_THEME_NAME_FALLBACK", "My Theme"), {Name: "SKIPPED"}},
	}, testImage)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"run", "--rm",
		"--network", "host", "-e", "DOCKER_HOST_NETWORK=1",
		"-it",
		"-v", filepath.Join(home, ".hostnet.yml") + ":/root/.hostnet.yml",
		"-v", cwd + ":/workdir", "-w", "/workdir",
		"-v", theme + ":/theme",
		"-p", "3000:4000",
		"-e", "HOSTNET_THEME_NAME_FALLBACK=My Theme",
		"-e", "HOSTNET_API_TOKEN=tok",
		testImage, "push", "/theme",
		"--create", "--env", "staging",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}

	checkEmptyPrivateFile(t, filepath.Join(home, ".hostnet.yml"))
}

func TestBuildDockerArgsNonLinux(t *testing.T) {
	useHost(t, "darwin", nil)

	got, err := BuildDockerArgs(Invocation{Command: "auth", Args: []string{"--logout"}}, testImage)
	if err != nil {
		t.Fatal(err)
	}
	joined := strings.Join(got, " ")
	if !strings.Contains(joined, "--add-host=host.docker.internal:host-gateway") {
		t.Errorf("missing host-gateway alias: %v", got)
	}
	if strings.Contains(joined, "--network") || strings.Contains(joined, "DOCKER_HOST_NETWORK") {
		t.Errorf("host networking used on darwin: %v", got)
	}
	for _, a := range got {
		if a == containerTheme || strings.HasSuffix(a, ":"+containerTheme) {
			t.Errorf("theme mounted without a theme path: %v", got)
			break
		}
	}
	tail := got[len(got)-3:]
	if diff := cmp.Diff([]string{testImage, "auth", "--logout"}, tail); diff != "" {
		t.Errorf("tail mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDockerArgsNonInteractive(t *testing.T) {
	useHost(t, "linux", nil)

	got, err := BuildDockerArgs(Invocation{Command: "env", NonInteractive: true}, testImage)
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range got {
		if a == "-it" {
			t.Fatalf("-it present for non-interactive invocation: %v", got)
		}
	}
}

func TestBuildDockerArgsMinimal(t *testing.T) {
	home, _ := useHost(t, "linux", map[string]string{"HOSTNET_API_KEY": "k"})

	got, err := BuildDockerArgs(Invocation{
		Command:   "dev",
		ThemePath: "/src/theme",
		Ports:     []PortMapping{{Host: "4000", Container: "4000"}},
		Minimal:   true,
	}, testImage)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"run", "--rm", "-it",
		"-v", "/src/theme:/theme",
		"-p", "4000:4000",
		testImage, "dev", "/theme",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(filepath.Join(home, ".hostnet.yml")); !os.IsNotExist(err) {
		t.Errorf("minimal invocation touched the global config: %v", err)
	}
}

func TestRunDocker(t *testing.T) {
	useHost(t, "linux", nil)

	t.Run("success", func(t *testing.T) {
		calls := recordSpawn(t, nil)
		if err := RunDocker(Invocation{Command: "env", Args: []string{"list"}}, testImage); err != nil {
			t.Fatal(err)
		}
		if len(*calls) != 1 {
			t.Fatalf("Spawn called %d times, want 1", len(*calls))
		}
		call := (*calls)[0]
		if call[0] != "docker" || call[1] != "run" {
			t.Errorf("call = %v", call)
		}
		if last := call[len(call)-1]; last != "list" {
			t.Errorf("last arg = %q, want list", last)
		}
	})

	t.Run("exit code relayed", func(t *testing.T) {
		exitErr := exec.Command("sh", "-c", "exit 3").Run()
		recordSpawn(t, exitErr)

		err := RunDocker(Invocation{Command: "push"}, testImage)
		if !errors.Is(err, ErrContainerExit) {
			t.Fatalf("err = %v, want ErrContainerExit", err)
		}
		if code := ExitCode(err); code != 3 {
			t.Errorf("ExitCode = %d, want 3", code)
		}
	})

	t.Run("docker not found", func(t *testing.T) {
		notFound := exec.Command("hostnet-test-no-such-binary").Run()
		recordSpawn(t, notFound)

		err := RunDocker(Invocation{Command: "connect", ErrorContext: "run the tunnel client"}, testImage)
		if !errors.Is(err, ErrContainerRuntimeNotFound) {
			t.Fatalf("err = %v, want ErrContainerRuntimeNotFound", err)
		}
		var f *Failure
		if !errors.As(err, &f) {
			t.Fatal("not a *Failure")
		}
		details := strings.Join(f.Details, "\n")
		for _, want := range []string{"run the tunnel client", "https://docs.docker.com/get-docker/", "gem install hostnet-theme-dev"} {
			if !strings.Contains(details, want) {
				t.Errorf("details missing %q:\n%s", want, details)
			}
		}
		if ExitCode(err) != 1 {
			t.Errorf("ExitCode = %d, want 1", ExitCode(err))
		}
	})

	t.Run("other Spawn error", func(t *testing.T) {
		recordSpawn(t, errors.New("permission denied"))

		err := RunDocker(Invocation{Command: "auth"}, testImage)
		if !errors.Is(err, ErrContainerSpawn) {
			t.Fatalf("err = %v, want ErrContainerSpawn", err)
		}
		if !strings.Contains(err.Error(), "permission denied") {
			t.Errorf("err = %q, want the Spawn error message", err)
		}
	})
}

func TestPullImage(t *testing.T) {
	calls := recordSpawn(t, nil)
	if err := PullImage(testImage); err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"docker", "pull", testImage}}
	if diff := cmp.Diff(want, *calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}
