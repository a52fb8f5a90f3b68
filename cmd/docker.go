package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

const (
	containerWorkdir = "/workdir"
	containerTheme   = "/theme"
	dockerBin        = "docker"
)

// ambientEnv is passed through to the container unchanged when set.
var ambientEnv = []string{
	"HOSTNET_API_KEY",
	"HOSTNET_API_TOKEN",
	"HOSTNET_API_URL",
	"HOSTNET_ACCOUNT_ID",
	"HOSTNET_SERVER_URL",
}

// Seams for tests. Spawn runs a process in the foreground.
var (
	hostOS    = runtime.GOOS
	lookupEnv = os.LookupEnv
	getwd     = os.Getwd
	Spawn     = spawnInherit
)

// PortMapping publishes Host on the host as Container inside the container.
type PortMapping struct {
	Host      string
	Container string
}

// EnvVar is an extra variable for the container. A nil Value is skipped.
type EnvVar struct {
	Name  string
	Value *string
}

// Env returns a defined EnvVar.
func Env(name, value string) EnvVar {
	return EnvVar{Name: name, Value: &value}
}

// Invocation describes one `docker run` of the theme-dev image.
type Invocation struct {
	// Command is the subcommand the container tool runs.
	Command string
	// ThemePath is the absolute host path mounted at /theme, if any.
	ThemePath string
	// Args are forwarded after the command in their original order.
	Args []string

	NonInteractive bool
	Ports          []PortMapping
	Env            []EnvVar

	// Minimal skips networking, the config and workdir mounts, and ambient
	// env passthrough. The offline dev server needs none of them.
	Minimal bool

	// ErrorContext completes "The hostnet CLI requires Docker to ...".
	ErrorContext string
}

// BuildDockerArgs assembles the argument list for `docker`. Unless the
// invocation is minimal it materializes the global config file first.
func BuildDockerArgs(inv Invocation, image string) ([]string, error) {
	args := []string{"run", "--rm"}

	if !inv.Minimal {
		if hostOS == "linux" {
			// Host networking makes localhost reach the host, so the tool must
			// not rewrite localhost URLs.
			args = append(args, "--network", "host", "-e", "DOCKER_HOST_NETWORK=1")
		} else {
			args = append(args, "--add-host=host.docker.internal:host-gateway")
		}
	}

	if !inv.NonInteractive {
		args = append(args, "-it")
	}

	if !inv.Minimal {
		configPath, err := EnsureGlobalConfig()
		if err != nil {
			return nil, err
		}
		cwd, err := getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		args = append(args,
			"-v", configPath+":"+containerGlobalConfig,
			"-v", cwd+":"+containerWorkdir,
			"-w", containerWorkdir)
	}

	if inv.ThemePath != "" {
		args = append(args, "-v", inv.ThemePath+":"+containerTheme)
	}

	for _, p := range inv.Ports {
		args = append(args, "-p", p.Host+":"+p.Container)
	}

	for _, e := range inv.Env {
		if e.Value == nil {
			continue
		}
		args = append(args, "-e", e.Name+"="+*e.Value)
	}

	if !inv.Minimal {
		for _, name := range ambientEnv {
			if v, ok := lookupEnv(name); ok && v != "" {
				args = append(args, "-e", name+"="+v)
			}
		}
	}

	args = append(args, image, inv.Command)
	if inv.ThemePath != "" {
		args = append(args, containerTheme)
	}
	args = append(args, inv.Args...)
	return args, nil
}

// RunDocker runs the invocation in the foreground and translates how the
// child ended into an error: nil for exit 0, *ExitStatusError otherwise.
func RunDocker(inv Invocation, image string) error {
	args, err := BuildDockerArgs(inv, image)
	if err != nil {
		return err
	}
	logger.Debug("docker invocation", "args", args)

	ctx := inv.ErrorContext
	if ctx == "" {
		ctx = "run " + inv.Command
	}
	return dockerError(Spawn(dockerBin, args), dockerNotFound(ctx))
}

// PullImage runs `docker pull` for image.
func PullImage(image string) error {
	logger.Debug("docker pull", "image", image)
	notFound := Fail(ErrContainerRuntimeNotFound, "Docker not found.",
		"Install Docker: https://docs.docker.com/get-docker/")
	return dockerError(Spawn(dockerBin, []string{"pull", image}), notFound)
}

func dockerNotFound(ctx string) *Failure {
	return Fail(ErrContainerRuntimeNotFound, "Docker not found.",
		"",
		"The hostnet CLI requires Docker to "+ctx+".",
		"Install Docker: https://docs.docker.com/get-docker/",
		"",
		"Alternatively, install the Ruby gem for native execution:",
		"  gem install hostnet-theme-dev")
}

func dockerError(err error, notFound *Failure) error {
	if err == nil {
		return nil
	}
	if exitErr := new(exec.ExitError); errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Killed by a signal; there is no code to relay.
			return nil
		}
		return &ExitStatusError{Code: code}
	}
	if errors.Is(err, exec.ErrNotFound) {
		return notFound
	}
	return Fail(ErrContainerSpawn, "starting Docker: "+err.Error())
}

// spawnInherit runs name with the caller's stdin, stdout and stderr and waits
// for it to exit.
func spawnInherit(name string, args []string) error {
	c := exec.Command(name, args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
