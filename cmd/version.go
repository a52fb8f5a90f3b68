package cmd

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/docker/docker/client"
)

// version is set at build time with -ldflags "-X .../cmd.version=v1.2.3".
var version = "dev"

// Version returns the CLI version, falling back to module build info.
func Version() string {
	if version != "" && version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "dev"
}

// ImageStatus describes the locally pulled copy of the container image.
type ImageStatus struct {
	Pulled  bool
	ID      string
	Created string
}

var inspectImage = inspectLocalImage

// ImageInfo reports the local image state as a single line. It never fails;
// daemon problems are reported in the line itself.
func ImageInfo(image string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	st, err := inspectImage(ctx, image)
	if err != nil {
		logger.Debug("inspect image", "image", image, "err", err)
		return "daemon unavailable"
	}
	if !st.Pulled {
		return "not pulled (run: hostnet update)"
	}
	id := strings.TrimPrefix(st.ID, "sha256:")
	if len(id) > 12 {
		id = id[:12]
	}
	if st.Created == "" {
		return id
	}
	return fmt.Sprintf("%s (created %s)", id, st.Created)
}

func inspectLocalImage(ctx context.Context, image string) (ImageStatus, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return ImageStatus{}, err
	}
	defer cli.Close()

	img, _, err := cli.ImageInspectWithRaw(ctx, image)
	if err != nil {
		if client.IsErrNotFound(err) {
			return ImageStatus{}, nil
		}
		return ImageStatus{}, err
	}
	return ImageStatus{Pulled: true, ID: img.ID, Created: img.Created}, nil
}
