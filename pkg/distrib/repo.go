package distrib

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"jeka/pkg/archive"
	"jeka/pkg/downloader"
)

// artifactURL builds the Maven-layout URL of one distribution zip.
func artifactURL(repo, version string) string {
	return fmt.Sprintf("%s/dev/jeka/jeka-core/%s/jeka-core-%s-distrib.zip",
		strings.TrimRight(repo, "/"), version, version)
}

// install downloads and unpacks one distribution version into the staging
// directory.
func (r *Resolver) install(ctx context.Context, stage, version string) error {
	repo := r.Props.GetDefault(RepoProp, DefaultRepo)
	uri := artifactURL(repo, version)

	task := r.Disp.StartTask("distribution " + version)
	defer task.Done()

	task.SetStage("Download", uri)
	slog.Info("Downloading distribution", "version", version, "url", uri)

	tmp, err := os.CreateTemp("", "jeka-distrib-*.zip")
	if err != nil {
		return fmt.Errorf("failed to create download file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := r.Downloader.Download(ctx, uri, tmp, task); err != nil {
		tmp.Close()
		var derr *downloader.Error
		if errors.As(err, &derr) && derr.Status == http.StatusNotFound {
			if versions := r.availableVersions(ctx, repo); len(versions) > 0 {
				return fmt.Errorf("distribution version %s not found in %s (published versions include %s): %w",
					version, repo, strings.Join(versions, ", "), err)
			}
		}
		return fmt.Errorf("failed to download distribution %s: %w", version, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to finish download: %w", err)
	}

	task.SetStage("Extract", stage)
	if err := archive.Extract(tmp.Name(), stage); err != nil {
		return fmt.Errorf("failed to unpack distribution: %w", err)
	}
	return archive.Flatten(stage)
}
