package render

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
)

// Sentinel errors for the engine tier.
var (
	ErrNoEngineOutput = errors.New("engine produced no output file")
)

const (
	texJobName    = "itinerary"
	mapImageName  = "map.png"
	enginePassCnt = 2
)

// renderWithEngine writes the LaTeX source into a scoped temporary working
// directory and compiles it with the external engine. The engine runs twice
// in the same directory so the second pass can resolve cross-references
// introduced by the first. Success is the output file existing afterwards:
// the engine exits nonzero on cosmetic warnings while still producing
// usable output, so the exit status is logged but not fatal.
func (r *Renderer) renderWithEngine(ctx context.Context, docSource string, mapImage []byte) ([]byte, error) {
	workDir, err := os.MkdirTemp("", "itinerary-"+uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("creating working directory: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(workDir); rmErr != nil {
			r.logger.Warn("Failed to remove working directory",
				slog.String("dir", workDir), slog.Any("error", rmErr))
		}
	}()

	texPath := filepath.Join(workDir, texJobName+".tex")
	if err := os.WriteFile(texPath, []byte(docSource), 0o600); err != nil {
		return nil, fmt.Errorf("writing document source: %w", err)
	}
	if len(mapImage) > 0 {
		if err := os.WriteFile(filepath.Join(workDir, mapImageName), mapImage, 0o600); err != nil {
			return nil, fmt.Errorf("writing map image: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, r.engineTimeout)
	defer cancel()

	for pass := 1; pass <= enginePassCnt; pass++ {
		cmd := exec.CommandContext(ctx, r.engineBin,
			"-interaction=nonstopmode",
			"-output-directory="+workDir,
			"-jobname="+texJobName,
			texPath,
		)
		cmd.Dir = workDir
		out, runErr := cmd.CombinedOutput()
		if runErr != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("engine pass %d: %w", pass, ctx.Err())
			}
			r.logger.Debug("Engine pass exited with error",
				slog.Int("pass", pass),
				slog.Any("error", runErr),
				slog.Int("output_bytes", len(out)),
			)
		}
	}

	data, err := os.ReadFile(filepath.Join(workDir, texJobName+".pdf"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoEngineOutput, err)
	}
	if len(data) == 0 {
		return nil, ErrNoEngineOutput
	}
	return data, nil
}
