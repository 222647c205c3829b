package braingif

import (
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RunGenerator runs an external mesh-generation command, such as a script
// which writes brain.stl, and waits for it to exit.
func RunGenerator(ctx context.Context, argv []string, logger *zap.Logger) error {
	if len(argv) == 0 {
		return errors.Wrap(ErrInvalidConfig, "empty generator command")
	}
	logger = orNop(logger)
	logger.Info("generating mesh", zap.Strings("command", argv))
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Errorf("mesh generator %s: %v, output: %s", argv[0], err,
			strings.TrimSpace(string(output)))
	}
	return nil
}
