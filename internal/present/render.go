package present

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNoRenderer is returned by Render when the dot binary is not installed.
var ErrNoRenderer = errors.New("graphviz dot not found in PATH")

// Render pipes the DOT form of g through Graphviz dot, writing an image of
// the given format (png, svg, ...) to out.
func Render(ctx context.Context, g *Graph, format, out string) error {
	bin, err := exec.LookPath("dot")
	if err != nil {
		return ErrNoRenderer
	}
	var buf bytes.Buffer
	if err := WriteDOT(&buf, g); err != nil {
		return err
	}
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "-T"+format, "-o", out)
	cmd.Stdin = &buf
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("dot failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
