// Package analyzer shells out to the upstream custom elements manifest
// analyzer to (re)produce the manifest this tool consumes.
package analyzer

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// DefaultCommand is the CLI binary installed by
// @custom-elements-manifest/analyzer.
const DefaultCommand = "custom-elements-manifest"

// Options configures one analyzer invocation.
type Options struct {
	// Command overrides the analyzer binary name.
	Command string
	// Globs select the source files to analyze.
	Globs []string
	// Outdir is where the analyzer writes custom-elements.json.
	Outdir string
	// Litelement enables the analyzer's Lit-specific extraction.
	Litelement bool
	// Dir is the working directory for the subprocess.
	Dir string
}

// BuildArgs assembles the analyzer CLI argument list.
func BuildArgs(opts Options) []string {
	args := []string{"analyze"}
	if opts.Litelement {
		args = append(args, "--litelement")
	}
	if opts.Outdir != "" {
		args = append(args, "--outdir", opts.Outdir)
	}
	for _, glob := range opts.Globs {
		args = append(args, "--globs", glob)
	}
	return args
}

// Run executes the analyzer, falling back to npx when the binary is not on
// PATH. Analyzer output streams through to the caller's terminal.
func Run(logger *slog.Logger, opts Options) error {
	command := opts.Command
	if command == "" {
		command = DefaultCommand
	}
	args := BuildArgs(opts)

	logger.Info("Running manifest analyzer", "command", command)
	err := run(opts.Dir, command, args...)
	if err == nil {
		return nil
	}
	if !errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("analyzer failed: %w", err)
	}

	logger.Warn("Analyzer not found on PATH, retrying via npx", "command", command)
	if npxErr := run(opts.Dir, "npx", append([]string{command}, args...)...); npxErr != nil {
		return fmt.Errorf("analyzer failed via npx: %w", npxErr)
	}
	return nil
}

func run(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
