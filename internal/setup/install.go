// Package setup installs the optional helper packages postdeck's media features lean on.
package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/postdeck/postdeck/internal/logx"
)

var ErrNoPackageManager = errors.New("no package manager configured")

// Runner executes one command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// InstallError reports the package that stopped an install run.
type InstallError struct {
	Package string
	Output  string
	Err     error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("installing %s: %v", e.Package, e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

type Installer struct {
	// Command is the package manager invocation, e.g. "brew install". Each package is
	// appended as the final argument.
	Command string
	Runner  Runner
	Out     io.Writer
	Log     logx.Logger
}

func NewInstaller(command string, out io.Writer, log logx.Logger) *Installer {
	return &Installer{
		Command: command,
		Runner:  ExecRunner{},
		Out:     out,
		Log:     log.Component("setup"),
	}
}

// Install installs packages in order and stops at the first failure. Packages after the
// failing one are not attempted.
func (i *Installer) Install(ctx context.Context, packages []string) error {
	argv := strings.Fields(i.Command)
	if len(argv) == 0 {
		return ErrNoPackageManager
	}

	fmt.Fprintln(i.Out, "Installing required packages...")

	for _, pkg := range packages {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(i.Out, "Installing %s...\n", pkg)
		args := append(argv[1:len(argv):len(argv)], pkg)
		output, err := i.Runner.Run(ctx, argv[0], args...)
		if err != nil {
			fmt.Fprintf(i.Out, "Error installing %s: %v\n", pkg, err)
			if out := strings.TrimSpace(string(output)); out != "" {
				fmt.Fprintln(i.Out, out)
			}
			i.Log.Error("package install failed", logx.String("package", pkg), logx.Err(err))
			return &InstallError{Package: pkg, Output: string(output), Err: err}
		}

		fmt.Fprintf(i.Out, "Successfully installed %s\n", pkg)
		i.Log.Info("package installed", logx.String("package", pkg))
	}

	fmt.Fprintln(i.Out, "\nAll requirements installed successfully!")
	return nil
}
