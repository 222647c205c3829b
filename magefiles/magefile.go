//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/magefile/mage/mg"
)

var Default = Build

// Build installs the brain_gif command.
func Build() error {
	return executeCmd("go", "install", "./cmds/brain_gif")
}

// Test runs the unit tests.
func Test() error {
	return executeCmd("go", "test", "./...")
}

// Render builds brain_gif and renders brain.stl in the working directory,
// using gifski when $BRAINGIF_GIFSKI_PATH is set.
func Render() error {
	mg.Deps(Build)
	return executeCmd("brain_gif", "brain.stl")
}

func executeCmd(command string, args ...string) error {
	fmt.Printf("Executing: %s %s\n", command, strings.Join(args, " "))
	cmd := exec.Command(command, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}
	return nil
}
