//go:build mage

// Package main contains Mage build targets for cb developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

const (
	binDir  = "bin"
	binName = "cb"
	cmdPkg  = "./cmd/cb"
)

// Build compiles the cb binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	cmd := exec.Command("go", "build", "-o", out, cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Install builds cb and installs it into GOBIN (or GOPATH/bin).
func Install() error {
	cmd := exec.Command("go", "install", cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go install: %w", err)
	}
	fmt.Println("Installed cb")
	return nil
}

// Test runs the full test suite.
func Test() error {
	cmd := exec.Command("go", "test", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Demo builds cb and initializes a throwaway catalog under ./demo, then
// runs a couple of searches against it.
func Demo() error {
	mg.Deps(Build)
	if err := os.MkdirAll("demo", 0o755); err != nil {
		return fmt.Errorf("creating demo dir: %w", err)
	}

	bin := filepath.Join(binDir, binName)
	db := filepath.Join("demo", "commandbrain.db")
	steps := [][]string{
		{"setup"},
		{"enrich"},
		{"search", "port", "scan"},
		{"chain"},
	}
	for _, args := range steps {
		cmd := exec.Command(bin, args...)
		cmd.Env = append(os.Environ(), "COMMANDBRAIN_DATABASE="+db)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("running cb %v: %w", args, err)
		}
	}
	return nil
}

// Clean removes build output and the demo catalog.
func Clean() error {
	for _, dir := range []string{binDir, "demo"} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
	}
	fmt.Println("Cleaned.")
	return nil
}
