package main

import (
	"io"
	"os"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	// Getenv reads PORTFOLIO_* overrides; nil disables them.
	Getenv func(string) string
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
}

// Environment variables consulted when the matching flag is unset.
const (
	envConfig  = "PORTFOLIO_CONFIG"
	envWorkers = "PORTFOLIO_WORKERS"
	envAddr    = "PORTFOLIO_ADDR"
)

func (e *Environment) getenv(key string) string {
	if e.Getenv == nil {
		return ""
	}
	return e.Getenv(key)
}
