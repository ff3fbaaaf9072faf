package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate the site from a content directory")
	fmt.Fprintln(w, "  serve      Preview a generated site locally")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'portfolio help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio build <content> <output> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate the site. The output directory is replaced only when the")
	fmt.Fprintln(w, "whole build succeeds.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  content    Directory of markdown posts and pages")
	fmt.Fprintln(w, "  output     Directory to write the site to")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: site.yaml)")
	fmt.Fprintf(w, "  -w, --workers <n>         Parallel workers (0 = auto, max %d)\n", maxWorkers)
	fmt.Fprintln(w, "      --drafts              Include posts and pages marked draft: true")
	fmt.Fprintln(w, "      --watch               Rebuild when content changes")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-phase details")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintf(w, "  %s, %s\n", envConfig, envWorkers)
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio serve <dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve a generated site for local preview. Stop with Ctrl+C.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintf(w, "      --addr <host:port>    Listen address (default: %s)\n", defaultAddr)
	fmt.Fprintln(w, "  -c, --config <name>       Config whose URL path prefixes the site")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log every request")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintf(w, "  %s, %s\n", envConfig, envAddr)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: portfolio version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: portfolio help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
