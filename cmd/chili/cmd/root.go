// Package cmd implements the chili CLI commands.
//
// A root command dispatches to subcommands (render, version) after
// consuming the global logging flags.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/design2/chili/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "chili",
	Short: "chili - layered shadow and gradient containers",
	Long: `chili renders shadow layout styles: rounded containers with outer
shadows, a background fill, a gradient overlay and inner shadows.

Use "chili <command> --help" for more information about a command.`,
	Usage: "chili <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Global flags are only recognised before the command name.
	logOpts := logOptions{}
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(filteredArgs) > 0 {
			filteredArgs = append(filteredArgs, arg)
			continue
		}
		switch arg {
		case "-h", "--help", "help":
			printHelp(rootCmd)
			return nil
		case "-v", "--version":
			printVersion()
			return nil
		case "--verbose":
			logOpts.verbose = true
		case "--log-file":
			if i+1 >= len(args) {
				return fmt.Errorf("--log-file requires a file path")
			}
			logOpts.file = args[i+1]
			i++
		default:
			if strings.HasPrefix(arg, "--log-file=") {
				logOpts.file = strings.TrimPrefix(arg, "--log-file=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	logger, closeLog := newLogger(logOpts)
	defer closeLog()
	setLogger(logger)

	handler := errors.NewLogHandler(logger)
	handler.Verbose = logOpts.verbose
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	return cmd.Run(cmdArgs)
}

func printVersion() {
	fmt.Printf("chili version %s (built %s)\n", Version, BuildTime)
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --verbose            Log at debug level")
	fmt.Println("  --log-file PATH      Also write logs to a rotating file")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  chili render --style card.yaml --out card.png")
	fmt.Println("  chili render --style card.yaml --width 320 --height 120 --margin 24 --out card.png")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
