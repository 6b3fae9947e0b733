// Command php-parser exposes the lexer, parser, and traversal packages
// as a small CLI: tokenize, parse, or summarize a PHP source file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/phpscout/phpast/ast"
	"github.com/phpscout/phpast/errors"
	"github.com/phpscout/phpast/lexer"
	"github.com/phpscout/phpast/parser"
	"github.com/phpscout/phpast/traversal"
	"github.com/phpscout/phpast/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "php-parser",
		Usage: "Tokenize, parse, and inspect PHP source",
		Commands: []*cli.Command{
			tokensCommand,
			parseCommand,
			statsCommand,
			versionCommand,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

var versionCommand = &cli.Command{
	Name:  "version",
	Usage: "Print the build version",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		fmt.Println(version.Version())
		return nil
	},
}

var tokensCommand = &cli.Command{
	Name:      "tokens",
	Usage:     "Print the token stream for a file",
	ArgsUsage: "<file|->",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		src, err := readInput(cmd.Args().First())
		if err != nil {
			return err
		}
		for _, tok := range lexer.Tokenize(src, lexer.DefaultOptions()) {
			fmt.Printf("%3d:%-3d %-22s %q\n", tok.Span.Start.Line, tok.Span.Start.Column, lexer.TokenNames[tok.Kind], tok.Text)
		}
		return nil
	},
}

var parseCommand = &cli.Command{
	Name:      "parse",
	Usage:     "Parse a file and print its AST as JSON",
	ArgsUsage: "<file|->",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "strict", Usage: "Abort on the first syntax error instead of recovering"},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		src, err := readInput(cmd.Args().First())
		if err != nil {
			return err
		}
		opts := parser.DefaultOptions()
		if cmd.Bool("strict") {
			opts.ErrorRecovery = false
		}
		prog, err := parser.ParseSource(src, lexer.DefaultOptions(), opts)
		if err != nil {
			return fmt.Errorf("parse: %w", err)
		}
		if len(prog.Diagnostics) > 0 {
			reporter := errors.NewReporter(src)
			for _, d := range prog.Diagnostics {
				reporter.ReportSyntaxError(d.Message, d.Span)
			}
			for _, e := range reporter.Errors() {
				fmt.Fprint(os.Stderr, e.PrintFormatted())
			}
		}
		data, err := ast.ToJSON(prog)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var statsCommand = &cli.Command{
	Name:      "stats",
	Usage:     "Summarize the node kinds found in a file",
	ArgsUsage: "<file|->",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		src, err := readInput(cmd.Args().First())
		if err != nil {
			return err
		}
		prog, err := parser.ParseSource(src, lexer.DefaultOptions(), parser.DefaultOptions())
		if err != nil {
			return fmt.Errorf("parse: %w", err)
		}

		counts := map[ast.Kind]int{}
		traversal.Walk(prog, func(n ast.Node, _ int) traversal.Signal {
			counts[n.Kind()]++
			return traversal.Continue
		})

		fmt.Printf("statements:  %d\n", len(prog.Statements))
		fmt.Printf("functions:   %d\n", counts[ast.KFunctionDeclaration])
		fmt.Printf("classes:     %d\n", counts[ast.KClassDeclaration])
		fmt.Printf("calls:       %d\n", counts[ast.KCallExpression])
		fmt.Printf("diagnostics: %d\n", len(prog.Diagnostics))
		return nil
	},
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
