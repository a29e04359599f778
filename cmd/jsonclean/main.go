// Package main is the entry point for the jsonclean CLI.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jsonclean"
)

const version = "1.0.0"

type options struct {
	write   bool
	verify  bool
	charset string
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "jsonclean [files...]",
		Short: "Strip // and # line comments from JSON files",
		Long: `jsonclean removes // and # line comments from JSON-like files so the
result can be parsed by a standard JSON decoder. Comment markers inside
quoted strings are left untouched.

With no arguments, input is read from stdin and the cleaned text is
written to stdout. The --encoding flag applies when streaming files to
stdout; in-place rewrites (-w) preserve the file's original bytes.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cleanStream(cmd.InOrStdin(), cmd.OutOrStdout(), opts.verify)
			}
			return cleanFiles(args, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	rootCmd.Flags().BoolVarP(&opts.write, "write", "w", false, "rewrite files in place instead of printing to stdout")
	rootCmd.Flags().BoolVar(&opts.verify, "verify", false, "require cleaned output to be valid JSON")
	rootCmd.Flags().StringVar(&opts.charset, "encoding", jsonclean.DefaultEncoding, "IANA charset name used to read files")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cleanStream cleans everything on in and writes the result to out.
func cleanStream(in io.Reader, out io.Writer, verify bool) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	cleaned := jsonclean.CleanBytes(data)
	if verify && !json.Valid(cleaned) {
		return fmt.Errorf("cleaned input is not valid JSON")
	}

	if _, err := out.Write(cleaned); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// cleanFiles processes each file in turn. Per-file failures are warnings so
// one bad file does not abort the batch; a run where nothing succeeded is an
// error.
func cleanFiles(files []string, opts options, out, errOut io.Writer) error {
	processed := 0
	for _, file := range files {
		if err := cleanFile(file, opts, out); err != nil {
			fmt.Fprintf(errOut, "Warning: failed to process %s: %v\n", file, err)
			continue
		}
		processed++
	}

	if processed == 0 {
		return fmt.Errorf("no files were successfully processed")
	}
	return nil
}

func cleanFile(name string, opts options, out io.Writer) error {
	if opts.write {
		return rewriteFile(name, opts.verify)
	}

	r, err := jsonclean.OpenFile(name, "r", opts.charset)
	if err != nil {
		return err
	}
	return r.With(func(r *jsonclean.Reader) error {
		cleaned, err := r.ReadAll()
		if err != nil {
			return err
		}
		if opts.verify && !json.Valid([]byte(cleaned)) {
			return fmt.Errorf("cleaned content is not valid JSON")
		}
		if _, err := io.WriteString(out, cleaned); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	})
}

func rewriteFile(name string, verify bool) error {
	content, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	cleaned := jsonclean.CleanBytes(content)
	if verify && !json.Valid(cleaned) {
		return fmt.Errorf("cleaned content is not valid JSON")
	}

	if err := os.WriteFile(name, cleaned, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
