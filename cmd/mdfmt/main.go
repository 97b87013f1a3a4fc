package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdfmt"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/mdfmt")
}

func main() {
	var (
		prefix      string
		indentWidth int
		write       bool
		list        bool
		outPath     string
		showVersion bool
	)

	flags := pflag.NewFlagSet("mdfmt", pflag.ExitOnError)
	flags.StringVarP(&prefix, "prefix", "p", "", "Prefix written at the start of every output line")
	flags.IntVar(&indentWidth, "indent", 0, "Shift output right by N spaces")
	flags.BoolVarP(&write, "write", "w", false, "Rewrite files in place instead of printing")
	flags.BoolVarP(&list, "list", "l", false, "List files whose formatting differs")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: mdfmt [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nInputs may be paths, file:// URLs, or http(s):// URLs.")
		fmt.Fprintln(os.Stderr, "If no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}

	args := flags.Args()
	if (write || list) && len(args) == 0 {
		fmt.Fprintln(os.Stderr, "-w/-l require file arguments")
		os.Exit(2)
	}
	if (write || list) && outPath != "" {
		fmt.Fprintln(os.Stderr, "-o cannot be combined with -w or -l")
		os.Exit(2)
	}
	if outPath != "" && len(args) > 1 {
		fmt.Fprintln(os.Stderr, "-o accepts at most one input")
		os.Exit(2)
	}
	if len(args) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		flags.Usage()
		os.Exit(2)
	}

	cfg := renderConfig{prefix: prefix, indent: indentWidth}

	if len(args) == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
			os.Exit(1)
		}
		if err := emit(outPath, src, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "mdfmt: %v\n", err)
			os.Exit(1)
		}
		return
	}

	exitCode := 0
	for _, arg := range args {
		if err := processInput(arg, write, list, outPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "mdfmt: %s: %v\n", arg, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

type renderConfig struct {
	prefix string
	indent int
}

// render formats src and terminates the final line, shifting the whole
// output right when an indent is configured.
func render(src []byte, cfg renderConfig) ([]byte, error) {
	out, err := mdfmt.Format(src, mdfmt.WithPrefix(cfg.prefix))
	if err != nil {
		return nil, err
	}
	if cfg.indent > 0 {
		out = []byte(indent.String(string(out), uint(cfg.indent)))
	}
	if len(out) > 0 {
		out = append(out, '\n')
	}
	return out, nil
}

func processInput(arg string, write, list bool, outPath string, cfg renderConfig) error {
	path, isFile := localPath(arg)
	if (write || list) && !isFile {
		return fmt.Errorf("-w/-l only apply to local files")
	}
	src, err := readInput(arg)
	if err != nil {
		return err
	}
	out, err := render(src, cfg)
	if err != nil {
		return err
	}
	switch {
	case list:
		if !bytes.Equal(src, out) {
			fmt.Fprintln(os.Stdout, path)
		}
		return nil
	case write:
		if bytes.Equal(src, out) {
			return nil
		}
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		return os.WriteFile(path, out, info.Mode().Perm())
	default:
		return emitBytes(outPath, out)
	}
}

func emit(outPath string, src []byte, cfg renderConfig) error {
	out, err := render(src, cfg)
	if err != nil {
		return err
	}
	return emitBytes(outPath, out)
}

func emitBytes(outPath string, out []byte) error {
	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		return err
	}
	_, werr := writer.Write(out)
	if closeOut != nil {
		if cerr := closeOut.Close(); werr == nil {
			werr = cerr
		}
	}
	return werr
}

// localPath reports whether arg names a local file, resolving file:// URLs
// to their path.
func localPath(arg string) (string, bool) {
	u, err := url.Parse(arg)
	if err != nil || u.Scheme == "" {
		return normalizePath(arg), true
	}
	switch strings.ToLower(u.Scheme) {
	case "file":
		path := u.Path
		if path == "" {
			path = u.Host
		}
		if unescaped, err := url.PathUnescape(path); err == nil {
			path = unescaped
		}
		return normalizePath(path), true
	case "http", "https":
		return "", false
	default:
		return normalizePath(arg), true
	}
}

func readInput(arg string) ([]byte, error) {
	if path, ok := localPath(arg); ok {
		return os.ReadFile(path)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, arg, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http %s: %s", arg, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
