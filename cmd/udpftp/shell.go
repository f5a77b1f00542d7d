package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/udpftp/udpftp"
)

const downloadPrefix = "recu_"

func newShellCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive client shell",
		Long: `shell reads commands from standard input:

  open <address>  connect to a server (the default port is used if omitted)
  ls              list the files of the server
  get <file>      download a file
  bye             disconnect and leave the shell`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sh := newShell(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
			return sh.Run(cmd.Context())
		},
	}
}

type styles struct {
	prompt, ok, warn, err lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		prompt: r.NewStyle().Bold(true).Foreground(lipgloss.Color("57")),
		ok:     r.NewStyle().Foreground(lipgloss.Color("42")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("214")),
		err:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

type shell struct {
	in     *bufio.Scanner
	out    io.Writer
	styles styles

	cfg  *config
	opts *options
	conn *udpftp.Conn
}

func newShell(in io.Reader, out io.Writer, opts *options) *shell {
	return &shell{
		in:     bufio.NewScanner(in),
		out:    out,
		styles: newStyles(out),
		cfg:    opts.cfg,
		opts:   opts,
	}
}

func (s *shell) printf(format string, a ...any) { fmt.Fprintf(s.out, format+"\n", a...) }

func (s *shell) printErr(err error) { fmt.Fprintln(s.out, s.styles.err.Render("error: "+err.Error())) }

// Run executes commands until bye, or until the input is exhausted.
func (s *shell) Run(ctx context.Context) error {
	defer func() {
		if s.conn != nil {
			s.conn.Close()
		}
	}()

	s.printf("Type 'open <address>' to connect to a server.")
	for {
		fmt.Fprint(s.out, s.styles.prompt.Render("ftp>")+" ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		fields := strings.Fields(s.in.Text())
		if len(fields) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if done := s.execute(ctx, fields[0], fields[1:]); done {
			return nil
		}
	}
}

func (s *shell) execute(ctx context.Context, command string, args []string) (done bool) {
	switch command {
	case "open":
		if len(args) != 1 {
			s.printf("usage: open <address>")
			return false
		}
		s.open(ctx, args[0])
	case "ls", "get":
		if s.conn == nil {
			s.printf("not connected, use 'open <address>' to connect to a server")
			return false
		}
		if command == "ls" {
			s.list(ctx)
			return false
		}
		if len(args) != 1 {
			s.printf("usage: get <file>")
			return false
		}
		s.get(ctx, args[0])
	case "bye", "quit", "exit":
		if s.conn != nil {
			addr := s.conn.RemoteAddr()
			if err := s.conn.Close(); err != nil {
				s.printErr(err)
			}
			s.conn = nil
			s.printf("disconnected from %s", addr)
		}
		return true
	case "help":
		s.printf("commands: open <address>, ls, get <file>, bye")
	default:
		s.printf("unknown command: %s", command)
	}
	return false
}

func (s *shell) open(ctx context.Context, addr string) {
	if s.conn != nil {
		s.printf("already connected to %s", s.conn.RemoteAddr())
		return
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, s.cfg.Client.Port)
	}
	conf := s.cfg.Transfer.udpftpConfig()
	conf.Logger = s.opts.logger
	conn, err := udpftp.Connect(ctx, addr, conf)
	if err != nil {
		s.printErr(err)
		s.printf("the server didn't respond, try again with 'open <address>'")
		return
	}
	s.conn = conn
	s.printf("connected to %s (block size %d, window %d)", conn.RemoteAddr(), conn.BlockSize(), conn.WindowSize())
}

func (s *shell) list(ctx context.Context) {
	files, err := s.conn.ListFiles(ctx)
	if err != nil {
		s.printErr(err)
		return
	}
	if len(files) == 0 {
		s.printf("no files available")
		return
	}
	s.printf("files available:")
	for _, f := range files {
		s.printf("  %s", f)
	}
}

func (s *shell) get(ctx context.Context, name string) {
	res, err := s.conn.FetchFile(ctx, name)
	var aborted *udpftp.TransferAbortedError
	switch {
	case err == nil:
	case errors.As(err, &aborted) && res != nil:
		s.printErr(err)
	default:
		s.printErr(err)
		return
	}

	path := filepath.Join(s.cfg.Client.DownloadDir, downloadPrefix+filepath.Base(name))
	if err := os.WriteFile(path, res.Data, 0o644); err != nil {
		s.printErr(err)
		return
	}
	s.printf("received %d blocks (%d bytes), saved as %s", res.Blocks, len(res.Data), path)
	if len(res.Missing) > 0 {
		ranges := make([]string, 0, len(res.Missing))
		for _, br := range res.Missing {
			ranges = append(ranges, br.String())
		}
		msg := fmt.Sprintf("%d missing blocks: %s", res.MissingBlocks(), strings.Join(ranges, ", "))
		s.printf("%s", s.styles.warn.Render(msg))
	} else if res.Completion != udpftp.CompletionEndReceived {
		s.printf("%s", s.styles.warn.Render("transfer ended without an end marker ("+res.Completion.String()+")"))
	}
	if res.AnnouncedChecksum != "" {
		s.printf("announced checksum (SHA-256): %s", res.AnnouncedChecksum)
	}
	s.printf("computed checksum (SHA-256):  %s", res.ComputedChecksum)
	switch res.Verdict {
	case udpftp.VerdictMatch:
		s.printf("%s", s.styles.ok.Render("checksums match, the file was received intact"))
	case udpftp.VerdictMismatch:
		s.printf("%s", s.styles.err.Render("checksums differ, the file may be corrupted"))
	default:
		s.printf("%s", s.styles.warn.Render("the checksum announcement was lost, the file can't be verified"))
	}
}
