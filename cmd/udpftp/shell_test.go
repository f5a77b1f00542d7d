package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/udpftp/udpftp"

	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, files map[string]string) *udpftp.Server {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	server, err := udpftp.Listen("127.0.0.1:0", udpftp.NewDirStore(dir), &udpftp.Config{
		BlockSize: 16,
		Timeout:   time.Second,
		Logger:    slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)
	done := make(chan error, 1)
	go func() { done <- server.Serve(context.Background()) }()
	t.Cleanup(func() {
		server.Close()
		require.ErrorIs(t, <-done, udpftp.ErrServerClosed)
	})
	return server
}

func runShell(t *testing.T, downloadDir string, input string) string {
	t.Helper()
	cfg := defaultConfig()
	cfg.Transfer.Reliability = 1
	cfg.Transfer.Timeout = time.Second
	cfg.Client.DownloadDir = downloadDir
	opts := &options{cfg: cfg, logger: slog.New(slog.DiscardHandler)}

	out := &bytes.Buffer{}
	require.NoError(t, newShell(strings.NewReader(input), out, opts).Run(context.Background()))
	return out.String()
}

func TestShellRequiresConnection(t *testing.T) {
	out := runShell(t, t.TempDir(), "ls\nget foo.txt\nfoobar\nopen\n")
	require.Equal(t, 2, strings.Count(out, "not connected"))
	require.Contains(t, out, "unknown command: foobar")
	require.Contains(t, out, "usage: open <address>")
}

func TestShellSession(t *testing.T) {
	content := strings.Repeat("0123456789", 10)
	server := startServer(t, map[string]string{"foo.txt": content, "bar.txt": "bar"})
	downloadDir := t.TempDir()

	out := runShell(t, downloadDir, strings.Join([]string{
		"open " + server.Addr().String(),
		"open " + server.Addr().String(),
		"ls",
		"get foo.txt",
		"get missing.txt",
		"get",
		"bye",
		"ls", // never executed
	}, "\n"))

	require.Contains(t, out, "connected to "+server.Addr().String()+" (block size 16, window 5)")
	require.Contains(t, out, "already connected")
	require.Contains(t, out, "  bar.txt\n  foo.txt\n")
	require.Contains(t, out, "received 7 blocks (100 bytes)")
	require.Contains(t, out, "checksums match")
	require.Contains(t, out, "file not found")
	require.Contains(t, out, "usage: get <file>")
	require.Contains(t, out, "disconnected from "+server.Addr().String())
	require.NotContains(t, out, "not connected")

	data, err := os.ReadFile(filepath.Join(downloadDir, "recu_foo.txt"))
	require.NoError(t, err)
	require.Equal(t, content, string(data))
	_, err = os.Stat(filepath.Join(downloadDir, "recu_missing.txt"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestShellEmptyListing(t *testing.T) {
	server := startServer(t, nil)
	out := runShell(t, t.TempDir(), "open "+server.Addr().String()+"\nls\n")
	require.Contains(t, out, "no files available")
}

func TestRootCommandShell(t *testing.T) {
	server := startServer(t, map[string]string{"foo.txt": "hello world"})
	downloadDir := t.TempDir()
	path := writeConfig(t, "client:\n  download_dir: "+downloadDir+"\nlog_level: none\n")

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader("open " + server.Addr().String() + "\nget foo.txt\nbye\n"))
	cmd.SetArgs([]string{"--config", path, "--reliability", "1", "--timeout", "1s", "shell"})
	require.NoError(t, cmd.Execute())

	require.Contains(t, out.String(), "checksums match")
	data, err := os.ReadFile(filepath.Join(downloadDir, "recu_foo.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello world", string(data))
}
