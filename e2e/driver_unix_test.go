//go:build e2e && unix

package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/tidwall/gjson"
)

const ringSize = 1 << 20 // 1 MiB scrollback

// ANSI cleaner (CSI + OSC + CR)
var ansiRe = regexp.MustCompile(`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|(?:\x1b\][^\x07]*\x07)|\r`)

// TUITestFramework drives the colortable binary under a PTY.
type TUITestFramework struct {
	t   *testing.T
	pty *os.File
	tty *os.File
	cmd *exec.Cmd

	workspace string
	done      chan struct{}

	mu   sync.Mutex
	buf  []byte
	head int
	full bool
}

func NewTUITest(t *testing.T) *TUITestFramework {
	t.Helper()
	return &TUITestFramework{t: t, buf: make([]byte, ringSize)}
}

// SetupWorkspace creates an isolated HOME so no user config is picked up.
func (tf *TUITestFramework) SetupWorkspace() string {
	tf.t.Helper()
	tf.workspace = tf.t.TempDir()
	return tf.workspace
}

// testEnv isolates config and log files in the workspace.
func testEnv(workspace string, extra ...string) []string {
	env := append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C.UTF-8",
		"LANG=C.UTF-8",
		"HOME="+workspace,
		"TMPDIR="+workspace,
		"XDG_CONFIG_HOME="+filepath.Join(workspace, ".config"),
		"COLORTABLE_CONFIG=",
	)
	return append(env, extra...)
}

// StartAppArgs starts the app with explicit CLI args and optional env in a
// 120x40 terminal.
func (tf *TUITestFramework) StartAppArgs(args []string, extraEnv ...string) error {
	tf.t.Helper()
	if tf.workspace == "" {
		tf.SetupWorkspace()
	}
	tf.cmd = exec.Command(binPath, args...)
	p, t, err := pty.Open()
	if err != nil {
		return err
	}
	tf.pty, tf.tty = p, t
	tf.cmd.Stdout, tf.cmd.Stdin, tf.cmd.Stderr = t, t, t
	tf.cmd.Dir = tf.workspace
	tf.cmd.Env = testEnv(tf.workspace, extraEnv...)

	if err := pty.Setsize(p, &pty.Winsize{Rows: 40, Cols: 120}); err != nil {
		return err
	}

	if err := tf.cmd.Start(); err != nil {
		_ = p.Close()
		_ = t.Close()
		return err
	}
	tf.done = make(chan struct{})
	go func() {
		_ = tf.cmd.Wait()
		close(tf.done)
	}()
	go tf.readLoop()
	return nil
}

func (tf *TUITestFramework) readLoop() {
	buf := make([]byte, 8192)
	for {
		n, err := tf.pty.Read(buf)
		if n > 0 {
			tf.mu.Lock()
			for i := 0; i < n; i++ {
				tf.buf[tf.head] = buf[i]
				tf.head = (tf.head + 1) % ringSize
				if tf.head == 0 {
					tf.full = true
				}
			}
			tf.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (tf *TUITestFramework) Send(keys string) error { _, err := tf.pty.Write([]byte(keys)); return err }
func (tf *TUITestFramework) CtrlC() error           { return tf.Send("\x03") }

func (tf *TUITestFramework) Snapshot() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	if !tf.full {
		return string(tf.buf[:tf.head])
	}
	out := make([]byte, ringSize)
	copy(out, tf.buf[tf.head:])
	copy(out[ringSize-tf.head:], tf.buf[:tf.head])
	return string(out)
}
func (tf *TUITestFramework) SnapshotPlain() string { return ansiRe.ReplaceAllString(tf.Snapshot(), "") }

// Mark returns the current output length so later waits can ignore
// everything drawn before it.
func (tf *TUITestFramework) Mark() int {
	return len(tf.SnapshotPlain())
}

func (tf *TUITestFramework) WaitForPlain(substr string, timeout time.Duration) bool {
	return tf.WaitForPlainSince(0, substr, timeout)
}

// WaitForPlainSince waits for substr to be drawn after mark.
func (tf *TUITestFramework) WaitForPlainSince(mark int, substr string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		s := tf.SnapshotPlain()
		if mark <= len(s) && strings.Contains(s[mark:], substr) {
			return true
		}
		time.Sleep(25 * time.Millisecond)
	}
	return false
}

// WaitExit reports whether the process exited within timeout.
func (tf *TUITestFramework) WaitExit(timeout time.Duration) bool {
	select {
	case <-tf.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (tf *TUITestFramework) Cleanup() {
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		if tf.done != nil {
			<-tf.done
		}
	}
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.tty != nil {
		_ = tf.tty.Close()
		tf.tty = nil
	}
}

// RunReplay runs the binary headless and returns its output and the state
// snapshot printed after the frame.
func RunReplay(t *testing.T, args ...string) (string, gjson.Result) {
	t.Helper()
	workspace := t.TempDir()
	cmd := exec.Command(binPath, args...)
	cmd.Dir = workspace
	cmd.Env = testEnv(workspace)

	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("replay failed: %v\nstderr: %s", err, stderr.String())
	}

	out := stdout.String()
	i := strings.LastIndex(out, "\n\n{")
	if i < 0 || !gjson.Valid(out[i+2:]) {
		t.Fatalf("no state snapshot in replay output:\n%s", out)
	}
	return out, gjson.Parse(out[i+2:])
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
