//go:build e2e && unix

package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/creack/pty"
)

// binPath is set by TestMain to the freshly built binary
var binPath = "cinerate_e2e"

const (
	maxOutput   = 1 << 20 // bytes of terminal output kept per session
	waitTimeout = 3 * time.Second
	pollEvery   = 25 * time.Millisecond
)

// Keys as the terminal sends them
const (
	KeyEnter  = "\r"
	KeyEsc    = "\x1b"
	KeyCtrlC  = "\x03"
	KeyCtrlU  = "\x15"
	KeySearch = "/"
	KeyHelp   = "?"
	KeyQuit   = "q"
)

// searchFocused is the hint the hero shows while the empty search box has focus
const searchFocused = "esc to leave search"

// ansiRe matches CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// outputLog collects everything the app writes, keeping the newest maxOutput bytes
type outputLog struct {
	mu  sync.Mutex
	buf []byte
}

func (l *outputLog) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf = append(l.buf, p...)
	if over := len(l.buf) - maxOutput; over > 0 {
		l.buf = l.buf[over:]
	}
	return len(p), nil
}

func (l *outputLog) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return string(l.buf)
}

func (l *outputLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf = l.buf[:0]
}

// Session is one cinerate process running in a pseudo-terminal
type Session struct {
	t    *testing.T
	pty  *os.File
	tty  *os.File
	cmd  *exec.Cmd
	dir  string
	out  outputLog
	done chan error
}

// NewSession prepares a session with its own working and home directory
func NewSession(t *testing.T) *Session {
	return &Session{t: t, dir: t.TempDir()}
}

// Dir is the working directory and $HOME of the app
func (s *Session) Dir() string {
	return s.dir
}

// StartApp launches the binary with args on a 120x40 terminal
func (s *Session) StartApp(args ...string) error {
	s.cmd = exec.Command(binPath, args...)
	s.cmd.Dir = s.dir
	s.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C.UTF-8",
		"LANG=C.UTF-8",
		"HOME="+s.dir,
		"XDG_CONFIG_HOME="+filepath.Join(s.dir, ".config"),
	)

	ptmx, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}
	s.pty, s.tty = ptmx, tty

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 40, Cols: 120}); err != nil {
		return fmt.Errorf("failed to size pty: %w", err)
	}

	s.cmd.Stdin, s.cmd.Stdout, s.cmd.Stderr = tty, tty, tty
	// The pager opens /dev/tty, so the pty must be the controlling terminal
	s.cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true, Setctty: true}

	if err := s.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", binPath, err)
	}

	s.done = make(chan error, 1)
	go func() { s.done <- s.cmd.Wait() }()
	go s.copyOutput()
	return nil
}

func (s *Session) copyOutput() {
	buf := make([]byte, 8192)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 {
			s.out.Write(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// SendKeys writes raw bytes to the terminal
func (s *Session) SendKeys(keys string) error {
	s.t.Helper()
	_, err := s.pty.Write([]byte(keys))
	return err
}

// Enter presses enter
func (s *Session) Enter() error {
	s.t.Helper()
	return s.SendKeys(KeyEnter)
}

// Search focuses the search box, waits until it has focus and types query.
// Sending the slash and the query in one write would reach the app as a
// single key message.
func (s *Session) Search(query string) error {
	s.t.Helper()
	if err := s.SendKeys(KeySearch); err != nil {
		return err
	}
	if err := s.WaitForE(searchFocused, "search box did not take focus"); err != nil {
		return err
	}
	return s.SendKeys(query)
}

// Blur leaves the search box
func (s *Session) Blur() error {
	s.t.Helper()
	return s.SendKeys(KeyEsc)
}

// ClearQuery presses the clear shortcut
func (s *Session) ClearQuery() error {
	s.t.Helper()
	return s.SendKeys(KeyCtrlU)
}

// Help opens the help screen
func (s *Session) Help() error {
	s.t.Helper()
	return s.SendKeys(KeyHelp)
}

// Quit presses q
func (s *Session) Quit() error {
	s.t.Helper()
	return s.SendKeys(KeyQuit)
}

// ForceQuit presses ctrl+c
func (s *Session) ForceQuit() error {
	s.t.Helper()
	return s.SendKeys(KeyCtrlC)
}

// ClearOutput forgets what was rendered so far. Bubble Tea only repaints
// changed lines, so later waits see just what a key press redrew.
func (s *Session) ClearOutput() {
	s.out.Reset()
}

// SeePlain waits for text to appear in the output with escapes removed
func (s *Session) SeePlain(text string) bool {
	s.t.Helper()
	return s.WaitForE(text, "") == nil
}

// WaitForE is SeePlain with an error that carries the output tail
func (s *Session) WaitForE(text, failMsg string) error {
	s.t.Helper()
	deadline := time.Now().Add(waitTimeout)
	for {
		if strings.Contains(s.SnapshotPlain(), text) {
			return nil
		}
		if time.Now().After(deadline) {
			tail := s.SnapshotPlain()
			if len(tail) > 4096 {
				tail = tail[len(tail)-4096:]
			}
			if failMsg == "" {
				failMsg = fmt.Sprintf("%q did not appear", text)
			}
			return fmt.Errorf("%s\n--- tail ---\n%s", failMsg, tail)
		}
		time.Sleep(pollEvery)
	}
}

// SnapshotPlain returns the collected output with escapes removed
func (s *Session) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(s.out.String(), "")
}

// WaitExit waits for the process to end
func (s *Session) WaitExit(timeout time.Duration) error {
	select {
	case err := <-s.done:
		s.done <- err
		return err
	case <-time.After(timeout):
		return errors.New("app did not exit")
	}
}

// DumpTailOnFail saves the last n bytes of plain output for debugging
func (s *Session) DumpTailOnFail(t *testing.T, name string, n int) {
	out := s.SnapshotPlain()
	if len(out) > n {
		out = out[len(out)-n:]
	}
	p := filepath.Join(t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(out), 0644)
	t.Logf("Saved tail to %s", p)
}

// Cleanup closes the terminal and kills the app if it is still running
func (s *Session) Cleanup() {
	if s.pty != nil {
		_ = s.pty.Close()
		s.pty = nil
	}
	if s.tty != nil {
		_ = s.tty.Close()
		s.tty = nil
	}
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
		if s.done != nil {
			<-s.done
		}
		s.cmd = nil
	}
}
