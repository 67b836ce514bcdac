package editor

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/tagtoggle/buffer"
)

func viewLines(m Model) []string {
	got := strings.Split(m.View(), "\n")
	for i := range got {
		got[i] = strings.TrimRight(ansi.Strip(got[i]), " ")
	}
	return got
}

func trueColorStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	return DefaultStyleWithRenderer(r)
}

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(Config{
		Text:         "one\ntwo\nthree\nfour\nfive",
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(8, 3)

	got := viewLines(m)
	want := []string{
		"1 one",
		"2 two",
		"3 three",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_LineNumberAlignment(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 120; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("x")
	}

	m := New(Config{Text: sb.String(), ShowLineNums: true}).Blur()
	lines := strings.Split(ansi.Strip(m.renderContent()), "\n")
	if len(lines) != 120 {
		t.Fatalf("expected 120 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if want := fmt.Sprintf("%3d x", i+1); line != want {
			t.Fatalf("line %d: got %q, want %q", i+1, line, want)
		}
	}
}

func TestRender_ClipsToWidthAndExpandsTabs(t *testing.T) {
	m := New(Config{Text: "abcdefghij\na\tb"}).Blur()
	m = m.SetSize(6, 2)

	got := viewLines(m)
	want := []string{"abcdef", "a   b"}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_WideGraphemesAreNotSplit(t *testing.T) {
	m := New(Config{Text: "aテスト"}).Blur()
	m = m.SetSize(4, 1)

	if got, want := viewLines(m)[0], "aテ"; got != want {
		t.Fatalf("line: got %q, want %q", got, want)
	}
}

func TestRender_CursorUsesCursorStyleWhenFocused(t *testing.T) {
	m := New(Config{Text: "ab", Style: trueColorStyle()})

	got := m.renderContent()
	if !strings.Contains(got, "\x1b[7m") {
		t.Fatalf("expected reverse-video cursor, got %q", got)
	}
	if plain := ansi.Strip(got); plain != "ab" {
		t.Fatalf("plain text: got %q, want %q", plain, "ab")
	}

	m.buf.SetCursor(buffer.Pos{Row: 0, GraphemeCol: 2})
	if plain := ansi.Strip(m.renderContent()); plain != "ab " {
		t.Fatalf("plain text with EOL cursor: got %q, want %q", plain, "ab ")
	}

	m = m.Blur()
	if got := m.renderContent(); strings.Contains(got, "\x1b[7m") {
		t.Fatalf("expected no cursor when blurred, got %q", got)
	}
}

func TestRender_SelectionUsesSelectionStyle(t *testing.T) {
	m := New(Config{Text: "hello", Style: trueColorStyle()}).Blur()
	m.buf.SetSelection(span(0, 1, 3))

	got := m.renderContent()
	if !strings.Contains(got, "48;5;237") {
		t.Fatalf("expected selection background, got %q", got)
	}
	if plain := ansi.Strip(got); plain != "hello" {
		t.Fatalf("plain text: got %q, want %q", plain, "hello")
	}
}

func TestNew_DefaultsKeyMapAndCommands(t *testing.T) {
	m := New(Config{})
	if len(m.cfg.KeyMap.Undo.Keys()) == 0 {
		t.Fatalf("expected default key map")
	}
	if got, want := len(m.Commands().List()), 4; got != want {
		t.Fatalf("commands: got %d, want %d", got, want)
	}
	if got, want := m.cfg.TabWidth, 4; got != want {
		t.Fatalf("tab width: got %d, want %d", got, want)
	}
}
