package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/tagselect/pkg/files"
	"github.com/pluqqy/tagselect/pkg/tui"
	"github.com/pluqqy/tagselect/pkg/tui/testhelpers"
)

func writeTagFile(t *testing.T) string {
	t.Helper()
	env := testhelpers.NewTestEnvironment(t)
	return env.WriteSettings(testhelpers.NewSettingsBuilder().
		WithTag("Docker", "#3498db", "Containers").
		WithTags("Kubernetes", "AWS").
		WithSelected("AWS").
		Build())
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tagselect version test\n", out)
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", files.ProjectFile)

	out, _, err := execute(t, "init", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+path)

	settings, err := files.ReadSettings(path)
	require.NoError(t, err)
	assert.Len(t, settings.Tags, 15)

	_, _, err = execute(t, "init", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = execute(t, "init", "--file", path, "--force")
	assert.NoError(t, err)
}

func TestListCommand_Text(t *testing.T) {
	path := writeTagFile(t)

	out, _, err := execute(t, "list", "--file", path)
	require.NoError(t, err)

	for _, expected := range []string{
		"ORDER", "NAME", "GROUP",
		"aws", "selected-tag",
		"#3498db", "Containers",
		"3 tag(s), 1 selected",
	} {
		assert.Contains(t, out, expected, "Output should contain: %s", expected)
	}
}

func TestListCommand_JSON(t *testing.T) {
	path := writeTagFile(t)

	out, _, err := execute(t, "list", "--file", path, "-o", "JSON")
	require.NoError(t, err)

	var result ListResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	require.Len(t, result.Tags, 3)
	assert.Equal(t, ListItem{Name: "AWS", Order: 2, ID: "aws", Group: string(tui.RoleSelected), Color: result.Tags[0].Color}, result.Tags[0])
	assert.Equal(t, "Docker", result.Tags[1].Name)
	assert.Equal(t, 0, result.Tags[1].Order)
	assert.Equal(t, "Containers", result.Tags[1].Description)
	assert.Equal(t, "Kubernetes", result.Tags[2].Name)
	assert.Equal(t, []string{"AWS"}, result.Selected)
	assert.Equal(t, 3, result.Count)
}

func TestListCommand_Overrides(t *testing.T) {
	path := writeTagFile(t)

	tests := []struct {
		name      string
		args      []string
		wantNames []string
		selected  []string
	}{
		{
			name:      "selected override",
			args:      []string{"--selected", "Kubernetes, Docker"},
			wantNames: []string{"Kubernetes", "Docker", "AWS"},
			selected:  []string{"Kubernetes", "Docker"},
		},
		{
			name:      "empty selection",
			args:      []string{"--selected", ""},
			wantNames: []string{"Docker", "Kubernetes", "AWS"},
			selected:  []string{},
		},
		{
			name:      "tags override",
			args:      []string{"--tags", "Go,Rust,AWS"},
			wantNames: []string{"AWS", "Go", "Rust"},
			selected:  []string{"AWS"},
		},
		{
			name:      "group filter",
			args:      []string{"--group", "tags"},
			wantNames: []string{"Docker", "Kubernetes"},
			selected:  []string{"AWS"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"list", "--file", path, "-o", "json"}, tt.args...)
			out, _, err := execute(t, args...)
			require.NoError(t, err)

			var result ListResult
			require.NoError(t, json.Unmarshal([]byte(out), &result))

			var names []string
			for _, item := range result.Tags {
				names = append(names, item.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, tt.selected, result.Selected)
			assert.Equal(t, len(tt.wantNames), result.Count)
		})
	}
}

func TestListCommand_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), files.ProjectFile)

	out, _, err := execute(t, "list", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "15 tag(s), 0 selected")
}

func TestListCommand_Errors(t *testing.T) {
	path := writeTagFile(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "bad group", args: []string{"list", "--file", path, "--group", "other"}, want: "invalid group"},
		{name: "bad format", args: []string{"list", "--file", path, "-o", "toml"}, want: "invalid output format"},
		{name: "bad width", args: []string{"list", "--file", path, "--width", "5"}, want: "invalid width"},
		{name: "directory as file", args: []string{"list", "--file", t.TempDir()}, want: "is a directory"},
		{name: "bad tag", args: []string{"list", "--file", path, "--tags", "ok,bad\tname"}, want: "invalid tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTagCommands(t *testing.T) {
	path := writeTagFile(t)

	out, _, err := execute(t, "tag", "add", "Go", "--file", path, "--color", "#00ADD8", "--description", "Gophers")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved tag Go")

	settings, err := files.ReadSettings(path)
	require.NoError(t, err)
	require.Len(t, settings.Tags, 4)
	assert.Equal(t, "Go", settings.Tags[3].Name)
	assert.Equal(t, "#00ADD8", settings.Tags[3].Color)

	_, _, err = execute(t, "tag", "add", "go", "--file", path, "--color", "#111111")
	require.NoError(t, err)
	settings, err = files.ReadSettings(path)
	require.NoError(t, err)
	require.Len(t, settings.Tags, 4, "a case variant updates the existing tag")
	assert.Equal(t, "Go", settings.Tags[3].Name)
	assert.Equal(t, "#111111", settings.Tags[3].Color)

	out, _, err = execute(t, "tag", "rm", "AWS", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed tag AWS")

	settings, err = files.ReadSettings(path)
	require.NoError(t, err)
	assert.Len(t, settings.Tags, 3)
	assert.Empty(t, settings.Selected, "removed tags leave the selection")

	_, _, err = execute(t, "tag", "remove", "Nope", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, _, err = execute(t, "tag", "add", "", "--file", path)
	assert.Error(t, err)
}

func TestTagCommands_NoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), files.ProjectFile)

	_, _, err := execute(t, "tag", "add", "Go", "--file", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, files.ErrNoProjectFile)
}

func TestCopyCommand(t *testing.T) {
	original := writeClipboard
	t.Cleanup(func() { writeClipboard = original })

	var copied string
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}

	path := writeTagFile(t)
	out, _, err := execute(t, "copy", "--file", path, "--selected", "AWS,Docker")
	require.NoError(t, err)
	assert.Equal(t, "AWS, Docker", copied)
	assert.Contains(t, out, "Copied 2 tag(s)")

	copied = ""
	_, errOut, err := execute(t, "copy", "--file", path, "--selected", "")
	require.NoError(t, err)
	assert.Empty(t, copied)
	assert.Contains(t, errOut, "Nothing selected")

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	_, _, err = execute(t, "copy", "--file", path)
	assert.EqualError(t, err, "no clipboard")
}

// pressEnter stands in for an interactive session that selects the focused tag
func pressEnter(m tea.Model) (tea.Model, error) {
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for cmd != nil {
		msg := cmd()
		m, cmd = m.Update(msg)
		if _, ok := msg.(tui.SelectionChangedMsg); ok {
			break
		}
	}
	return m, nil
}

func TestRootCommand(t *testing.T) {
	original := runProgram
	t.Cleanup(func() { runProgram = original })
	runProgram = pressEnter

	path := writeTagFile(t)

	out, _, err := execute(t, "--file", path, "--no-animate")
	require.NoError(t, err)
	assert.Equal(t, "AWS\nDocker\n", out)

	out, _, err = execute(t, "--file", path, "--no-animate", "-o", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "selected:\n    - AWS\n    - Docker\ncount: 2\n", out)
}

func TestRootCommand_LogsToFile(t *testing.T) {
	original := runProgram
	t.Cleanup(func() { runProgram = original })
	runProgram = pressEnter

	path := writeTagFile(t)
	logPath := filepath.Join(t.TempDir(), files.LogFile)

	_, _, err := execute(t, "--file", path, "--no-animate", "--log-file", logPath)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "selected tags changed")
	assert.Contains(t, string(data), "final selection")
}

func TestRootCommand_Errors(t *testing.T) {
	original := runProgram
	t.Cleanup(func() { runProgram = original })

	path := writeTagFile(t)

	runProgram = func(m tea.Model) (tea.Model, error) {
		return m, errors.New("no tty")
	}
	_, _, err := execute(t, "--file", path, "--no-animate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start the terminal user interface")

	_, _, err = execute(t, "--file", path, "--tags", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tags to choose from")

	_, _, err = execute(t, "--file", path, "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestCloseLogger(t *testing.T) {
	closeErr := errors.New("disk full")
	runErr := errors.New("no tty")

	tests := []struct {
		name    string
		close   error
		err     error
		wantErr error
	}{
		{name: "clean close", close: nil, err: nil, wantErr: nil},
		{name: "close failure reported", close: closeErr, err: nil, wantErr: closeErr},
		{name: "earlier error wins", close: closeErr, err: runErr, wantErr: runErr},
		{name: "earlier error kept", close: nil, err: runErr, wantErr: runErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closed := false
			err := closeLogger(closerFunc(func() error {
				closed = true
				return tt.close
			}), tt.err)

			assert.True(t, closed)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
