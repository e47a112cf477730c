package ui

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// OpenEditor opens a file in $VISUAL or $EDITOR and waits for it to exit.
func OpenEditor(path string) error {
	editor := editorCommand()
	fields := strings.Fields(editor)
	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("open editor %s: %w", fields[0], err)
	}
	return nil
}

func editorCommand() string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if editor := strings.TrimSpace(os.Getenv(key)); editor != "" {
			return editor
		}
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "nano"
}
