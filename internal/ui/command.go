package ui

import (
	"strconv"
	"strings"

	"github.com/tturner/binwriter/internal/gen"
)

// CommandSpec represents a CLI invocation equivalent to a wizard run.
type CommandSpec struct {
	Args []string
}

// String renders the command for pasting into a POSIX shell.
func (c CommandSpec) String() string {
	quoted := make([]string, len(c.Args))
	for i, arg := range c.Args {
		quoted[i] = shellQuote(arg)
	}
	return strings.Join(quoted, " ")
}

// BuildCommand builds the generate command line that reproduces spec.
func BuildCommand(filename string, spec gen.Spec) CommandSpec {
	args := []string{"binwriter", "generate", "-f", filename}

	if spec.Size != nil {
		args = append(args, "-s", strconv.FormatInt(*spec.Size, 10))
	}
	addStringFlag(&args, spec.Fill, "--fill")
	if spec.Random {
		args = append(args, "--random")
	}
	if spec.Seed != nil {
		args = append(args, "--seed", strconv.FormatInt(*spec.Seed, 10))
	}
	addStringFlag(&args, spec.Pattern, "--pattern")
	addStringFlag(&args, spec.Hex, "--hex")
	addStringFlag(&args, spec.Integers, "--integers")
	if spec.Width != nil {
		args = append(args, "-w", strconv.Itoa(*spec.Width))
	}
	addStringFlag(&args, spec.Endianness, "-e")
	return CommandSpec{Args: args}
}

func addStringFlag(args *[]string, val *string, flag string) {
	if val != nil && *val != "" {
		*args = append(*args, flag, *val)
	}
}

func shellQuote(arg string) string {
	if arg == "" {
		return "''"
	}
	if strings.IndexFunc(arg, needsQuote) < 0 {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("-_./,:=+", r):
		return false
	}
	return true
}
