package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/gookit/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rocketscienceinc/console-games/internal/apperror"
)

const (
	clearScreen = "\033[H\033[2J"
	defaultFont = "standard"
)

// Settings - presentation switches taken from config.
type Settings struct {
	Color bool
	Clear bool
	Font  string
}

// Console - line-based prompts and output for the game programs.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	settings Settings
	printer  *message.Printer
	terminal bool
}

func New(in io.Reader, out io.Writer, settings Settings) *Console {
	if _, err := figure.AssetInfo(path.Join("fonts", settings.Font+".flf")); err != nil {
		settings.Font = defaultFont
	}

	return &Console{
		in:       bufio.NewReader(in),
		out:      out,
		settings: settings,
		printer:  message.NewPrinter(language.AmericanEnglish),
		terminal: isTerminal(out),
	}
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func (that *Console) Print(a ...any) {
	fmt.Fprint(that.out, a...)
}

func (that *Console) Println(a ...any) {
	fmt.Fprintln(that.out, a...)
}

func (that *Console) Printf(format string, a ...any) {
	fmt.Fprintf(that.out, format, a...)
}

// Prompt - writes the question and reads one trimmed line.
// A closed input with nothing left to read returns apperror.ErrInputClosed.
func (that *Console) Prompt(question string) (string, error) {
	that.Print(question)

	line, err := that.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		if line == "" {
			return "", apperror.ErrInputClosed
		}
	}

	return strings.TrimSpace(line), nil
}

// Choose - re-prompts with invalid until the answer is one of options.
func (that *Console) Choose(question, invalid string, options ...string) (string, error) {
	answer, err := that.Prompt(question)
	for err == nil && !slices.Contains(options, answer) {
		answer, err = that.Prompt(invalid)
	}

	return answer, err
}

// YesNo - strict y/yes/n/no answer, case-insensitive.
func (that *Console) YesNo(question, invalid string) (bool, error) {
	answer, err := that.Prompt(question)
	for err == nil && !isYesNo(answer) {
		answer, err = that.Prompt(invalid)
	}

	if err != nil {
		return false, err
	}

	return isYes(answer), nil
}

// Confirm - y or yes is true, anything else is false.
func (that *Console) Confirm(question string) (bool, error) {
	answer, err := that.Prompt(question)
	if err != nil {
		return false, err
	}

	return isYes(answer), nil
}

func isYes(answer string) bool {
	answer = strings.ToLower(answer)

	return answer == "y" || answer == "yes"
}

func isYesNo(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes", "n", "no":
		return true
	default:
		return false
	}
}

// PositiveInt - re-prompts with retry until the answer is an integer >= 1.
func (that *Console) PositiveInt(question, retry string) (int, error) {
	answer, err := that.Prompt(question)
	for err == nil {
		if value, convErr := strconv.Atoi(answer); convErr == nil && value >= 1 {
			return value, nil
		}

		answer, err = that.Prompt(retry)
	}

	return 0, err
}

// NonNegativeFloat - re-prompts with retry until the answer is a finite number >= 0.
func (that *Console) NonNegativeFloat(question, retry string) (float64, error) {
	answer, err := that.Prompt(question)
	for err == nil {
		value, convErr := strconv.ParseFloat(answer, 64)
		if convErr == nil && !math.IsNaN(value) && !math.IsInf(value, 0) && value >= 0 {
			return value, nil
		}

		answer, err = that.Prompt(retry)
	}

	return 0, err
}

// Clear - clears the screen when writing to a terminal.
func (that *Console) Clear() {
	if that.settings.Clear && that.terminal {
		that.Print(clearScreen)
	}
}

// Banner - prints text in a large FIGlet font, one figure per "\n"-separated line.
func (that *Console) Banner(text string) {
	var builder strings.Builder

	builder.WriteString("\n")

	for _, line := range strings.Split(text, "\n") {
		builder.WriteString(figure.NewFigure(line, that.settings.Font, false).String())
	}

	that.Println(builder.String())
}

// Money - formats an amount as US dollars with thousands separators.
func (that *Console) Money(amount float64) string {
	return that.printer.Sprintf("$%.2f", amount)
}

// Colorize - renders text in style when colour output is on.
func (that *Console) Colorize(text string, style color.Color) string {
	if !that.settings.Color {
		return text
	}

	return style.Sprint(text)
}
