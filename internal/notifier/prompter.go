package notifier

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type implPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter reads answers from in and writes questions to out
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	return &implPrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *implPrompter) URL() (string, error) {
	for {
		answer, err := p.ask("Enter the YouTube URL: ")
		if answer != "" {
			return answer, nil
		}
		if err != nil {
			return "", err
		}
		fmt.Fprintln(p.out, "Please enter a valid YouTube URL.")
	}
}

func (p *implPrompter) QuestionCount() (int, error) {
	for {
		answer, err := p.ask("Number of Questions: ")
		if n, convErr := strconv.Atoi(answer); convErr == nil && n > 0 {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
		fmt.Fprintln(p.out, "Please enter a valid number of questions.")
	}
}

// ConfirmPlainText asks whether to save as .txt; "no" means .docx. Empty answers mean yes.
func (p *implPrompter) ConfirmPlainText() (bool, error) {
	for {
		answer, err := p.ask("Do you want to save the quiz as a .txt file? Answer no to save as a .docx [Y/n]: ")
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "":
			if err != nil {
				return false, err
			}
			return true, nil
		}
		if err != nil {
			return false, err
		}
		fmt.Fprintln(p.out, "Please answer yes or no.")
	}
}

// ask prints question and returns the trimmed answer. A final line without a
// newline is returned together with io.EOF.
func (p *implPrompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), err
}
