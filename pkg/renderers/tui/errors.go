package tui

import (
	"errors"

	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted reports that the user aborted a prompt (Ctrl+C).
var ErrInterrupted = errors.New("tui: prompt interrupted")

func translateSurveyErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}
