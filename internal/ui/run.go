package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"cglogic/internal/driver"
)

// RunCheck runs work with a progress view on out. work receives the sink
// to report into; its events channel is closed when work returns.
// Events that arrive after the view was closed early are drained.
func RunCheck[T any](title string, files []string, out io.Writer, work func(driver.ProgressSink) (T, error)) (T, error) {
	events := make(chan driver.Event, 256)
	type outcome struct {
		res T
		err error
	}
	outcomeCh := make(chan outcome, 1)

	go func() {
		res, err := work(driver.ChannelSink{Ch: events})
		close(events)
		outcomeCh <- outcome{res: res, err: err}
	}()

	program := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(out))
	_, uiErr := program.Run()
	// вид мог закрыться раньше (ctrl+c): дочитываем, чтобы work не заблокировался
	go func() {
		for range events {
		}
	}()
	o := <-outcomeCh
	if uiErr != nil {
		return o.res, uiErr
	}
	return o.res, o.err
}
