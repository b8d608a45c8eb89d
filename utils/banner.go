package utils

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

var activeSpinner *spinner.Spinner

func DrawBanner() {
	figure.NewColorFigure("Cloud Optimizer", "", "green", true).Print()
}

func StartSpinner() {
	activeSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	activeSpinner.Suffix = " Querying cloud providers..."
	activeSpinner.Start()
}

func StopSpinner() {
	if activeSpinner != nil {
		activeSpinner.Stop()
	}
}
