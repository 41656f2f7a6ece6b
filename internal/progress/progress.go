// Package progress wraps a terminal progress bar for batch walks.
package progress

import (
	"io"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

// Bar counts walked maps.
type Bar struct {
	bar *progressbar.ProgressBar
}

const width = 40

var theme = progressbar.Theme{
	Saucer:        "=",
	SaucerHead:    ">",
	SaucerPadding: " ",
	BarStart:      "[",
	BarEnd:        "]",
}

// New creates a bar like this on w:
// walking maps  60% [========================>                ] (6/10)
func New(w io.Writer, total int, describe string) *Bar {
	return &Bar{
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetWidth(width),
			progressbar.OptionSetTheme(theme),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription(describe),
			progressbar.OptionClearOnFinish(),
		),
	}
}

// Increment adds one finished map.
func (b *Bar) Increment() {
	if b == nil {
		return
	}
	if err := b.bar.Add(1); err != nil {
		logrus.Errorf("failed to increment progress bar, err: %s", err)
	}
}

// Finish completes the bar.
func (b *Bar) Finish() {
	if b == nil {
		return
	}
	if err := b.bar.Finish(); err != nil {
		logrus.Errorf("failed to finish progress bar, err: %s", err)
	}
}
