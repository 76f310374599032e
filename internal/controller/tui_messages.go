package controller

import (
	"time"

	m "github.com/mouse-blink/pikescope/internal/model"
)

// Message types.
type tickMsg time.Time

// List item types.
type symbolItem struct {
	symbol   m.Symbol
	location string
	shadows  int
}

func (s symbolItem) FilterValue() string {
	return s.symbol.Name
}
