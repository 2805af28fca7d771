// Package service holds domain services: algorithms that coordinate more
// than one model type (a Cursor against a TextBuffer's content, or an
// insertion against a TextBuffer, its Views, and its Cursors all at once).
package service

import (
	"fmt"

	"github.com/A1-Triard/xelicon/domain/model"
	"github.com/A1-Triard/xelicon/domain/value"
	"github.com/A1-Triard/xelicon/internal/grapheme"
)

// NavigationService moves a Cursor across a TextBuffer's content, keeping
// column/index duality and the sticky-column contract (spec.md §4.5).
type NavigationService struct{}

// NewNavigationService creates a navigation service. It holds no state of
// its own; every call takes the buffer and cursor it operates on.
func NewNavigationService() *NavigationService {
	return &NavigationService{}
}

// MoveRight advances the cursor by one grapheme, or by one virtual space if
// it is already past the end of the line. Never refuses to move; only Oom
// on counter overflow.
func (s *NavigationService) MoveRight(buf *model.TextBuffer, c *model.Cursor) error {
	if c.Spaces > 0 {
		column, ok := value.CheckedAdd(c.Column, 1)
		if !ok {
			return fmt.Errorf("move_right: %w", value.ErrOom)
		}
		spaces, ok := value.CheckedAdd(c.Spaces, 1)
		if !ok {
			return fmt.Errorf("move_right: %w", value.ErrOom)
		}
		c.Column, c.Spaces, c.Offset = column, spaces, 0
		return nil
	}

	rng, _ := buf.LineRangeAt(c.Line)
	end := model.ContentEnd(buf.Content(), buf.LineBreak(), rng)
	cluster, ok := grapheme.Next(buf.Content()[c.Index:end])
	if ok {
		index, ok := value.CheckedAdd(c.Index, cluster.Len)
		if !ok {
			return fmt.Errorf("move_right: %w", value.ErrOom)
		}
		column, ok := value.CheckedAdd(c.Column, grapheme.Width(cluster.Text))
		if !ok {
			return fmt.Errorf("move_right: %w", value.ErrOom)
		}
		c.Index, c.Column, c.Offset = index, column, 0
		return nil
	}

	// End of line: enter virtual-spaces mode with one space.
	column, ok := value.CheckedAdd(c.Column, 1)
	if !ok {
		return fmt.Errorf("move_right: %w", value.ErrOom)
	}
	c.Column, c.Spaces, c.Offset = column, 1, 0
	return nil
}

// MoveLeft retreats the cursor by one virtual space or one grapheme.
// Reports false and leaves the cursor unchanged if it is already at the
// start of its line.
func (s *NavigationService) MoveLeft(buf *model.TextBuffer, c *model.Cursor) bool {
	if c.Spaces > 0 {
		c.Column--
		c.Spaces--
		c.Offset = 0
		return true
	}

	rng, _ := buf.LineRangeAt(c.Line)
	cluster, ok := grapheme.Prev(buf.Content()[rng.Start:c.Index])
	if !ok {
		return false
	}
	c.Index -= cluster.Len
	c.Column -= grapheme.Width(cluster.Text)
	c.Offset = 0
	return true
}

// MoveDown moves the cursor to the next line, landing on the sticky
// column = Column + Offset. Reports false without moving if there is no
// next line.
func (s *NavigationService) MoveDown(buf *model.TextBuffer, c *model.Cursor) (bool, error) {
	nextLine := c.Line + 1
	if _, ok := buf.LineRangeAt(nextLine); !ok {
		return false, nil
	}
	if err := landOnLine(buf, c, nextLine); err != nil {
		return false, err
	}
	return true, nil
}

// MoveUp moves the cursor to the previous line, landing on the sticky
// column. Reports false without moving if already on line 0.
func (s *NavigationService) MoveUp(buf *model.TextBuffer, c *model.Cursor) bool {
	if c.Line == 0 {
		return false
	}
	// Landing on a strictly smaller line number can never overflow a
	// counter, so the error return from landOnLine is unreachable here.
	_ = landOnLine(buf, c, c.Line-1)
	return true
}

// landOnLine moves c onto logical line n, choosing the grapheme (or
// virtual-space position) whose span covers the cursor's sticky desired
// column (spec.md §4.5).
func landOnLine(buf *model.TextBuffer, c *model.Cursor, n int) error {
	desired, ok := value.CheckedAdd(c.Column, c.Offset)
	if !ok {
		return fmt.Errorf("move: %w", value.ErrOom)
	}

	rng, _ := buf.LineRangeAt(n)
	end := model.ContentEnd(buf.Content(), buf.LineBreak(), rng)
	content := buf.Content()

	widthSoFar := 0
	index := rng.Start
	for index < end {
		cluster, ok := grapheme.Next(content[index:end])
		if !ok {
			break
		}
		gw := grapheme.Width(cluster.Text)
		if widthSoFar+gw > desired {
			c.Line = n
			c.Index = index
			c.Column = widthSoFar
			c.Offset = desired - widthSoFar
			c.Spaces = 0
			return nil
		}
		widthSoFar += gw
		index += cluster.Len
	}

	// The line is shorter than desired: land in virtual-spaces mode.
	c.Line = n
	c.Index = end
	c.Column = desired
	c.Offset = 0
	c.Spaces = desired - widthSoFar
	return nil
}
