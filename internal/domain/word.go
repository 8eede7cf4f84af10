package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Bounds for a single generation request
const (
	MinWordCount = 1
	MaxWordCount = 1000
)

var (
	// ErrInvalidCount is matched by every *CountError
	ErrInvalidCount = errors.New("invalid word count")
	// ErrWordIndex is returned when removing a word that is not in the batch
	ErrWordIndex = errors.New("word index out of range")
)

// CountError describes a rejected word count
type CountError struct {
	Input  string
	Reason string
}

func (e *CountError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidCount, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", ErrInvalidCount, e.Input, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidCount) match
func (e *CountError) Is(target error) bool {
	return target == ErrInvalidCount
}

// ParseCount converts user input into a validated word count
func ParseCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &CountError{Reason: "count is required"}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &CountError{Input: raw, Reason: "not a whole number"}
	}

	if err := ValidateCount(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateCount checks that n is within [MinWordCount, MaxWordCount]
func ValidateCount(n int) error {
	switch {
	case n < MinWordCount:
		return &CountError{
			Input:  strconv.Itoa(n),
			Reason: fmt.Sprintf("must be at least %d", MinWordCount),
		}
	case n > MaxWordCount:
		return &CountError{
			Input:  strconv.Itoa(n),
			Reason: fmt.Sprintf("must be at most %d", MaxWordCount),
		}
	}
	return nil
}

// Batch is one generated word list as shown to a user.
// A Batch is a value: Remove returns a new Batch with a fresh ID so that
// controls rendered for the old list can be told apart.
type Batch struct {
	ID    uuid.UUID
	Words []string
}

// NewBatch copies words into a new batch
func NewBatch(words []string) Batch {
	w := make([]string, len(words))
	copy(w, words)
	return Batch{ID: uuid.New(), Words: w}
}

// Len returns the number of words
func (b Batch) Len() int {
	return len(b.Words)
}

// Empty reports whether the batch has no words
func (b Batch) Empty() bool {
	return len(b.Words) == 0
}

// Remove returns a copy of the batch without the word at index i
func (b Batch) Remove(i int) (Batch, error) {
	if i < 0 || i >= len(b.Words) {
		return b, fmt.Errorf("%w: %d (batch has %d words)", ErrWordIndex, i+1, len(b.Words))
	}

	w := make([]string, 0, len(b.Words)-1)
	w = append(w, b.Words[:i]...)
	w = append(w, b.Words[i+1:]...)
	return Batch{ID: uuid.New(), Words: w}, nil
}

// Joined returns the words one per line, ready for copying
func (b Batch) Joined() string {
	return strings.Join(b.Words, "\n")
}

// Clone returns a deep copy that keeps the same ID
func (b Batch) Clone() Batch {
	if b.Words == nil {
		return Batch{ID: b.ID}
	}
	w := make([]string, len(b.Words))
	copy(w, b.Words)
	return Batch{ID: b.ID, Words: w}
}
