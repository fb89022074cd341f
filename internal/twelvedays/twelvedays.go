// Package twelvedays builds the cumulative verses of "The Twelve Days of Christmas".
package twelvedays

import (
	"errors"
	"fmt"
	"strings"
)

// Days is the number of verses in the song
const Days = 12

// ErrInvalidDay is returned for day indices outside 0..11
var ErrInvalidDay = errors.New("invalid day")

// Ordinals are the day names as the song has always been printed here,
// including the "thrid" and "eigth" spellings.
var Ordinals = [Days]string{
	"first",
	"second",
	"thrid",
	"fourth",
	"fifth",
	"sixth",
	"seventh",
	"eigth",
	"ninth",
	"tenth",
	"eleventh",
	"twelfth",
}

// CorrectedOrdinals is Ordinals with standard spelling
var CorrectedOrdinals = [Days]string{
	"first",
	"second",
	"third",
	"fourth",
	"fifth",
	"sixth",
	"seventh",
	"eighth",
	"ninth",
	"tenth",
	"eleventh",
	"twelfth",
}

// Gifts are indexed by the day they are first given
var Gifts = [Days]string{
	"a partridge in a pear tree",
	"two turtle doves",
	"three French hens",
	"four calling birds",
	"five golden rings",
	"six geese a-layin'",
	"seven swans a-swimmin'",
	"eight maids a-milkin'",
	"nine lords a-leapin'",
	"ten ladies dancin'",
	"eleven pipers pipin'",
	"twelve drummers drummin'",
}

// Song generates verses from a fixed ordinal table
type Song struct {
	ordinals [Days]string
}

// Option configures a Song
type Option func(*Song)

// WithCorrectedSpelling uses CorrectedOrdinals for day names
func WithCorrectedSpelling() Option {
	return func(s *Song) {
		s.ordinals = CorrectedOrdinals
	}
}

// New creates a Song using Ordinals unless an option says otherwise
func New(opts ...Option) *Song {
	s := &Song{ordinals: Ordinals}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NameForDay returns the ordinal for a zero-based day
func (s *Song) NameForDay(day int) (string, error) {
	if err := checkDay(day); err != nil {
		return "", err
	}
	return s.ordinals[day], nil
}

// GiftForDay returns the gift first given on a zero-based day
func GiftForDay(day int) (string, error) {
	if err := checkDay(day); err != nil {
		return "", err
	}
	return Gifts[day], nil
}

// Verse returns the verse for a zero-based day, ending in a newline.
func (s *Song) Verse(day int) (string, error) {
	name, err := s.NameForDay(day)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "On the %s of Christmas, my true love gave to me ", name)
	for j := day; j >= 0; j-- {
		b.WriteString(separator(day, j))
		b.WriteString(Gifts[j])
	}
	b.WriteString("\n")
	return b.String(), nil
}

// Verses returns all twelve verses in order
func (s *Song) Verses() []string {
	verses := make([]string, 0, Days)
	for day := 0; day < Days; day++ {
		v, _ := s.Verse(day)
		verses = append(verses, v)
	}
	return verses
}

// separator precedes gift j in the verse for day. The j == day case is
// checked first so that day 0 gets a plain line break rather than "and ".
func separator(day, j int) string {
	switch {
	case j == day:
		return "\n"
	case j == 0:
		return "\nand "
	default:
		return ",\n"
	}
}

func checkDay(day int) error {
	if day < 0 || day >= Days {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	return nil
}
