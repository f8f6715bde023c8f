// bod errors
/*
Copyright 2021 Bruce Golden and Matt Spangler

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files (the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions:
The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/
package bod

import (
	"errors"
	"fmt"

	"github.com/gbads/bodEngine/breedStd"
)

var (
	// A scenario parameter is missing or outside its domain
	ErrConfiguration = errors.New("configuration error")

	// Zero or negative head placed, gmax or production that would make a ratio undefined
	ErrDegenerateInput = errors.New("degenerate scenario")

	// Breed standard queried outside the covered days or feed intake
	ErrOutOfRange = breedStd.ErrOutOfRange
)

// RowError ties a failure to the production record it came from.
type RowError struct {
	Row     int // 0 based position in the input record set
	Country string
	Species Species
	Year    int
	Err     error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (%s %s %d): %v", e.Row, e.Country, e.Species, e.Year, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

func configError(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, a...))
}

func degenerate(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDegenerateInput, fmt.Sprintf(format, a...))
}
