// logger
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
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

var OutputMode *string // verbose or quiet

var LogFile = "log.bodCalc" // Appended to by every run in the working directory

var exit = os.Exit

// Mode reports the output mode, quiet when no flag was wired up
func Mode() string {
	if OutputMode == nil {
		return "quiet"
	}
	return *OutputMode
}

func Verbose() bool {
	return Mode() == "verbose"
}

func open() (io.WriteCloser, error) {
	return os.OpenFile(LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}

func LogWriter(message string) {
	f, err := open()
	if err != nil {
		log.Println(err)
		return
	}
	defer f.Close()

	logger := log.New(f, "bodCalc ", log.LstdFlags)
	logger.Println(message)
}

// Printf style LogWriter
func LogWriterf(format string, a ...interface{}) {
	LogWriter(fmt.Sprintf(format, a...))
}

func LogWriterFatal(message string) {
	f, err := open()
	if err != nil {
		log.Println(err)
	} else {
		logger := log.New(f, "bodCalc ", log.LstdFlags)
		logger.Println(message)
		f.Close()
	}

	if Verbose() {
		fmt.Println(message)
	} else {
		fmt.Fprintln(os.Stderr, message)
	}
	exit(1)
}
