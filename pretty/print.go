/*
 * Numeral - Exact arithmetic for positional numerals
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package pretty

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"

	"github.com/onflow/numeral/ast"
	"github.com/onflow/numeral/errors"
)

const errorPrefix = "error"
const excerptArrow = "--> "

func FormatErrorMessage(prefix string, message string, useColor bool) string {
	if useColor {
		prefix = colorizeError(prefix)
		message = colorizeMessage(message)
	}
	return prefix + ": " + message + "\n"
}

func colorizeError(message string) string {
	return aurora.Colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
}

func colorizeMessage(message string) string {
	return aurora.Bold(message).String()
}

func colorizeMeta(meta string) string {
	return aurora.Blue(meta).String()
}

func colorizeNote(note string) string {
	return aurora.Colorize(note, aurora.CyanFg|aurora.BoldFm).String()
}

// excerpt is one highlighted section of code:
// the primary location of an error, or the location of one of its notes
type excerpt struct {
	startPos *ast.Position
	endPos   *ast.Position
	message  string
	isError  bool
}

func newExcerpt(obj any, message string, isError bool) excerpt {
	excerpt := excerpt{
		message: message,
		isError: isError,
	}
	if positioned, hasPosition := obj.(ast.HasPosition); hasPosition {
		startPos := positioned.StartPosition()
		excerpt.startPos = &startPos

		endPos := positioned.EndPosition(nil)
		excerpt.endPos = &endPos
	}
	return excerpt
}

type excerptsByStartPos []excerpt

func (e excerptsByStartPos) Len() int {
	return len(e)
}

func (e excerptsByStartPos) Swap(i, j int) {
	e[i], e[j] = e[j], e[i]
}

func (e excerptsByStartPos) Less(i, j int) bool {
	firstPos := e[i].startPos
	secondPos := e[j].startPos
	switch {
	case firstPos == nil:
		return true
	case secondPos == nil:
		return false
	default:
		return firstPos.Compare(*secondPos) < 0
	}
}

type ErrorPrettyPrinter struct {
	writer   io.Writer
	useColor bool
}

func NewErrorPrettyPrinter(writer io.Writer, useColor bool) ErrorPrettyPrinter {
	return ErrorPrettyPrinter{
		writer:   writer,
		useColor: useColor,
	}
}

func (p ErrorPrettyPrinter) writeString(str string) error {
	_, err := p.writer.Write([]byte(str))
	return err
}

// PrettyPrintError writes a human-readable rendering of the given error,
// including a code excerpt when the error provides a position within code.
// Child errors of a parent error are printed in order, separated by blank lines.
func (p ErrorPrettyPrinter) PrettyPrintError(err error, location string, code []byte) error {

	printed := 0

	var printError func(err error) error
	printError = func(err error) error {

		if parentError, ok := err.(errors.ParentError); ok {
			for _, childError := range parentError.ChildErrors() {
				err := printError(childError)
				if err != nil {
					return err
				}
			}
			return nil
		}

		if printed > 0 {
			err := p.writeString("\n")
			if err != nil {
				return err
			}
		}
		printed++

		return p.prettyPrintError(err, location, code)
	}

	return printError(err)
}

func (p ErrorPrettyPrinter) prettyPrintError(err error, location string, code []byte) error {

	// writing to a string builder first, then to the writer,
	// ensures each error is written as one piece

	var sb strings.Builder

	sb.WriteString(FormatErrorMessage(errorPrefix, err.Error(), p.useColor))

	message := ""
	if secondaryError, ok := err.(errors.SecondaryError); ok {
		message = secondaryError.SecondaryError()
	}

	primary := newExcerpt(err, message, true)

	excerpts := []excerpt{primary}

	if errorNotes, ok := err.(errors.ErrorNotes); ok {
		for _, errorNote := range errorNotes.ErrorNotes() {
			excerpts = append(
				excerpts,
				newExcerpt(errorNote, errorNote.Message(), false),
			)
		}
	}

	sort.Sort(excerptsByStartPos(excerpts))

	p.writeCodeExcerpts(&sb, primary.startPos, excerpts, location, code)

	return p.writeString(sb.String())
}

func (p ErrorPrettyPrinter) writeCodeExcerpts(
	sb *strings.Builder,
	primaryStartPos *ast.Position,
	excerpts []excerpt,
	location string,
	code []byte,
) {
	lines := strings.Split(string(code), "\n")

	maxLineNumberLength := 1
	for _, excerpt := range excerpts {
		if excerpt.startPos == nil {
			continue
		}
		lineNumberLength := len(strconv.Itoa(excerpt.startPos.Line))
		if lineNumberLength > maxLineNumberLength {
			maxLineNumberLength = lineNumberLength
		}
	}

	// the arrow line names the position of the error itself,
	// independent of the order the excerpts are shown in
	p.writeCodeExcerptLocation(sb, maxLineNumberLength, location, primaryStartPos)

	for _, excerpt := range excerpts {

		if excerpt.startPos == nil ||
			excerpt.startPos.Line < 1 ||
			excerpt.startPos.Line > len(lines) {

			continue
		}

		lineNumber := excerpt.startPos.Line
		line := lines[lineNumber-1]

		// empty line before the code line: `  |`
		p.writeCodeExcerptEmptyLine(sb, maxLineNumberLength)

		// line number and code: `1 | let x = 1`
		lineNumberString := fmt.Sprintf("%*d | ", maxLineNumberLength, lineNumber)
		if p.useColor {
			lineNumberString = colorizeMeta(lineNumberString)
		}
		sb.WriteString(lineNumberString)
		sb.WriteString(line)
		sb.WriteByte('\n')

		// markers below the code line: `  |    ^^^ message`
		p.writeCodeExcerptMarkers(sb, maxLineNumberLength, excerpt, line)
	}
}

func (p ErrorPrettyPrinter) writeCodeExcerptLocation(
	sb *strings.Builder,
	maxLineNumberLength int,
	location string,
	startPos *ast.Position,
) {
	if location == "" {
		return
	}

	// write arrow, location, and position: ` --> REPL:1:0`
	for i := 0; i < maxLineNumberLength; i++ {
		sb.WriteByte(' ')
	}
	arrow := excerptArrow
	if p.useColor {
		arrow = colorizeMeta(arrow)
	}
	sb.WriteString(arrow)
	sb.WriteString(location)
	if startPos != nil {
		_, _ = fmt.Fprintf(sb, ":%d:%d", startPos.Line, startPos.Column)
	}
	sb.WriteByte('\n')
}

func (p ErrorPrettyPrinter) writeCodeExcerptEmptyLine(
	sb *strings.Builder,
	maxLineNumberLength int,
) {
	emptyLine := fmt.Sprintf("%*s |", maxLineNumberLength, "")
	if p.useColor {
		emptyLine = colorizeMeta(emptyLine)
	}
	sb.WriteString(emptyLine)
	sb.WriteByte('\n')
}

func (p ErrorPrettyPrinter) writeCodeExcerptMarkers(
	sb *strings.Builder,
	maxLineNumberLength int,
	excerpt excerpt,
	line string,
) {
	columnsAndSpaces := fmt.Sprintf("%*s | ", maxLineNumberLength, "")
	if p.useColor {
		columnsAndSpaces = colorizeMeta(columnsAndSpaces)
	}
	sb.WriteString(columnsAndSpaces)

	startColumn := excerpt.startPos.Column
	if startColumn > len(line) {
		startColumn = len(line)
	}

	// tabs stay tabs, so the markers line up with the code line above
	for _, c := range line[:startColumn] {
		if c == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}

	endColumn := startColumn
	if excerpt.endPos != nil {
		if excerpt.endPos.Line == excerpt.startPos.Line {
			endColumn = excerpt.endPos.Column
		} else {
			endColumn = len(line) - 1
		}
	}
	if endColumn >= len(line) {
		endColumn = len(line) - 1
	}
	if endColumn < startColumn {
		endColumn = startColumn
	}

	markers := strings.Repeat("^", endColumn-startColumn+1)
	if excerpt.message != "" {
		markers += " " + excerpt.message
	}
	if p.useColor {
		if excerpt.isError {
			markers = colorizeError(markers)
		} else {
			markers = colorizeNote(markers)
		}
	}
	sb.WriteString(markers)
	sb.WriteByte('\n')
}
