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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/onflow/numeral"
	"github.com/onflow/numeral/pretty"
	"github.com/onflow/numeral/repl"
)

const replLocation = "REPL"

const replAssistanceMessage = `Type '.help' for assistance.`

type replCommand struct {
	name        string
	description string
	handler     func(r *repl.REPL)
}

var replCommands []replCommand

func init() {
	replCommands = []replCommand{
		{
			name:        ".help",
			description: "Print the help message",
			handler: func(_ *repl.REPL) {
				printReplHelp()
			},
		},
		{
			name:        ".vars",
			description: "Print the declared variables",
			handler: func(r *repl.REPL) {
				for _, suggestion := range r.Suggestions() {
					fmt.Printf(
						"%s = %s\n",
						suggestion.Name,
						colorizeResult(suggestion.Description),
					)
				}
			},
		},
		{
			name:        ".exit",
			description: "Exit the interpreter",
			handler: func(_ *repl.REPL) {
				os.Exit(0)
			},
		},
	}
}

func runREPL() {
	printReplWelcome()

	lineNumber := 1

	errorPrettyPrinter := pretty.NewErrorPrettyPrinter(os.Stderr, true)

	r := repl.NewREPL(
		func(err error, code string) {
			printErr := errorPrettyPrinter.PrettyPrintError(err, replLocation, []byte(code))
			if printErr != nil {
				panic(printErr)
			}
		},
		func(value numeral.Number) {
			fmt.Println(formatResult(value))
		},
		nil,
	)

	executor := func(line string) {
		defer func() {
			lineNumber++
		}()

		if strings.HasPrefix(line, ".") {
			handleCommand(r, line)
			return
		}

		if strings.TrimSpace(line) == "" {
			return
		}

		// Prefix the code with empty lines,
		// so that error messages match the prompt's line numbers

		code := strings.Repeat("\n", lineNumber-1) + line

		r.Accept(code)
	}

	suggest := func(d prompt.Document) []prompt.Suggest {
		wordBeforeCursor := d.GetWordBeforeCursor()
		if len(wordBeforeCursor) == 0 {
			return nil
		}

		var suggests []prompt.Suggest

		if strings.HasPrefix(wordBeforeCursor, ".") {
			for _, command := range replCommands {
				suggests = append(suggests, prompt.Suggest{
					Text:        command.name,
					Description: command.description,
				})
			}
		} else {
			for _, suggestion := range r.Suggestions() {
				suggests = append(suggests, prompt.Suggest{
					Text:        suggestion.Name,
					Description: suggestion.Description,
				})
			}
		}

		return prompt.FilterHasPrefix(suggests, wordBeforeCursor, false)
	}

	changeLivePrefix := func() (string, bool) {
		return fmt.Sprintf("%d> ", lineNumber), true
	}

	options := []prompt.Option{
		prompt.OptionLivePrefix(changeLivePrefix),
	}
	prompt.New(executor, suggest, options...).Run()
}

func handleCommand(r *repl.REPL, command string) {
	for _, replCommand := range replCommands {
		if command == replCommand.name {
			replCommand.handler(r)
			return
		}
	}

	message := fmt.Sprintf("Unknown command. %s", replAssistanceMessage)
	if closestCommand := findClosestCommand(command); closestCommand != "" {
		message = fmt.Sprintf(
			"Unknown command. Did you mean `%s`? %s",
			closestCommand,
			replAssistanceMessage,
		)
	}
	fmt.Println(colorizeError(message))
}

// findClosestCommand returns the command closest to the given input,
// or the empty string if none is close enough
func findClosestCommand(input string) (closestCommand string) {
	inputRunes := []rune(input)

	closestDistance := len(input)

	for _, command := range replCommands {
		distance := levenshtein.DistanceForStrings(
			inputRunes,
			[]rune(command.name),
			levenshtein.DefaultOptions,
		)

		if distance < closestDistance && distance < len(command.name) {
			closestCommand = command.name
			closestDistance = distance
		}
	}

	return
}

func printReplHelp() {
	fmt.Println("\nEnter statements to evaluate them.\nCommands are prefixed with a dot. Valid commands are:")
	fmt.Println()
	for _, command := range replCommands {
		fmt.Printf("%-10s %s\n", command.name, command.description)
	}
	fmt.Println("\nPress ^C to abort the current expression, ^D to exit")
}

func printReplWelcome() {
	fmt.Printf("Welcome to Numeral!\n%s\n\n", replAssistanceMessage)
}
