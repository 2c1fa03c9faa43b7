// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedmap/fault"
)

const (
	absent      = "(absent)"
	okResult    = "ok"
	errorPrefix = "error: "
)

// a shell command, arguments is the exact number of words following
// the command, except that the last one takes the rest of the line
type command struct {
	arguments int
	mutates   bool
	usage     string
	run       func(s *shell, arguments []string) error
}

var commands = map[string]command{
	"put": {2, true, "put KEY VALUE", func(s *shell, a []string) error {
		s.store.Put(a[0], a[1])
		return nil
	}},
	"get": {1, false, "get KEY", func(s *shell, a []string) error {
		value, ok := s.store.Get(a[0])
		if !ok {
			value = absent
		}
		s.println(value)
		return nil
	}},
	"contains": {1, false, "contains KEY", func(s *shell, a []string) error {
		s.println(strconv.FormatBool(s.store.Contains(a[0])))
		return nil
	}},
	"delete": {1, true, "delete KEY", func(s *shell, a []string) error {
		s.store.Delete(a[0])
		return nil
	}},
	"deletemin": {0, true, "deletemin", func(s *shell, _ []string) error {
		return underflow(s.store.DeleteMin)
	}},
	"deletemax": {0, true, "deletemax", func(s *shell, _ []string) error {
		return underflow(s.store.DeleteMax)
	}},
	"min": {0, false, "min", func(s *shell, _ []string) error {
		s.printKey(s.store.Min())
		return nil
	}},
	"max": {0, false, "max", func(s *shell, _ []string) error {
		s.printKey(s.store.Max())
		return nil
	}},
	"keys": {0, false, "keys", func(s *shell, _ []string) error {
		s.println(strings.Join(s.store.Keys(), " "))
		return nil
	}},
	"size": {0, false, "size", func(s *shell, _ []string) error {
		s.println(strconv.Itoa(s.store.Size()))
		return nil
	}},
	"empty": {0, false, "empty", func(s *shell, _ []string) error {
		s.println(strconv.FormatBool(s.store.IsEmpty()))
		return nil
	}},
	"select": {1, false, "select INDEX", func(s *shell, a []string) error {
		index, err := strconv.Atoi(a[0])
		if nil != err {
			return fault.ErrInvalidIndex
		}
		key, value, ok := s.store.Select(index)
		if !ok {
			s.println(absent)
			return nil
		}
		s.println(key + " " + value)
		return nil
	}},
	"rank": {1, false, "rank KEY", func(s *shell, a []string) error {
		index, found := s.store.Rank(a[0])
		s.println(fmt.Sprintf("%d %t", index, found))
		return nil
	}},
	"height": {0, false, "height", func(s *shell, _ []string) error {
		s.println(strconv.Itoa(s.store.Height()))
		return nil
	}},
	"check": {0, false, "check", func(s *shell, _ []string) error {
		if err := s.store.Check(); nil != err {
			return err
		}
		s.println(okResult)
		return nil
	}},
	"print": {0, false, "print", func(s *shell, _ []string) error {
		s.store.Print(s.out, s.printData)
		return nil
	}},
	"clear": {0, true, "clear", func(s *shell, _ []string) error {
		s.store.Clear()
		return nil
	}},
}

// help lists the table so cannot be part of its initialiser
func init() {
	commands["help"] = command{0, false, "help", func(s *shell, _ []string) error {
		usage := make([]string, 0, len(commands))
		for _, c := range commands {
			usage = append(usage, c.usage)
		}
		sort.Strings(usage)
		for _, u := range usage {
			s.println(u)
		}
		return nil
	}}
}

// to hold the shell state
type shell struct {
	store     Store
	out       io.Writer
	log       *logger.L
	check     bool
	echo      bool
	printData bool
}

func newShell(store Store, out io.Writer, log *logger.L, options *Configuration) *shell {
	return &shell{
		store:     store,
		out:       out,
		log:       log,
		check:     options.Check,
		echo:      options.Echo,
		printData: options.PrintData,
	}
}

// Run - execute every line from the reader
// returns the number of lines that produced an error
func (s *shell) Run(in io.Reader) (int, error) {
	errors := 0
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		if s.echo {
			s.println("> " + line)
		}
		if err := s.execute(line); nil != err {
			errors += 1
			s.println(errorPrefix + err.Error())
			if nil != s.log {
				s.log.Warnf("line: %d  command: %q  error: %s", lineNumber, line, err)
			}
		}
	}
	return errors, scanner.Err()
}

// run a single non-blank line
func (s *shell) execute(line string) error {
	name, rest := cut(line)
	c, ok := commands[strings.ToLower(name)]
	if !ok {
		return fault.ErrUnknownCommand
	}

	arguments, err := split(rest, c.arguments)
	if nil != err {
		return err
	}

	if nil != s.log {
		s.log.Debugf("command: %s  arguments: %q", name, arguments)
	}
	if err := c.run(s, arguments); nil != err {
		return err
	}

	if c.mutates && s.check {
		if err := s.store.Check(); nil != err {
			if nil != s.log {
				s.log.Errorf("check failed after: %q  error: %s", line, err)
			}
			return err
		}
	}
	return nil
}

// split exactly n arguments, the last one takes the rest of the line
func split(text string, n int) ([]string, error) {
	arguments := make([]string, 0, n)
	for i := 0; i < n; i += 1 {
		if "" == text {
			return nil, fault.ErrWrongArgumentCount
		}
		if i == n-1 {
			arguments = append(arguments, text)
			text = ""
			break
		}
		var word string
		word, text = cut(text)
		arguments = append(arguments, word)
	}
	if "" != text {
		return nil, fault.ErrWrongArgumentCount
	}
	return arguments, nil
}

// first word and the remainder with leading space removed
func cut(text string) (string, string) {
	i := strings.IndexAny(text, " \t")
	if i < 0 {
		return text, ""
	}
	return text[:i], strings.TrimLeft(text[i:], " \t")
}

// convert the underflow panic to an error, anything else is logged to
// the PANIC channel and aborts
func underflow(fn func()) (err error) {
	defer func() {
		if r := recover(); nil != r {
			if e, ok := r.(error); ok && e == fault.ErrTreeUnderflow {
				err = e
				return
			}
			fault.Panicf("unexpected panic: %v", r)
		}
	}()
	fn()
	return nil
}

func (s *shell) printKey(key string, ok bool) {
	if !ok {
		key = absent
	}
	s.println(key)
}

func (s *shell) println(text string) {
	fmt.Fprintln(s.out, text)
}
