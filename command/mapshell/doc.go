// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Line oriented driver for the ordered map
//
// Reads commands, one per line, from a script file or standard input
// and applies them to a single map of string keys to string values,
// writing one result line per query to standard output.
//
//   # comment
//   put one 1
//   put three the value is the rest of the line
//   get one
//   keys
//   deletemin
//   check
//
// Run with --help for the options and "help" as a command for the
// list of commands.
package main
