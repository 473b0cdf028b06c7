/*
 * handy.go, part of gokin.
 *
 * Copyright 2012-2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package chem

import (
	"fmt"
	"strings"
)

//CError is the general error type for the chem package. It fulfills chem.Error and chem.ParseError
type CError struct {
	msg  string
	line int
	deco []string
}

func (err CError) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("%s (line %d)", err.msg, err.line)
	}
	return err.msg
}

//Decorate adds new information to the error
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Line returns the line of the text representation where the error was found, or 0.
func (err CError) Line() int { return err.line }

func newCError(msg string, line int, caller string) *CError {
	err := &CError{msg: msg, line: line}
	err.Decorate(caller)
	return err
}

//errDecorate is a helper function that decorates the error with the caller's name before returning it.
//errors that don't implement chem.Error are returned unchanged.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//chargeString writes a formal charge the way adjacency lists want it: c0, c+1, c-2.
func chargeString(c int) string {
	if c > 0 {
		return fmt.Sprintf("c+%d", c)
	}
	return fmt.Sprintf("c%d", c)
}

//isAtomLine tells whether a line of text looks like an adjacency list atom line,
//i.e. it starts with an integer index.
func isAtomLine(line string) bool {
	f := strings.Fields(line)
	if len(f) < 2 {
		return false
	}
	for _, r := range f[0] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
