/*
 * errors.go, part of gokin.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package estimator

import (
	"errors"
	"fmt"
)

var (
	//ErrNoReactants is returned when a request is built without reactants.
	ErrNoReactants = errors.New("no reactants given")
	//ErrOffline means the estimator could not be reached, or the connection failed mid-exchange.
	ErrOffline = errors.New("estimator offline")
	//ErrStalled means the estimator stopped sending data without closing the connection.
	ErrStalled = errors.New("estimator stalled")
	//ErrBreakerOpen means recent exchanges failed and the estimator is not being contacted for a while.
	ErrBreakerOpen = errors.New("estimator circuit breaker open")
	//ErrFraming means the response doesn't have the expected species/reactions structure.
	ErrFraming = errors.New("malformed estimator response")
	//ErrUnresolvedProducts means some requested product is not in the estimator's dictionary.
	ErrUnresolvedProducts = errors.New("requested products not found in estimator dictionary")
	//ErrNoReactions means the estimator knows no reaction matching the query.
	ErrNoReactions = errors.New("no matching reactions from estimator")
)

//LineError is a reaction line that could not be used.
type LineError struct {
	Line   int //0-based, among the reaction lines
	Text   string
	Reason string
}

func (E LineError) Error() string {
	return fmt.Sprintf("reaction line %d: %s", E.Line, E.Reason)
}
