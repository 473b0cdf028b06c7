/*
 * doc.go, part of gokin.
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

/*Package chem is the molecular model of gokin. It provides atom, bond and molecule
structures for the small species that take part in gas-phase reactions, and reads and writes
them as adjacency lists.


	**gokin capabilities**


    Reads adjacency lists in both the current and the legacy dialect, optionally adding the
    implicit hydrogens.

    Writes adjacency lists with or without explicit hydrogens, in either dialect.

    Tests molecules for graph isomorphism and enumerates resonance structures
    (package chemgraph).

    Holds reactions, species and Arrhenius kinetics (package rxn).

    Reconciles forward and reverse kinetics estimates coming from reaction families
    (package reconcile).

    Queries a legacy kinetics estimator over its plain-text TCP protocol
    (package estimator).

    Plots Arrhenius curves (package chemplot).


Atoms in a Molecule are indexed from 0 in Go, but adjacency lists number them from 1.
The conversion is done only when reading and writing.

*/
package chem
