/*
 * doc.go, part of gokin.
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

/*Package estimator queries a legacy kinetics estimator that runs as a separate process and
talks a plain-text protocol over TCP.

The request is one block per unique reactant, terminated by an END line:

	reactant1 (molecule/cm3) 1
	1 C 0 {2,S} {3,S} {4,S} {5,S}
	2 H 0 {1,S}
	...

	END

The response has no length prefix: the estimator closes the connection when it is done. It holds
a species dictionary (blocks of a name line and an adjacency list, separated by blank lines) and,
after two blank lines, a reaction table with a banner line followed by one tab-separated line per
reaction:

	CH4 --> CH3 + H	1.0e14	0	100.0	free text comment

An estimator that never closes the connection would block the caller forever, so reads are guarded
by an idle timeout (Config.IdleTimeout). Setting it to 0 gives the unguarded behavior.

Nothing here is fatal for the caller: Client.Reactions returns an empty list, and logs why, when the
estimator is offline, answers something unreadable or knows no reaction for the query. Client.Query
returns the same outcome as an error that can be tested with errors.Is.*/
package estimator
