/*
 * source.go, part of gokin.
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

package rxn

import (
	"fmt"
	"strings"
)

//Entry is a record in a kinetics database. Its long description identifies the
//record regardless of the direction in which it is looked up.
type Entry struct {
	Index    int
	Label    string
	LongDesc string
}

//SameRecord returns true if a and b trace back to the same database record.
//Two missing entries count as the same record.
func SameRecord(a, b *Entry) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.LongDesc == b.LongDesc
}

//Source tells where the kinetics of a reaction come from. The set of implementations is
//closed: RateRuleEstimate, GroupAdditivityEstimate, DepositoryResult and EstimatorResult.
type Source interface {
	Describe() string
	source()
}

//RateRuleEstimate is kinetics estimated by a family from its rate rules.
type RateRuleEstimate struct {
	Family    string
	Templates []string
	Estimator string
}

func (S RateRuleEstimate) source() {}

func (S RateRuleEstimate) Describe() string {
	return fmt.Sprintf("%s estimate from %s [%s]", S.Estimator, S.Family, strings.Join(S.Templates, ";"))
}

//GroupAdditivityEstimate is kinetics estimated by a family with group additivity.
type GroupAdditivityEstimate struct {
	Family    string
	Templates []string
	Estimator string
}

func (S GroupAdditivityEstimate) source() {}

func (S GroupAdditivityEstimate) Describe() string {
	return fmt.Sprintf("%s estimate from %s [%s]", S.Estimator, S.Family, strings.Join(S.Templates, ";"))
}

//DepositoryResult is kinetics taken from a record of a named depository.
type DepositoryResult struct {
	Depository string
	Entry      *Entry
}

func (S DepositoryResult) source() {}

func (S DepositoryResult) Describe() string {
	if S.Entry == nil {
		return S.Depository
	}
	return fmt.Sprintf("%s entry %d %s", S.Depository, S.Entry.Index, S.Entry.Label)
}

//EstimatorResult is kinetics returned by an external estimator program. It is
//treated as a depository by consumers.
type EstimatorResult struct {
	Estimator string
}

func (S EstimatorResult) source() {}

func (S EstimatorResult) Describe() string {
	return S.Estimator
}

//IsTemplate returns true if src is an estimate built from family templates.
func IsTemplate(src Source) bool {
	switch src.(type) {
	case RateRuleEstimate, GroupAdditivityEstimate:
		return true
	}
	return false
}
