package overlap

import (
	"sort"
	"time"

	"github.com/rpggio/pairwork/internal/domain/assignment"
)

const secondsPerDay = 24 * 60 * 60

// GroupByProject partitions assignments by project id.
// Assignments keep their input order within a group; groups are ordered by ascending project id.
func GroupByProject(records []assignment.Assignment) []ProjectGroup {
	index := make(map[int64]int)
	var groups []ProjectGroup
	for _, rec := range records {
		i, ok := index[rec.ProjectID]
		if !ok {
			i = len(groups)
			index[rec.ProjectID] = i
			groups = append(groups, ProjectGroup{ProjectID: rec.ProjectID})
		}
		groups[i].Assignments = append(groups[i].Assignments, rec)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].ProjectID < groups[b].ProjectID
	})
	return groups
}

// Intersect returns the common date range of two assignments.
// ok is false when the ranges do not meet; a single shared day is a valid intersection.
func Intersect(a, b assignment.Assignment) (start, end time.Time, ok bool) {
	start = a.DateFrom
	if b.DateFrom.After(start) {
		start = b.DateFrom
	}
	end = a.DateTo
	if b.DateTo.Before(end) {
		end = b.DateTo
	}
	return start, end, !end.Before(start)
}

// DayCount returns the number of whole days from start to end, excluding end.
// Both bounds are UTC midnights. Unix seconds are used because a
// time.Duration cannot span more than about 292 years.
func DayCount(start, end time.Time) int {
	return int((end.Unix() - start.Unix()) / secondsPerDay)
}

// BestPair scans every pair of records (i < j, both ascending) and keeps the
// longest overlap. Only overlaps strictly longer than the current best replace
// it, starting from zero, so ties keep the earliest pair and zero-day overlaps
// never qualify. Records are paired as-is: two intervals of the same employee
// can form a pair.
func BestPair(records []assignment.Assignment) (Pair, bool) {
	var best Pair
	found := false
	for i := 0; i < len(records); i++ {
		for j := i + 1; j < len(records); j++ {
			start, end, ok := Intersect(records[i], records[j])
			if !ok {
				continue
			}
			days := DayCount(start, end)
			if days > best.OverlapDays {
				best = Pair{
					EmployeeOneID: records[i].EmployeeID,
					EmployeeTwoID: records[j].EmployeeID,
					OverlapDays:   days,
				}
				found = true
			}
		}
	}
	return best, found
}

// Compute returns the longest-overlap pair of every project that has one.
func Compute(records []assignment.Assignment) []ProjectResult {
	var results []ProjectResult
	for _, group := range GroupByProject(records) {
		pair, ok := BestPair(group.Assignments)
		if !ok {
			continue
		}
		results = append(results, ProjectResult{
			ProjectID:          group.ProjectID,
			EmployeeOneID:      pair.EmployeeOneID,
			EmployeeTwoID:      pair.EmployeeTwoID,
			DaysWorkedTogether: pair.OverlapDays,
		})
	}
	return results
}
