package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mindlogapp/mindlog_backend/internal/dto"
	"github.com/mindlogapp/mindlog_backend/internal/models"
)

// recentEntriesLimit is the fixed window the streak walks over. A user with
// more than this many distinct journaling days in a row will see the streak
// undercounted; accepted trade-off to keep the dashboard query bounded.
const recentEntriesLimit = 100

const dateLayout = "2006-01-02"

// ComputeWeeklyStats computes the aggregate statistics over the given
// entries, which callers are expected to have restricted to the trailing
// seven-day window. Entries must be in chronologically-descending order: the
// most-common-emotion tie-break is "first seen" in that order, which makes
// the result deterministic regardless of how counts collide.
//
// Averages are rounded to one decimal, half away from zero. An empty input
// yields a stats bundle with every field nil; this function never fails.
func ComputeWeeklyStats(entries []models.Entry) dto.WeeklyStats {
	stats := dto.WeeklyStats{}
	if len(entries) == 0 {
		return stats
	}

	moodSum := 0
	maxMood := entries[0].Mood
	minMood := entries[0].Mood

	type emotionCount struct {
		count     int
		firstSeen int
	}
	emotionCounts := make(map[string]*emotionCount)

	sleepSum := 0
	sleepCount := 0

	for i, entry := range entries {
		moodSum += entry.Mood
		if entry.Mood > maxMood {
			maxMood = entry.Mood
		}
		if entry.Mood < minMood {
			minMood = entry.Mood
		}

		if entry.Emotion != nil && *entry.Emotion != "" {
			if ec, ok := emotionCounts[*entry.Emotion]; ok {
				ec.count++
			} else {
				emotionCounts[*entry.Emotion] = &emotionCount{count: 1, firstSeen: i}
			}
		}

		if entry.Sleep != nil {
			sleepSum += *entry.Sleep
			sleepCount++
		}
	}

	avgMood := roundOneDecimal(moodSum, len(entries))
	stats.AvgMood = &avgMood
	stats.MaxMood = &maxMood
	stats.MinMood = &minMood

	var commonEmotion string
	best := -1
	bestFirstSeen := 0
	for emotion, ec := range emotionCounts {
		if ec.count > best || (ec.count == best && ec.firstSeen < bestFirstSeen) {
			best = ec.count
			bestFirstSeen = ec.firstSeen
			commonEmotion = emotion
		}
	}
	if best > 0 {
		stats.CommonEmotion = &commonEmotion
	}

	if sleepCount > 0 {
		avgSleep := roundOneDecimal(sleepSum, sleepCount)
		stats.AvgSleep = &avgSleep
	}

	return stats
}

// roundOneDecimal divides sum by count and rounds to one decimal place, half
// away from zero (3.25 becomes 3.3, -3.25 becomes -3.3).
func roundOneDecimal(sum, count int) float64 {
	return decimal.NewFromInt(int64(sum)).
		Div(decimal.NewFromInt(int64(count))).
		Round(1).
		InexactFloat64()
}

// ComputeStreak counts the consecutive calendar days, walking backward from
// today, on which at least one of the given entries was created. The run must
// include today: an entry yesterday with none today is a streak of 0. Entry
// timestamps are projected to their own date component, with no timezone
// normalization.
func ComputeStreak(entries []models.Entry, today time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		seen[entry.CreatedAt.Format(dateLayout)] = struct{}{}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	streak := 0
	for i, d := range dates {
		if d != today.AddDate(0, 0, -i).Format(dateLayout) {
			break
		}
		streak++
	}
	return streak
}

// WeekStartFor returns the Monday on or before t, truncated to a date in UTC.
// It keys the weekly reflection.
func WeekStartFor(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
