// Package parser turns a free-form quick-add line into a task draft.
//
// Markers anywhere in the line set task properties and are stripped from
// the title:
//
//	!N or !name   priority (1=low, 2=medium, 3=high, 4=urgent)
//	@tag          adds a tag
//	#date         due date (today, tomorrow, next_week, weekday names,
//	              or YYYY-MM-DD)
//
// "Buy milk @shopping !2 #tomorrow" becomes a medium-priority task titled
// "Buy milk" tagged "shopping" due tomorrow.
package parser

import (
	"regexp"
	"strings"
	"time"

	"task-tracker/internal/domain"
)

var (
	priorityPattern   = regexp.MustCompile(`(?i)(^|\s)!([1-4]|urgent|high|medium|low)\b`)
	tagPattern        = regexp.MustCompile(`(^|\s)@(\w+)`)
	datePattern       = regexp.MustCompile(`(^|\s)#([\w-]+)`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Parse extracts task properties from a quick-add line. Markers that do
// not resolve (an unknown #date word) are still stripped from the title
// and otherwise ignored. The reference time anchors relative dates.
func Parse(text string, now time.Time) domain.Draft {
	draft := domain.Draft{Priority: domain.PriorityMedium}
	title := text

	if m := priorityPattern.FindStringSubmatch(text); m != nil {
		if p, err := domain.ParsePriority(m[2]); err == nil {
			draft.Priority = p
		}
		title = priorityPattern.ReplaceAllString(title, "$1")
	}

	for _, m := range tagPattern.FindAllStringSubmatch(text, -1) {
		draft.Tags = append(draft.Tags, m[2])
	}
	title = tagPattern.ReplaceAllString(title, "$1")

	for _, m := range datePattern.FindAllStringSubmatch(text, -1) {
		if draft.DueDate == nil {
			if due, ok := ResolveDate(m[2], now); ok {
				draft.DueDate = &due
			}
		}
	}
	title = datePattern.ReplaceAllString(title, "$1")

	draft.Title = strings.TrimSpace(whitespacePattern.ReplaceAllString(title, " "))
	return draft
}

var weekdays = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

// ResolveDate maps a date word to a concrete due date at midnight.
// Besides explicit YYYY-MM-DD dates it understands today, tomorrow,
// next_week, and weekday names.
func ResolveDate(word string, now time.Time) (time.Time, bool) {
	word = strings.ToLower(word)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch word {
	case "today", "now":
		return today, true
	case "tomorrow":
		return today.AddDate(0, 0, 1), true
	case "next_week", "nextweek":
		return today.AddDate(0, 0, 7), true
	}

	if weekday, ok := weekdays[word]; ok {
		return nextWeekday(today, weekday), true
	}

	if due, err := time.ParseInLocation("2006-01-02", word, now.Location()); err == nil {
		return due, true
	}

	return time.Time{}, false
}

// nextWeekday returns the next occurrence of the given weekday, always in
// the future; a marker naming today's weekday means next week's.
func nextWeekday(today time.Time, weekday time.Weekday) time.Time {
	daysAhead := int(weekday - today.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return today.AddDate(0, 0, daysAhead)
}
