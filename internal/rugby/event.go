package rugby

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"RugbyStatsApi/internal/store"
)

var ErrMalformedEvent = errors.New("malformed match event")

// EventType is the numeric event code used by the source feed.
type EventType int

const (
	EventTry               EventType = 1
	EventConversion        EventType = 2
	EventPenalty           EventType = 3
	EventDropGoal          EventType = 4
	EventYellowCard        EventType = 5
	EventRedCard           EventType = 6
	EventSubOff            EventType = 7
	EventSubOn             EventType = 8
	EventGameStart         EventType = 9
	EventEndOfFirstHalf    EventType = 10
	EventStartOfSecondHalf EventType = 11
	EventEndOfGame         EventType = 12
	EventText              EventType = 9999
)

var eventTypeNames = map[EventType]string{
	EventTry:               "Try",
	EventConversion:        "Conversion",
	EventPenalty:           "Penalty",
	EventDropGoal:          "Drop Goal",
	EventYellowCard:        "Yellow Card",
	EventRedCard:           "Red Card",
	EventSubOff:            "Sub Off",
	EventSubOn:             "Sub On",
	EventGameStart:         "Game Start",
	EventEndOfFirstHalf:    "End of first half",
	EventStartOfSecondHalf: "Start of Second Half",
	EventEndOfGame:         "End of game",
	EventText:              "Text Event",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return strconv.Itoa(int(t))
}

// Event is a single timestamped occurrence within a match. HomeScore and
// AwayScore hold the score after the event; they are nil for events built
// from per-player time maps, which carry no score.
type Event struct {
	Type        EventType
	Minute      int
	AddedMinute int
	Text        string
	HomeScore   *int
	AwayScore   *int
}

// EventFromRaw builds an Event from one commentary entry.
func EventFromRaw(raw store.RawEvent) (Event, error) {
	minute, added, err := parseClock(raw.Time)
	if err != nil {
		return Event{}, err
	}
	return Event{
		Type:        EventType(raw.Type),
		Minute:      minute,
		AddedMinute: added,
		Text:        raw.Text,
		HomeScore:   raw.HomeScore,
		AwayScore:   raw.AwayScore,
	}, nil
}

// parseClock parses a source minute string such as "45'" or "45+2'". The
// part after a "+" is stoppage time.
func parseClock(clock string) (minute, added int, err error) {
	clock = strings.ReplaceAll(clock, "'", "")
	base := clock
	if i := strings.Index(clock, "+"); i != -1 {
		base = clock[:i]
		added, err = strconv.Atoi(clock[i+1:])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: bad clock %q", ErrMalformedEvent, clock)
		}
	}
	minute, err = strconv.Atoi(base)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad clock %q", ErrMalformedEvent, clock)
	}
	return minute, added, nil
}

func (e Event) String() string {
	if e.HomeScore != nil && e.AwayScore != nil {
		return fmt.Sprintf("%d: %s, %s, %d-%d", e.Minute, e.Type, e.Text, *e.HomeScore,
			*e.AwayScore)
	}
	return fmt.Sprintf("%d: %s, %s", e.Minute, e.Type, e.Text)
}

// EventList is an ordered sequence of events; order is chronological as given
// by the source. The zero value is an empty list.
type EventList []Event

// EventListFromRaw builds an EventList from the flat commentary slice of a
// raw match record.
func EventListFromRaw(raws []store.RawEvent) (EventList, error) {
	events := make(EventList, 0, len(raws))
	for _, raw := range raws {
		event, err := EventFromRaw(raw)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

// EventListFromPlayerTimes builds an EventList from a per-player map of
// stringified type code to minute strings, one event per minute per type.
// Events are ordered by minute since the map carries no source order.
func EventListFromPlayerTimes(times map[string][]string) (EventList, error) {
	events := make(EventList, 0)
	for code, clocks := range times {
		typ, err := strconv.Atoi(code)
		if err != nil {
			return nil, fmt.Errorf("%w: bad event type %q", ErrMalformedEvent, code)
		}
		for _, clock := range clocks {
			minute, added, err := parseClock(clock)
			if err != nil {
				return nil, err
			}
			events = append(events, Event{
				Type:        EventType(typ),
				Minute:      minute,
				AddedMinute: added,
			})
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Minute != events[j].Minute {
			return events[i].Minute < events[j].Minute
		}
		return events[i].Type < events[j].Type
	})
	return events, nil
}

// OfType returns a new list holding only events of the given type, in the
// original order. The receiver is not modified.
func (l EventList) OfType(t EventType) EventList {
	filtered := make(EventList, 0)
	for _, event := range l {
		if event.Type == t {
			filtered = append(filtered, event)
		}
	}
	return filtered
}
