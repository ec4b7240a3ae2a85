package calc

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// MinutePresets are the quick-pick offsets offered by the time tool.
var MinutePresets = []int{15, 30, 45, 60}

// Display layouts for the time tool.
const (
	ClockLayout    = "03:04:05 PM"
	DateLayout     = "Mon, Jan 02, 2006"
	DateTimeLayout = DateLayout + ", " + ClockLayout + " MST"
)

// LoadZone resolves an IANA zone name. An empty name is UTC.
func LoadZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", name, err)
	}
	return loc, nil
}

// ParseMinutes reads a minute offset. Blank, garbage and negative input is 0.
func ParseMinutes(raw string) int {
	m, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || m < 0 {
		return 0
	}
	return m
}

type TimeFromNowResult struct {
	Zone       string    `json:"zone"`
	Minutes    int       `json:"minutes"`
	Now        time.Time `json:"now"`
	Future     time.Time `json:"future"`
	NowText    string    `json:"nowText"`
	FutureText string    `json:"futureText"`
}

// Share is the one-line summary offered for copying.
func (r TimeFromNowResult) Share() string {
	return fmt.Sprintf("%d minutes from now is %s (%s).", r.Minutes, r.FutureText, r.Zone)
}

// TimeFromNow adds minutes to now and renders both instants in loc. The
// zone database applies any daylight-saving change between them.
func TimeFromNow(now time.Time, minutes int, loc *time.Location) TimeFromNowResult {
	if minutes < 0 {
		minutes = 0
	}
	n := now.In(loc)
	f := n.Add(time.Duration(minutes) * time.Minute)
	return TimeFromNowResult{
		Zone:       loc.String(),
		Minutes:    minutes,
		Now:        n,
		Future:     f,
		NowText:    n.Format(DateTimeLayout),
		FutureText: f.Format(DateTimeLayout),
	}
}

// ZoneCard is the time shown for one extra zone.
type ZoneCard struct {
	Zone  string `json:"zone"`
	Clock string `json:"clock"`
	Date  string `json:"date"`
}

// ZoneCards renders t in each of the named zones.
func ZoneCards(t time.Time, zones []string) ([]ZoneCard, error) {
	cards := make([]ZoneCard, 0, len(zones))
	for _, z := range zones {
		loc, err := LoadZone(z)
		if err != nil {
			return nil, err
		}
		lt := t.In(loc)
		cards = append(cards, ZoneCard{
			Zone:  loc.String(),
			Clock: lt.Format(ClockLayout),
			Date:  lt.Format(DateLayout),
		})
	}
	return cards, nil
}
