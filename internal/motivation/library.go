// Package motivation builds the deterministic motivational-message library
// and maps calendar dates to messages. The library is generated once per
// process from a fixed seed and never persisted: the same seed regenerates
// the identical library on every start, so a given date always shows the
// same message across reinstalls without any server storage.
package motivation

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nousjournal/nous/internal/constants"
	"github.com/nousjournal/nous/internal/utils"
)

var (
	libraryOnce sync.Once
	library     []string
)

// rng is the linear-congruential generator used by the library builder. The
// multiplier/increment pair and the 32-bit truncation are part of the
// deterministic contract.
type rng struct {
	state uint32
}

func newRNG(seed uint32) *rng {
	return &rng{state: seed}
}

// next returns a pseudo-random value in [0, 1).
func (r *rng) next() float64 {
	r.state = r.state*1664525 + 1013904223
	return float64(r.state) / 4294967296.0
}

func (r *rng) pick(bank []string) string {
	return bank[int(r.next()*float64(len(bank)))]
}

// composeMessage concatenates one phrase from each bank, joined by single
// spaces and whitespace-normalized.
func composeMessage(r *rng) string {
	parts := []string{
		r.pick(openings),
		r.pick(emotionAcknowledgements),
		r.pick(autonomyReframes),
		r.pick(selfCareActions),
		r.pick(supportReminders),
		r.pick(closings),
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// buildLibrary generates the full message library: unique compositions up to
// a bounded attempt budget, then deterministic numbered filler so the library
// always reaches exactly the target size. The filler path guarantees the
// build can never loop forever.
func buildLibrary(size int) []string {
	r := newRNG(constants.MessageLibrarySeed)
	seen := make(map[string]struct{}, size)
	out := make([]string, 0, size)
	maxAttempts := size * constants.MessageAttemptsPerSlot

	for attempts := 0; len(out) < size && attempts < maxAttempts; attempts++ {
		msg := composeMessage(r)
		if _, dup := seen[msg]; dup {
			continue
		}
		seen[msg] = struct{}{}
		out = append(out, msg)
	}

	for len(out) < size {
		msg := fmt.Sprintf(
			"Tu es digne d'amour et de soutien. Un pas conscient aujourd'hui peut ouvrir un espace meilleur demain. Message %d.",
			len(out)+1)
		if _, dup := seen[msg]; dup {
			continue
		}
		seen[msg] = struct{}{}
		out = append(out, msg)
	}

	return out
}

// Library returns the process-wide message library, building it on first use.
// The returned slice must be treated as immutable.
func Library() []string {
	libraryOnce.Do(func() {
		library = buildLibrary(constants.MessageLibrarySize)
	})
	return library
}

// LibraryInfo describes the generated library and its horizon window.
type LibraryInfo struct {
	Size             int
	StartYear        int
	EndYearInclusive int
}

// Info returns the library size and the horizon years it covers.
func Info() LibraryInfo {
	return LibraryInfo{
		Size:             len(Library()),
		StartYear:        constants.MessageHorizonStartYear,
		EndYearInclusive: constants.MessageHorizonStartYear + constants.MessageHorizonYears - 1,
	}
}

// StableIndex maps a date to its message index. Within the horizon window the
// assignment is strictly periodic with period equal to the library size, so
// no message repeats within one full cycle. Outside the horizon a derived
// pseudo-index is used; it is a known approximation with no non-collision
// guarantee, kept arithmetic-identical for compatibility with existing
// installations.
func StableIndex(date time.Time) int {
	lib := Library()
	start := time.Date(constants.MessageHorizonStartYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(constants.MessageHorizonYears, 0, 0)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if !day.Before(start) && day.Before(end) {
		days := int(day.Sub(start).Hours() / 24)
		return days % len(lib)
	}

	fallback := date.Year()*379 + utils.DayOfYear(date)*41
	if fallback < 0 {
		fallback = -fallback
	}
	return fallback % len(lib)
}

// MessageFor returns the motivational message for a date key, prefixed with
// the profile name when one is set. An unparseable date key falls back to
// today so the caller always gets a message.
func MessageFor(dateKey, profileName string) string {
	date, err := utils.ParseDateKey(dateKey)
	if err != nil {
		date = time.Now()
	}
	msg := Library()[StableIndex(date)]

	name := strings.TrimSpace(profileName)
	if name == "" {
		return msg
	}
	return fmt.Sprintf("%s, %s", name, msg)
}
