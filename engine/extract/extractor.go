package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	slotsx "github.com/staywise/hotel-dialogue/engine/slots"
)

// Extractor pattern-matches free text into a partial slot record. It is
// deterministic and idempotent: no clock, no randomness, no state between
// calls. It is safe to share across conversations.
type Extractor struct {
	isoDate   *regexp.Regexp
	slashDate *regexp.Regexp
	monthDate *regexp.Regexp
	checkIn   *regexp.Regexp
	checkOut  *regexp.Regexp

	budgetRange    *regexp.Regexp
	budgetCap      *regexp.Regexp
	budgetAround   *regexp.Regexp
	budgetPerNight *regexp.Regexp

	adults    *regexp.Regexp
	people    *regexp.Regexp
	childAges *regexp.Regexp
	rooms     *regexp.Regexp
	stars     *regexp.Regexp
	openAfter *regexp.Regexp
	number    *regexp.Regexp
}

// New compiles the pattern set.
func New() *Extractor {
	return &Extractor{
		isoDate:   regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`),
		slashDate: regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{4}))?\b`),
		monthDate: regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b`),
		checkIn:   regexp.MustCompile(`(?i)\bcheck[\s-]?in\b`),
		checkOut:  regexp.MustCompile(`(?i)\bcheck[\s-]?out\b`),

		budgetRange:    regexp.MustCompile(`(?i)[¥$€£]?\s*(\d{2,6})\s*(?:-|–|~|to)\s*[¥$€£]?\s*(\d{2,6})\b`),
		budgetCap:      regexp.MustCompile(`(?i)\b(?:under|below|up to|at most|maximum|max)\s*[¥$€£]?\s*(\d{2,6})\b`),
		budgetAround:   regexp.MustCompile(`(?i)\b(?:around|about|roughly)\s*[¥$€£]?\s*(\d{2,6})\b`),
		budgetPerNight: regexp.MustCompile(`(?i)[¥$€£]?\s*(\d{2,6})\s*(?:a|per)\s*night\b`),

		adults:    regexp.MustCompile(`(?i)\b(\d{1,2})\s*adults?\b`),
		people:    regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:people|persons?|guests?)\b`),
		childAges: regexp.MustCompile(`(?i)\b(?:aged?|ages?)\s+((?:\d{1,2}\s*(?:,|and|&)?\s*)+)`),
		rooms:     regexp.MustCompile(`(?i)\b(\d{1,2})\s*rooms?\b`),
		stars:     regexp.MustCompile(`(?i)\b([1-5])\s*-?\s*star\b`),
		openAfter: regexp.MustCompile(`(?i)\bopened?\s+(?:after|since)\s+(\d{4})\b`),
		number:    regexp.MustCompile(`\d{1,2}`),
	}
}

// Extract returns a patch holding only the fields the text gave evidence
// for. Extracting the same text twice yields the same patch.
func (e *Extractor) Extract(text string) slotsx.Patch {
	var p slotsx.Patch
	if strings.TrimSpace(text) == "" {
		return p
	}

	// Dates go first; their spans are blanked so a written date can never
	// be re-read as a budget range.
	remainder := e.extractDates(text, &p)
	e.extractBudget(remainder, &p)
	e.extractParty(text, &p)

	if m := e.rooms.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			p.Rooms = &n
		}
	}
	if m := e.stars.FindStringSubmatch(text); m != nil {
		p.Tags = appendUnique(p.Tags, m[1]+"-star")
	}
	if m := e.openAfter.FindStringSubmatch(text); m != nil {
		if y, err := strconv.Atoi(m[1]); err == nil {
			p.OpenAfterYear = y
		}
	}

	lower := strings.ToLower(text)
	p.City = scanFirst(lower, cityVocab)
	p.Location = scanFirst(lower, locationVocab)
	p.Brand = scanFirst(lower, brandVocab)
	p.View = scanFirst(lower, viewVocab)
	for _, entry := range tagVocab {
		if containsPhrase(lower, entry.phrase) {
			p.Tags = appendUnique(p.Tags, entry.canonical)
		}
	}
	for _, entry := range facilityVocab {
		if containsPhrase(lower, entry.phrase) {
			p.Facilities = appendUnique(p.Facilities, entry.canonical)
		}
	}

	return p
}

type dateMatch struct {
	start, end int
	value      string
}

// extractDates finds dates in ISO, slash, and month-name written forms,
// assigns them to check-in/check-out by explicit markers first and by order
// of appearance otherwise, and returns the text with date spans blanked.
func (e *Extractor) extractDates(text string, p *slotsx.Patch) string {
	var found []dateMatch

	for _, loc := range e.isoDate.FindAllStringSubmatchIndex(text, -1) {
		y := text[loc[2]:loc[3]]
		mo := pad2(text[loc[4]:loc[5]])
		d := pad2(text[loc[6]:loc[7]])
		found = append(found, dateMatch{loc[0], loc[1], fmt.Sprintf("%s-%s-%s", y, mo, d)})
	}
	for _, loc := range e.monthDate.FindAllStringSubmatchIndex(text, -1) {
		mo := monthNumber(text[loc[2]:loc[3]])
		d := pad2(text[loc[4]:loc[5]])
		if mo != "" {
			found = append(found, dateMatch{loc[0], loc[1], mo + "-" + d})
		}
	}
	if len(found) == 0 {
		for _, loc := range e.slashDate.FindAllStringSubmatchIndex(text, -1) {
			mo := pad2(text[loc[2]:loc[3]])
			d := pad2(text[loc[4]:loc[5]])
			value := mo + "-" + d
			if loc[6] >= 0 {
				value = text[loc[6]:loc[7]] + "-" + value
			}
			found = append(found, dateMatch{loc[0], loc[1], value})
		}
	}
	if len(found) == 0 {
		return text
	}

	sortByStart(found)
	used := make([]bool, len(found))

	if m := e.checkIn.FindStringIndex(text); m != nil {
		if i := firstAfter(found, used, m[1]); i >= 0 {
			p.CheckIn = found[i].value
			used[i] = true
		}
	}
	if m := e.checkOut.FindStringIndex(text); m != nil {
		if i := firstAfter(found, used, m[1]); i >= 0 {
			p.CheckOut = found[i].value
			used[i] = true
		}
	}
	for i := range found {
		if used[i] {
			continue
		}
		if p.CheckIn == "" {
			p.CheckIn = found[i].value
			used[i] = true
			continue
		}
		if p.CheckOut == "" {
			p.CheckOut = found[i].value
			used[i] = true
		}
	}

	blanked := []byte(text)
	for _, d := range found {
		for i := d.start; i < d.end; i++ {
			blanked[i] = ' '
		}
	}
	return string(blanked)
}

func (e *Extractor) extractBudget(text string, p *slotsx.Patch) {
	if m := e.budgetRange.FindStringSubmatch(text); m != nil {
		p.BudgetPerNight = m[1] + "-" + m[2]
		return
	}
	if m := e.budgetCap.FindStringSubmatch(text); m != nil {
		p.BudgetPerNight = "under " + m[1]
		return
	}
	if m := e.budgetAround.FindStringSubmatch(text); m != nil {
		p.BudgetPerNight = "around " + m[1]
		return
	}
	if m := e.budgetPerNight.FindStringSubmatch(text); m != nil {
		p.BudgetPerNight = m[1]
	}
}

func (e *Extractor) extractParty(text string, p *slotsx.Patch) {
	if m := e.adults.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			p.Adults = &n
		}
	} else if m := e.people.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			p.Adults = &n
		}
	}

	// Child ages only: a bare head count carries no age information and
	// must not be confused with a confirmed child-free party.
	if m := e.childAges.FindStringSubmatch(text); m != nil {
		for _, raw := range e.number.FindAllString(m[1], -1) {
			if age, err := strconv.Atoi(raw); err == nil {
				p.Children = append(p.Children, age)
			}
		}
	}
}

func scanFirst(lower string, vocab []vocabEntry) string {
	for _, entry := range vocab {
		if containsPhrase(lower, entry.phrase) {
			return entry.canonical
		}
	}
	return ""
}

// containsPhrase is a word-boundary-aware substring check, so "spa" does
// not fire inside "spacious".
func containsPhrase(lower, phrase string) bool {
	from := 0
	for {
		i := strings.Index(lower[from:], phrase)
		if i < 0 {
			return false
		}
		i += from
		before := i == 0 || !isWordByte(lower[i-1])
		afterIdx := i + len(phrase)
		after := afterIdx >= len(lower) || !isWordByte(lower[afterIdx])
		if before && after {
			return true
		}
		from = i + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

func sortByStart(matches []dateMatch) {
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].start < matches[j-1].start; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
}

func firstAfter(matches []dateMatch, used []bool, pos int) int {
	for i, m := range matches {
		if !used[i] && m.start >= pos {
			return i
		}
	}
	return -1
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func monthNumber(name string) string {
	switch strings.ToLower(name)[:3] {
	case "jan":
		return "01"
	case "feb":
		return "02"
	case "mar":
		return "03"
	case "apr":
		return "04"
	case "may":
		return "05"
	case "jun":
		return "06"
	case "jul":
		return "07"
	case "aug":
		return "08"
	case "sep":
		return "09"
	case "oct":
		return "10"
	case "nov":
		return "11"
	case "dec":
		return "12"
	}
	return ""
}
