package video

import "strings"

// Transcript sub-score: up to 40 points for topic-term coverage, up to 30
// for low filler-word density, up to 30 for intro/conclusion structure cues.
// When the backend reports captions but cannot supply their text, a modest
// above-neutral constant stands in. A missing transcript with no caption
// signal is neutral (50) rather than penalized, since the fallback source
// cannot provide one.

const structureCueWindow = 500 // chars inspected at each end of the transcript

// captionsOnlyScore is used when a backend reports captions exist but their
// text is not retrievable through its API.
const captionsOnlyScore = 65

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "of": {}, "to": {},
	"in": {}, "for": {}, "on": {}, "with": {}, "how": {}, "what": {},
	"is": {}, "are": {}, "your": {}, "my": {}, "i": {}, "you": {},
	"do": {}, "does": {}, "can": {}, "at": {}, "by": {}, "from": {},
}

var fillerWords = map[string]struct{}{
	"um": {}, "uh": {}, "like": {}, "basically": {}, "actually": {},
	"literally": {}, "kinda": {}, "sorta": {}, "anyway": {}, "okay": {},
}

var introCues = []string{
	"welcome",
	"in this video",
	"today we",
	"we're going to",
	"going to learn",
	"introduction",
	"let's get started",
}

var conclusionCues = []string{
	"in summary",
	"to recap",
	"to summarize",
	"conclusion",
	"we covered",
	"thanks for watching",
	"hope this helped",
}

func transcriptScore(transcript string, captionsAvailable bool, topic string) float64 {
	if transcript == "" {
		if captionsAvailable {
			return captionsOnlyScore
		}
		return 50
	}

	lower := strings.ToLower(transcript)
	score := coverageScore(lower, topic)
	score += fillerScore(lower)
	score += structureScore(lower)
	return score
}

// coverageScore awards up to 40 points for the fraction of topic terms that
// appear in the transcript.
func coverageScore(transcript, topic string) float64 {
	terms := topicTerms(topic)
	if len(terms) == 0 {
		return 40
	}
	matched := 0
	for _, variants := range terms {
		for _, v := range variants {
			if strings.Contains(transcript, v) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(terms)) * 40
}

// topicTerms splits the query, drops stop-words, and adds a crude
// singular/plural variant per term. Intentionally simple; deterministic
// given identical input is the only guarantee.
func topicTerms(topic string) [][]string {
	var terms [][]string
	for _, word := range strings.Fields(strings.ToLower(topic)) {
		word = strings.Trim(word, ".,!?:;\"'()")
		if word == "" {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if strings.HasSuffix(word, "s") && len(word) > 2 {
			terms = append(terms, []string{word, strings.TrimSuffix(word, "s")})
		} else {
			terms = append(terms, []string{word, word + "s"})
		}
	}
	return terms
}

// fillerScore awards up to 30 points for low filler-word density: full
// credit below 5%, partial to 10%, minimal above.
func fillerScore(transcript string) float64 {
	words := strings.Fields(transcript)
	if len(words) == 0 {
		return 0
	}
	fillers := 0
	for _, w := range words {
		if _, ok := fillerWords[strings.Trim(w, ".,!?")]; ok {
			fillers++
		}
	}
	density := float64(fillers) / float64(len(words))
	switch {
	case density < 0.05:
		return 30
	case density < 0.10:
		return 15
	default:
		return 5
	}
}

// structureScore awards up to 30 points for intro and conclusion language in
// the first and last ~500 characters.
func structureScore(transcript string) float64 {
	head := transcript
	if len(head) > structureCueWindow {
		head = head[:structureCueWindow]
	}
	tail := transcript
	if len(tail) > structureCueWindow {
		tail = tail[len(tail)-structureCueWindow:]
	}

	var score float64
	for _, cue := range introCues {
		if strings.Contains(head, cue) {
			score += 15
			break
		}
	}
	for _, cue := range conclusionCues {
		if strings.Contains(tail, cue) {
			score += 15
			break
		}
	}
	return score
}
