// Package codec flattens the variable-length parts of an assay record into
// the single text columns the store persists, and derives the grade label
// from a score. Encoding and decoding are pure; integrity problems found
// during decode are reported to the caller instead of logged here.
package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/introprep/assay/internal/assay/domain"
)

// Sentinel is the reserved delimiter that joins questions (and answers) into
// one text column. Multi-character and meaningless in natural language, so it
// does not plausibly occur inside user text; encode rejects values that
// contain it rather than escaping them.
const Sentinel = "|||"

// ErrReservedSequence reports a question or answer containing the sentinel.
var ErrReservedSequence = errors.New("codec: value contains reserved sequence " + Sentinel)

// EncodeQA joins the questions and answers of pairs into two delimited
// strings, preserving order. An empty list yields two empty strings.
func EncodeQA(pairs []domain.QuestionAnswer) (questions, answers string, err error) {
	if len(pairs) == 0 {
		return "", "", nil
	}

	qs := make([]string, len(pairs))
	as := make([]string, len(pairs))
	for i, p := range pairs {
		if strings.Contains(p.Question, Sentinel) || strings.Contains(p.Answer, Sentinel) {
			return "", "", fmt.Errorf("pair %d: %w", i, ErrReservedSequence)
		}
		qs[i] = p.Question
		as[i] = p.Answer
	}

	return strings.Join(qs, Sentinel), strings.Join(as, Sentinel), nil
}

// DecodeQA splits both texts on the sentinel and pairs entries by position,
// trimming surrounding whitespace from each field. When the question and
// answer counts differ the result is truncated to the shorter list and
// mismatch is true; the caller is expected to flag that as a data-integrity
// concern. Decode never fails.
func DecodeQA(questions, answers string) (pairs []domain.QuestionAnswer, mismatch bool) {
	qs := splitFields(questions)
	as := splitFields(answers)

	n := min(len(qs), len(as))
	pairs = make([]domain.QuestionAnswer, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, domain.QuestionAnswer{Question: qs[i], Answer: as[i]})
	}

	return pairs, len(qs) != len(as)
}

func splitFields(text string) []string {
	if text == "" {
		return nil
	}
	fields := strings.Split(text, Sentinel)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
