package quiz

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"quizhub/internal/models"
)

var (
	// ErrNoQuestions means the requested category/difficulty pair has no
	// questions; no session is created and no result screen is reachable.
	ErrNoQuestions = errors.New("no questions available")

	// ErrSessionFinished is returned when an answer arrives after the last
	// question has already been scored.
	ErrSessionFinished = errors.New("session already finished")

	// ErrInvalidOption is returned when the selected index is outside the
	// current question's options.
	ErrInvalidOption = errors.New("selected option out of range")
)

// Session is one quiz attempt: questions shuffled at start, answered one at a
// time, scored as it goes. Once an answer is submitted the index advances and
// the selection is final.
type Session struct {
	ID              string            `json:"id"`
	Category        string            `json:"category"`
	Difficulty      string            `json:"difficulty"`
	Questions       []models.Question `json:"questions"`
	CurrentIndex    int               `json:"currentIndex"`
	Score           int               `json:"score"`
	SelectedAnswers []int             `json:"selectedAnswers"`
	ShowResult      bool              `json:"showResult"`
}

// NewSession shuffles each question's options (remapping the correct answer to
// its new position) and then the question order, and starts at the beginning.
func NewSession(questions []models.Question) (*Session, error) {
	return newSessionWithRand(questions, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newSessionWithRand(questions []models.Question, r *rand.Rand) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	shuffled := make([]models.Question, len(questions))
	copy(shuffled, questions)
	for i := range shuffled {
		shuffled[i] = shuffleOptions(shuffled[i], r)
	}

	// Fisher-Yates on the question order
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return &Session{
		Questions:       shuffled,
		CurrentIndex:    0,
		Score:           0,
		SelectedAnswers: []int{},
		ShowResult:      false,
	}, nil
}

// shuffleOptions permutes a question's options and recomputes CorrectAnswer as
// the new index of the option that was correct before. The permutation is a
// bijection, so the answer is tracked losslessly.
func shuffleOptions(q models.Question, r *rand.Rand) models.Question {
	perm := r.Perm(len(q.Options))
	options := make([]string, len(q.Options))
	newCorrect := q.CorrectAnswer
	for newPos, oldPos := range perm {
		options[newPos] = q.Options[oldPos]
		if oldPos == q.CorrectAnswer {
			newCorrect = newPos
		}
	}
	q.Options = options
	q.CorrectAnswer = newCorrect
	return q
}

// Current returns the question awaiting an answer.
func (s *Session) Current() (*models.Question, error) {
	if s.ShowResult {
		return nil, ErrSessionFinished
	}
	return &s.Questions[s.CurrentIndex], nil
}

// SubmitAnswer records the selected option for the current question, scores
// it, and advances. Answering the last question completes the session.
func (s *Session) SubmitAnswer(selected int) (bool, error) {
	if s.ShowResult {
		return false, ErrSessionFinished
	}
	current := s.Questions[s.CurrentIndex]
	if selected < 0 || selected >= len(current.Options) {
		return false, ErrInvalidOption
	}

	correct := selected == current.CorrectAnswer
	if correct {
		s.Score++
	}
	s.SelectedAnswers = append(s.SelectedAnswers, selected)
	s.CurrentIndex++
	if s.CurrentIndex == len(s.Questions) {
		s.ShowResult = true
	}
	return correct, nil
}

// Percentage is the final score as a rounded percentage. Only meaningful once
// ShowResult is set; a session always holds at least one question, so the
// division is safe.
func (s *Session) Percentage() int {
	return int(math.Round(100 * float64(s.Score) / float64(len(s.Questions))))
}
