package session

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"interviewcoach/api/internal/models"
)

// DefaultTimeout is how long a session may stay idle before it expires.
const DefaultTimeout = time.Hour

// Updates carries a partial session update. Nil fields are left untouched;
// there is deliberately no way to set difficulty or scores from outside,
// those only move through AddResponse.
type Updates struct {
	CurrentQuestion *string
	Category        *string // added to the covered set
	Complete        *bool
}

// Store owns all sessions. Expiry is lazy: a session past its idle timeout
// is deleted on the next lookup, no background sweep required.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	timeout  time.Duration
	now      func() time.Time
}

func NewStore(timeout time.Duration) *Store {
	return NewStoreWithClock(timeout, time.Now)
}

// NewStoreWithClock injects the clock so expiry is testable without real
// time passing.
func NewStoreWithClock(timeout time.Duration, now func() time.Time) *Store {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Store{
		sessions: make(map[string]*Session),
		timeout:  timeout,
		now:      now,
	}
}

// Create initializes a new session for the given profile and returns its ID.
func (st *Store) Create(profile models.UserProfile) string {
	id := uuid.New().String()
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	st.sessions[id] = &Session{
		ID:                id,
		Profile:           profile,
		CreatedAt:         now,
		LastActivity:      now,
		Responses:         []models.ResponseRecord{},
		Scores:            []int{},
		CategoriesCovered: make(map[string]struct{}),
		DifficultyLevel:   models.DifficultyBeginner,
	}

	return id
}

// Get returns a copy of the session, refreshing its last activity.
// An expired session is deleted as a side effect and reported as not found.
func (st *Store) Get(id string) (View, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.getLocked(id)
	if !ok {
		return View{}, false
	}
	return s.view(), true
}

// getLocked implements lazy expiry and the activity refresh. Callers hold st.mu.
func (st *Store) getLocked(id string) (*Session, bool) {
	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}

	if st.expired(s) {
		delete(st.sessions, id)
		return nil, false
	}

	s.LastActivity = st.now()
	return s, true
}

// Update applies the given fields to the session. Returns false if the
// session does not exist.
func (st *Store) Update(id string, updates Updates) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return false
	}

	if updates.CurrentQuestion != nil {
		s.CurrentQuestion = *updates.CurrentQuestion
	}
	if updates.Category != nil {
		s.CategoriesCovered[*updates.Category] = struct{}{}
	}
	if updates.Complete != nil {
		s.Complete = *updates.Complete
	}

	s.LastActivity = st.now()
	return true
}

// AddResponse appends a response and its score as one atomic unit, bumps
// the question counter and applies the difficulty adjustment. Returns
// false if the session does not exist.
func (st *Store) AddResponse(id, question, response string, evaluation models.EvaluationResult) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return false
	}

	score := evaluation.Score
	if score == 0 {
		score = 5
	}

	s.Responses = append(s.Responses, models.ResponseRecord{
		Question:   question,
		Response:   response,
		Evaluation: evaluation,
		Timestamp:  st.now(),
	})
	s.Scores = append(s.Scores, score)
	s.QuestionsAsked++
	s.LastActivity = st.now()

	adjustDifficulty(s)

	return true
}

// Summary aggregates the session's progress. Goes through the same expiry
// path as Get, so reading a summary also refreshes activity.
func (st *Store) Summary(id string) (models.Summary, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.getLocked(id)
	if !ok {
		return models.Summary{}, false
	}

	var avg float64
	if len(s.Scores) > 0 {
		total := 0
		for _, score := range s.Scores {
			total += score
		}
		avg = math.Round(float64(total)/float64(len(s.Scores))*100) / 100
	}

	responses := make([]models.ResponseRecord, len(s.Responses))
	copy(responses, s.Responses)

	return models.Summary{
		TotalQuestions:    s.QuestionsAsked,
		AverageScore:      avg,
		CategoriesCovered: s.categoriesList(),
		DifficultyLevel:   s.DifficultyLevel,
		DurationMinutes:   int(st.now().Sub(s.CreatedAt).Minutes()),
		Responses:         responses,
	}, true
}

// Delete removes the session unconditionally.
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

// SweepExpired deletes every expired session and returns how many were
// removed. Get already expires lazily; this only reclaims memory for
// sessions nobody touches again.
func (st *Store) SweepExpired() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	count := 0
	for id, s := range st.sessions {
		if st.expired(s) {
			delete(st.sessions, id)
			count++
		}
	}
	return count
}

// Len returns the number of sessions currently held, expired or not.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) expired(s *Session) bool {
	return st.now().Sub(s.LastActivity) > st.timeout
}

// adjustDifficulty moves the level at most one step based on the mean of
// the last three scores. Caller holds st.mu.
func adjustDifficulty(s *Session) {
	if len(s.Scores) < 3 {
		return
	}

	recent := s.Scores[len(s.Scores)-3:]
	total := 0
	for _, score := range recent {
		total += score
	}
	recentAvg := float64(total) / 3

	switch {
	case recentAvg >= 8 && s.DifficultyLevel == models.DifficultyBeginner:
		s.DifficultyLevel = models.DifficultyIntermediate
	case recentAvg >= 8 && s.DifficultyLevel == models.DifficultyIntermediate:
		s.DifficultyLevel = models.DifficultyAdvanced
	case recentAvg <= 4 && s.DifficultyLevel == models.DifficultyAdvanced:
		s.DifficultyLevel = models.DifficultyIntermediate
	case recentAvg <= 4 && s.DifficultyLevel == models.DifficultyIntermediate:
		s.DifficultyLevel = models.DifficultyBeginner
	}
}
