package repository

import (
	"context"
	"sync"
	"time"

	"unzone-backend/models"

	"github.com/google/uuid"
)

// MemStore is the in-memory Store. All reads and writes go through a single
// mutex, so a partial update is a read-merge-write under the lock and
// concurrent coin or streak increments cannot be lost. Nothing survives a
// restart.
//
// Each entity family has its own id counter. Records are stored and returned
// by value so callers can never mutate the store through a leaked pointer.
type MemStore struct {
	mu sync.RWMutex

	users     map[int]models.User
	nextUser  int
	challenge map[int]models.Challenge
	nextChal  int
	journals  map[int]models.Journal
	nextJrnl  int
	summaries map[int]models.JournalSummary
	nextSumm  int
	plants    map[int]models.GardenPlant
	nextPlant int
	achieves  map[int]models.Achievement
	nextAchv  int
	files     map[uuid.UUID]models.File
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		users:     make(map[int]models.User),
		nextUser:  1,
		challenge: make(map[int]models.Challenge),
		nextChal:  1,
		journals:  make(map[int]models.Journal),
		nextJrnl:  1,
		summaries: make(map[int]models.JournalSummary),
		nextSumm:  1,
		plants:    make(map[int]models.GardenPlant),
		nextPlant: 1,
		achieves:  make(map[int]models.Achievement),
		nextAchv:  1,
		files:     make(map[uuid.UUID]models.File),
	}
}

// Users

func (s *MemStore) GetUser(ctx context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemStore) GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.FirebaseUID == firebaseUID {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

func (s *MemStore) CreateUser(ctx context.Context, ins models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.FirebaseUID == ins.FirebaseUID || u.Email == ins.Email || u.Username == ins.Username {
			return nil, ErrDuplicate
		}
	}
	user := ins.NewUser()
	user.ID = s.nextUser
	s.nextUser++
	user.CreatedAt = time.Now()
	s.users[user.ID] = user
	return &user, nil
}

func (s *MemStore) UpdateUser(ctx context.Context, id int, upd models.UserUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	user.Apply(upd)
	s.users[id] = user
	return &user, nil
}

// Challenges

func (s *MemStore) GetChallenge(ctx context.Context, id int) (*models.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ch, ok := s.challenge[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &ch, nil
}

func (s *MemStore) ListChallengesByUser(ctx context.Context, userID int) ([]models.Challenge, error) {
	return s.filterChallenges(func(ch models.Challenge) bool {
		return ch.UserID != nil && *ch.UserID == userID
	})
}

func (s *MemStore) ListChallengesByTopic(ctx context.Context, topic string) ([]models.Challenge, error) {
	return s.filterChallenges(func(ch models.Challenge) bool {
		return ch.Category == topic
	})
}

func (s *MemStore) ListChallengesByDifficulty(ctx context.Context, difficulty models.Difficulty) ([]models.Challenge, error) {
	return s.filterChallenges(func(ch models.Challenge) bool {
		return ch.Difficulty == difficulty
	})
}

func (s *MemStore) ListChallengesByDate(ctx context.Context, day time.Time) ([]models.Challenge, error) {
	return s.filterChallenges(func(ch models.Challenge) bool {
		return sameDay(ch.CreatedAt, day)
	})
}

func (s *MemStore) ListChallengesByCompleted(ctx context.Context, isCompleted bool) ([]models.Challenge, error) {
	return s.filterChallenges(func(ch models.Challenge) bool {
		return ch.IsCompleted == isCompleted
	})
}

func (s *MemStore) ListChallenges(ctx context.Context) ([]models.Challenge, error) {
	return s.filterChallenges(func(models.Challenge) bool { return true })
}

func (s *MemStore) filterChallenges(keep func(models.Challenge) bool) ([]models.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Challenge, 0)
	for _, ch := range s.challenge {
		if keep(ch) {
			out = append(out, ch)
		}
	}
	return out, nil
}

func (s *MemStore) CreateChallenge(ctx context.Context, ins models.InsertChallenge) (*models.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := ins.NewChallenge()
	ch.ID = s.nextChal
	s.nextChal++
	ch.CreatedAt = time.Now()
	s.challenge[ch.ID] = ch
	return &ch, nil
}

func (s *MemStore) UpdateChallenge(ctx context.Context, id int, upd models.ChallengeUpdate) (*models.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.challenge[id]
	if !ok {
		return nil, ErrNotFound
	}
	ch.Apply(upd)
	s.challenge[id] = ch
	return &ch, nil
}

func (s *MemStore) DeleteChallenge(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.challenge[id]; !ok {
		return ErrNotFound
	}
	delete(s.challenge, id)
	return nil
}

// Journals

func (s *MemStore) GetJournal(ctx context.Context, id int) (*models.Journal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.journals[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &j, nil
}

func (s *MemStore) ListJournalsByUser(ctx context.Context, userID int) ([]models.Journal, error) {
	return s.filterJournals(func(j models.Journal) bool {
		return j.UserID != nil && *j.UserID == userID
	})
}

func (s *MemStore) ListJournalsByDate(ctx context.Context, day time.Time) ([]models.Journal, error) {
	return s.filterJournals(func(j models.Journal) bool {
		return sameDay(j.CreatedAt, day)
	})
}

func (s *MemStore) ListJournals(ctx context.Context) ([]models.Journal, error) {
	return s.filterJournals(func(models.Journal) bool { return true })
}

func (s *MemStore) filterJournals(keep func(models.Journal) bool) ([]models.Journal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Journal, 0)
	for _, j := range s.journals {
		if keep(j) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (s *MemStore) CreateJournal(ctx context.Context, ins models.InsertJournal) (*models.Journal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := ins.NewJournal()
	j.ID = s.nextJrnl
	s.nextJrnl++
	j.CreatedAt = time.Now()
	s.journals[j.ID] = j
	return &j, nil
}

func (s *MemStore) UpdateJournal(ctx context.Context, id int, upd models.JournalUpdate) (*models.Journal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.journals[id]
	if !ok {
		return nil, ErrNotFound
	}
	j.Apply(upd)
	s.journals[id] = j
	return &j, nil
}

func (s *MemStore) DeleteJournal(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.journals[id]; !ok {
		return ErrNotFound
	}
	delete(s.journals, id)
	return nil
}

// Journal summaries

func (s *MemStore) GetJournalSummary(ctx context.Context, id int) (*models.JournalSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum, ok := s.summaries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &sum, nil
}

func (s *MemStore) ListJournalSummariesByUser(ctx context.Context, userID int) ([]models.JournalSummary, error) {
	return s.filterSummaries(func(sum models.JournalSummary) bool {
		return sum.UserID != nil && *sum.UserID == userID
	})
}

func (s *MemStore) GetJournalSummaryByJournal(ctx context.Context, journalID int) (*models.JournalSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sum := range s.summaries {
		if sum.JournalID != nil && *sum.JournalID == journalID {
			return &sum, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) ListJournalSummariesByDate(ctx context.Context, day time.Time) ([]models.JournalSummary, error) {
	return s.filterSummaries(func(sum models.JournalSummary) bool {
		return sameDay(sum.CreatedAt, day)
	})
}

func (s *MemStore) ListJournalSummariesByMood(ctx context.Context, moodTag string) ([]models.JournalSummary, error) {
	return s.filterSummaries(func(sum models.JournalSummary) bool {
		return sum.MoodTag != nil && *sum.MoodTag == moodTag
	})
}

func (s *MemStore) ListJournalSummaries(ctx context.Context) ([]models.JournalSummary, error) {
	return s.filterSummaries(func(models.JournalSummary) bool { return true })
}

func (s *MemStore) filterSummaries(keep func(models.JournalSummary) bool) ([]models.JournalSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.JournalSummary, 0)
	for _, sum := range s.summaries {
		if keep(sum) {
			out = append(out, sum)
		}
	}
	return out, nil
}

func (s *MemStore) CreateJournalSummary(ctx context.Context, ins models.InsertJournalSummary) (*models.JournalSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := ins.NewJournalSummary()
	sum.ID = s.nextSumm
	s.nextSumm++
	sum.CreatedAt = time.Now()
	s.summaries[sum.ID] = sum
	return &sum, nil
}

func (s *MemStore) UpdateJournalSummary(ctx context.Context, id int, upd models.JournalSummaryUpdate) (*models.JournalSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum, ok := s.summaries[id]
	if !ok {
		return nil, ErrNotFound
	}
	sum.Apply(upd)
	s.summaries[id] = sum
	return &sum, nil
}

func (s *MemStore) DeleteJournalSummary(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.summaries[id]; !ok {
		return ErrNotFound
	}
	delete(s.summaries, id)
	return nil
}

// Garden plants

func (s *MemStore) ListGardenPlantsByUser(ctx context.Context, userID int) ([]models.GardenPlant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.GardenPlant, 0)
	for _, p := range s.plants {
		if p.UserID != nil && *p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) CreateGardenPlant(ctx context.Context, ins models.InsertGardenPlant) (*models.GardenPlant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := ins.NewGardenPlant()
	p.ID = s.nextPlant
	s.nextPlant++
	p.UnlockedAt = time.Now()
	s.plants[p.ID] = p
	return &p, nil
}

func (s *MemStore) UpdateGardenPlant(ctx context.Context, id int, upd models.GardenPlantUpdate) (*models.GardenPlant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plants[id]
	if !ok {
		return nil, ErrNotFound
	}
	p.Apply(upd)
	s.plants[id] = p
	return &p, nil
}

// Achievements

func (s *MemStore) ListAchievementsByUser(ctx context.Context, userID int) ([]models.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Achievement, 0)
	for _, a := range s.achieves {
		if a.UserID != nil && *a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *MemStore) CreateAchievement(ctx context.Context, ins models.InsertAchievement) (*models.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := ins.NewAchievement()
	a.ID = s.nextAchv
	s.nextAchv++
	a.UnlockedAt = time.Now()
	s.achieves[a.ID] = a
	return &a, nil
}

// Files

func (s *MemStore) CreateFile(ctx context.Context, file *models.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	file.CreatedAt = time.Now()
	s.files[file.ID] = *file
	return nil
}

func (s *MemStore) GetFile(ctx context.Context, id uuid.UUID) (*models.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.files[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &f, nil
}
