package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"unzone-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore is the Postgres-backed Store, over the schema created by
// cmd/create-schema. Uniqueness is enforced by the unique indexes; 23505
// violations surface as ErrDuplicate.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a Postgres store on the given pool.
func NewPgStore(db *pgxpool.Pool) *PgStore {
	return &PgStore{db: db}
}

func mapPgErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}

const userColumns = `id, firebase_uid, email, name, username, coins, streak,
	garden_level, total_challenges, comfort_profile, challenge_preferences,
	difficulty_preference, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID,
		&u.FirebaseUID,
		&u.Email,
		&u.Name,
		&u.Username,
		&u.Coins,
		&u.Streak,
		&u.GardenLevel,
		&u.TotalChallenges,
		&u.ComfortProfile,
		&u.ChallengePreferences,
		&u.DifficultyPreference,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return u, nil
}

// Users

func (s *PgStore) GetUser(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(s.db.QueryRow(ctx, query, id))
}

func (s *PgStore) GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE firebase_uid = $1`
	return scanUser(s.db.QueryRow(ctx, query, firebaseUID))
}

func (s *PgStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(s.db.QueryRow(ctx, query, email))
}

func (s *PgStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(s.db.QueryRow(ctx, query, username))
}

func (s *PgStore) ListUsers(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (s *PgStore) CreateUser(ctx context.Context, ins models.InsertUser) (*models.User, error) {
	u := ins.NewUser()
	query := `
		INSERT INTO users (
			firebase_uid, email, name, username, coins, streak,
			garden_level, total_challenges, comfort_profile,
			challenge_preferences, difficulty_preference
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`

	err := s.db.QueryRow(
		ctx, query,
		u.FirebaseUID,
		u.Email,
		u.Name,
		u.Username,
		u.Coins,
		u.Streak,
		u.GardenLevel,
		u.TotalChallenges,
		u.ComfortProfile,
		u.ChallengePreferences,
		u.DifficultyPreference,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &u, nil
}

// setClause accumulates "col = $n" fragments for a partial update.
type setClause struct {
	sets []string
	args []interface{}
}

func (c *setClause) add(col string, val interface{}) {
	c.args = append(c.args, val)
	c.sets = append(c.sets, fmt.Sprintf("%s = $%d", col, len(c.args)))
}

func (s *PgStore) UpdateUser(ctx context.Context, id int, upd models.UserUpdate) (*models.User, error) {
	c := &setClause{}
	if upd.FirebaseUID != nil {
		c.add("firebase_uid", *upd.FirebaseUID)
	}
	if upd.Email != nil {
		c.add("email", *upd.Email)
	}
	if upd.Name != nil {
		c.add("name", *upd.Name)
	}
	if upd.Username != nil {
		c.add("username", *upd.Username)
	}
	if upd.Coins != nil {
		c.add("coins", *upd.Coins)
	}
	if upd.Streak != nil {
		c.add("streak", *upd.Streak)
	}
	if upd.GardenLevel != nil {
		c.add("garden_level", *upd.GardenLevel)
	}
	if upd.TotalChallenges != nil {
		c.add("total_challenges", *upd.TotalChallenges)
	}
	if upd.ComfortProfile != nil {
		c.add("comfort_profile", *upd.ComfortProfile)
	}
	if upd.ChallengePreferences != nil {
		c.add("challenge_preferences", upd.ChallengePreferences)
	}
	if upd.DifficultyPreference != nil {
		c.add("difficulty_preference", *upd.DifficultyPreference)
	}
	if len(c.sets) == 0 {
		return s.GetUser(ctx, id)
	}

	c.args = append(c.args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING `+userColumns,
		strings.Join(c.sets, ", "), len(c.args))
	return scanUser(s.db.QueryRow(ctx, query, c.args...))
}

// Challenges

const challengeColumns = `id, user_id, title, description, category,
	difficulty, reward, is_completed, completed_at, created_at`

func scanChallenge(row pgx.Row) (*models.Challenge, error) {
	ch := &models.Challenge{}
	err := row.Scan(
		&ch.ID,
		&ch.UserID,
		&ch.Title,
		&ch.Description,
		&ch.Category,
		&ch.Difficulty,
		&ch.Reward,
		&ch.IsCompleted,
		&ch.CompletedAt,
		&ch.CreatedAt,
	)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return ch, nil
}

func (s *PgStore) queryChallenges(ctx context.Context, query string, args ...interface{}) ([]models.Challenge, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Challenge, 0)
	for rows.Next() {
		ch, err := scanChallenge(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ch)
	}
	return out, rows.Err()
}

func (s *PgStore) GetChallenge(ctx context.Context, id int) (*models.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE id = $1`
	return scanChallenge(s.db.QueryRow(ctx, query, id))
}

func (s *PgStore) ListChallengesByUser(ctx context.Context, userID int) ([]models.Challenge, error) {
	return s.queryChallenges(ctx,
		`SELECT `+challengeColumns+` FROM challenges WHERE user_id = $1 ORDER BY id`, userID)
}

func (s *PgStore) ListChallengesByTopic(ctx context.Context, topic string) ([]models.Challenge, error) {
	return s.queryChallenges(ctx,
		`SELECT `+challengeColumns+` FROM challenges WHERE category = $1 ORDER BY id`, topic)
}

func (s *PgStore) ListChallengesByDifficulty(ctx context.Context, difficulty models.Difficulty) ([]models.Challenge, error) {
	return s.queryChallenges(ctx,
		`SELECT `+challengeColumns+` FROM challenges WHERE difficulty = $1 ORDER BY id`, string(difficulty))
}

func (s *PgStore) ListChallengesByDate(ctx context.Context, day time.Time) ([]models.Challenge, error) {
	return s.queryChallenges(ctx,
		`SELECT `+challengeColumns+` FROM challenges WHERE created_at::date = $1::date ORDER BY id`, day)
}

func (s *PgStore) ListChallengesByCompleted(ctx context.Context, isCompleted bool) ([]models.Challenge, error) {
	return s.queryChallenges(ctx,
		`SELECT `+challengeColumns+` FROM challenges WHERE is_completed = $1 ORDER BY id`, isCompleted)
}

func (s *PgStore) ListChallenges(ctx context.Context) ([]models.Challenge, error) {
	return s.queryChallenges(ctx, `SELECT `+challengeColumns+` FROM challenges ORDER BY id`)
}

func (s *PgStore) CreateChallenge(ctx context.Context, ins models.InsertChallenge) (*models.Challenge, error) {
	ch := ins.NewChallenge()
	query := `
		INSERT INTO challenges (
			user_id, title, description, category, difficulty, reward, is_completed
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := s.db.QueryRow(
		ctx, query,
		ch.UserID,
		ch.Title,
		ch.Description,
		ch.Category,
		string(ch.Difficulty),
		ch.Reward,
		ch.IsCompleted,
	).Scan(&ch.ID, &ch.CreatedAt)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &ch, nil
}

func (s *PgStore) UpdateChallenge(ctx context.Context, id int, upd models.ChallengeUpdate) (*models.Challenge, error) {
	c := &setClause{}
	if upd.UserID != nil {
		c.add("user_id", *upd.UserID)
	}
	if upd.Title != nil {
		c.add("title", *upd.Title)
	}
	if upd.Description != nil {
		c.add("description", *upd.Description)
	}
	if upd.Category != nil {
		c.add("category", *upd.Category)
	}
	if upd.Difficulty != nil {
		c.add("difficulty", string(*upd.Difficulty))
	}
	if upd.Reward != nil {
		c.add("reward", *upd.Reward)
	}
	if upd.IsCompleted != nil {
		c.add("is_completed", *upd.IsCompleted)
	}
	if upd.CompletedAt != nil {
		c.add("completed_at", *upd.CompletedAt)
	}
	if len(c.sets) == 0 {
		return s.GetChallenge(ctx, id)
	}

	c.args = append(c.args, id)
	query := fmt.Sprintf(`UPDATE challenges SET %s WHERE id = $%d RETURNING `+challengeColumns,
		strings.Join(c.sets, ", "), len(c.args))
	return scanChallenge(s.db.QueryRow(ctx, query, c.args...))
}

func (s *PgStore) DeleteChallenge(ctx context.Context, id int) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM challenges WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Journals

const journalColumns = `id, user_id, challenge_id, content, mood, word_count, created_at`

func scanJournal(row pgx.Row) (*models.Journal, error) {
	j := &models.Journal{}
	err := row.Scan(
		&j.ID,
		&j.UserID,
		&j.ChallengeID,
		&j.Content,
		&j.Mood,
		&j.WordCount,
		&j.CreatedAt,
	)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return j, nil
}

func (s *PgStore) queryJournals(ctx context.Context, query string, args ...interface{}) ([]models.Journal, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Journal, 0)
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}

func (s *PgStore) GetJournal(ctx context.Context, id int) (*models.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE id = $1`
	return scanJournal(s.db.QueryRow(ctx, query, id))
}

func (s *PgStore) ListJournalsByUser(ctx context.Context, userID int) ([]models.Journal, error) {
	return s.queryJournals(ctx,
		`SELECT `+journalColumns+` FROM journals WHERE user_id = $1 ORDER BY id`, userID)
}

func (s *PgStore) ListJournalsByDate(ctx context.Context, day time.Time) ([]models.Journal, error) {
	return s.queryJournals(ctx,
		`SELECT `+journalColumns+` FROM journals WHERE created_at::date = $1::date ORDER BY id`, day)
}

func (s *PgStore) ListJournals(ctx context.Context) ([]models.Journal, error) {
	return s.queryJournals(ctx, `SELECT `+journalColumns+` FROM journals ORDER BY id`)
}

func (s *PgStore) CreateJournal(ctx context.Context, ins models.InsertJournal) (*models.Journal, error) {
	j := ins.NewJournal()
	query := `
		INSERT INTO journals (user_id, challenge_id, content, mood, word_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := s.db.QueryRow(
		ctx, query,
		j.UserID,
		j.ChallengeID,
		j.Content,
		j.Mood,
		j.WordCount,
	).Scan(&j.ID, &j.CreatedAt)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &j, nil
}

func (s *PgStore) UpdateJournal(ctx context.Context, id int, upd models.JournalUpdate) (*models.Journal, error) {
	c := &setClause{}
	if upd.UserID != nil {
		c.add("user_id", *upd.UserID)
	}
	if upd.ChallengeID != nil {
		c.add("challenge_id", *upd.ChallengeID)
	}
	if upd.Content != nil {
		c.add("content", *upd.Content)
	}
	if upd.Mood != nil {
		c.add("mood", *upd.Mood)
	}
	if upd.WordCount != nil {
		c.add("word_count", *upd.WordCount)
	}
	if len(c.sets) == 0 {
		return s.GetJournal(ctx, id)
	}

	c.args = append(c.args, id)
	query := fmt.Sprintf(`UPDATE journals SET %s WHERE id = $%d RETURNING `+journalColumns,
		strings.Join(c.sets, ", "), len(c.args))
	return scanJournal(s.db.QueryRow(ctx, query, c.args...))
}

func (s *PgStore) DeleteJournal(ctx context.Context, id int) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM journals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Journal summaries

const summaryColumns = `id, journal_id, user_id, summary, sentiment, mood_tag, created_at`

func scanSummary(row pgx.Row) (*models.JournalSummary, error) {
	sum := &models.JournalSummary{}
	err := row.Scan(
		&sum.ID,
		&sum.JournalID,
		&sum.UserID,
		&sum.Summary,
		&sum.Sentiment,
		&sum.MoodTag,
		&sum.CreatedAt,
	)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return sum, nil
}

func (s *PgStore) querySummaries(ctx context.Context, query string, args ...interface{}) ([]models.JournalSummary, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.JournalSummary, 0)
	for rows.Next() {
		sum, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sum)
	}
	return out, rows.Err()
}

func (s *PgStore) GetJournalSummary(ctx context.Context, id int) (*models.JournalSummary, error) {
	query := `SELECT ` + summaryColumns + ` FROM journal_summaries WHERE id = $1`
	return scanSummary(s.db.QueryRow(ctx, query, id))
}

func (s *PgStore) ListJournalSummariesByUser(ctx context.Context, userID int) ([]models.JournalSummary, error) {
	return s.querySummaries(ctx,
		`SELECT `+summaryColumns+` FROM journal_summaries WHERE user_id = $1 ORDER BY id`, userID)
}

func (s *PgStore) GetJournalSummaryByJournal(ctx context.Context, journalID int) (*models.JournalSummary, error) {
	query := `SELECT ` + summaryColumns + ` FROM journal_summaries WHERE journal_id = $1 LIMIT 1`
	return scanSummary(s.db.QueryRow(ctx, query, journalID))
}

func (s *PgStore) ListJournalSummariesByDate(ctx context.Context, day time.Time) ([]models.JournalSummary, error) {
	return s.querySummaries(ctx,
		`SELECT `+summaryColumns+` FROM journal_summaries WHERE created_at::date = $1::date ORDER BY id`, day)
}

func (s *PgStore) ListJournalSummariesByMood(ctx context.Context, moodTag string) ([]models.JournalSummary, error) {
	return s.querySummaries(ctx,
		`SELECT `+summaryColumns+` FROM journal_summaries WHERE mood_tag = $1 ORDER BY id`, moodTag)
}

func (s *PgStore) ListJournalSummaries(ctx context.Context) ([]models.JournalSummary, error) {
	return s.querySummaries(ctx, `SELECT `+summaryColumns+` FROM journal_summaries ORDER BY id`)
}

func (s *PgStore) CreateJournalSummary(ctx context.Context, ins models.InsertJournalSummary) (*models.JournalSummary, error) {
	sum := ins.NewJournalSummary()
	query := `
		INSERT INTO journal_summaries (journal_id, user_id, summary, sentiment, mood_tag)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := s.db.QueryRow(
		ctx, query,
		sum.JournalID,
		sum.UserID,
		sum.Summary,
		sum.Sentiment,
		sum.MoodTag,
	).Scan(&sum.ID, &sum.CreatedAt)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &sum, nil
}

func (s *PgStore) UpdateJournalSummary(ctx context.Context, id int, upd models.JournalSummaryUpdate) (*models.JournalSummary, error) {
	c := &setClause{}
	if upd.JournalID != nil {
		c.add("journal_id", *upd.JournalID)
	}
	if upd.UserID != nil {
		c.add("user_id", *upd.UserID)
	}
	if upd.Summary != nil {
		c.add("summary", *upd.Summary)
	}
	if upd.Sentiment != nil {
		c.add("sentiment", string(*upd.Sentiment))
	}
	if upd.MoodTag != nil {
		c.add("mood_tag", *upd.MoodTag)
	}
	if len(c.sets) == 0 {
		return s.GetJournalSummary(ctx, id)
	}

	c.args = append(c.args, id)
	query := fmt.Sprintf(`UPDATE journal_summaries SET %s WHERE id = $%d RETURNING `+summaryColumns,
		strings.Join(c.sets, ", "), len(c.args))
	return scanSummary(s.db.QueryRow(ctx, query, c.args...))
}

func (s *PgStore) DeleteJournalSummary(ctx context.Context, id int) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM journal_summaries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Garden plants

const plantColumns = `id, user_id, type, name, progress, is_blooming, "position", unlocked_at`

func scanPlant(row pgx.Row) (*models.GardenPlant, error) {
	p := &models.GardenPlant{}
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Type,
		&p.Name,
		&p.Progress,
		&p.IsBlooming,
		&p.Position,
		&p.UnlockedAt,
	)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return p, nil
}

func (s *PgStore) ListGardenPlantsByUser(ctx context.Context, userID int) ([]models.GardenPlant, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+plantColumns+` FROM garden_plants WHERE user_id = $1 ORDER BY "position"`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.GardenPlant, 0)
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (s *PgStore) CreateGardenPlant(ctx context.Context, ins models.InsertGardenPlant) (*models.GardenPlant, error) {
	p := ins.NewGardenPlant()
	query := `
		INSERT INTO garden_plants (user_id, type, name, progress, is_blooming, "position")
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, unlocked_at`

	err := s.db.QueryRow(
		ctx, query,
		p.UserID,
		p.Type,
		p.Name,
		p.Progress,
		p.IsBlooming,
		p.Position,
	).Scan(&p.ID, &p.UnlockedAt)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &p, nil
}

func (s *PgStore) UpdateGardenPlant(ctx context.Context, id int, upd models.GardenPlantUpdate) (*models.GardenPlant, error) {
	c := &setClause{}
	if upd.UserID != nil {
		c.add("user_id", *upd.UserID)
	}
	if upd.Type != nil {
		c.add("type", *upd.Type)
	}
	if upd.Name != nil {
		c.add("name", *upd.Name)
	}
	if upd.Progress != nil {
		c.add("progress", *upd.Progress)
	}
	if upd.IsBlooming != nil {
		c.add("is_blooming", *upd.IsBlooming)
	}
	if upd.Position != nil {
		c.add(`"position"`, *upd.Position)
	}
	if len(c.sets) == 0 {
		query := `SELECT ` + plantColumns + ` FROM garden_plants WHERE id = $1`
		return scanPlant(s.db.QueryRow(ctx, query, id))
	}

	c.args = append(c.args, id)
	query := fmt.Sprintf(`UPDATE garden_plants SET %s WHERE id = $%d RETURNING `+plantColumns,
		strings.Join(c.sets, ", "), len(c.args))
	return scanPlant(s.db.QueryRow(ctx, query, c.args...))
}

// Achievements

func (s *PgStore) ListAchievementsByUser(ctx context.Context, userID int) ([]models.Achievement, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, title, description, icon, unlocked_at
		 FROM achievements WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Achievement, 0)
	for rows.Next() {
		a := models.Achievement{}
		if err := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.Description, &a.Icon, &a.UnlockedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *PgStore) CreateAchievement(ctx context.Context, ins models.InsertAchievement) (*models.Achievement, error) {
	a := ins.NewAchievement()
	query := `
		INSERT INTO achievements (user_id, title, description, icon)
		VALUES ($1, $2, $3, $4)
		RETURNING id, unlocked_at`

	err := s.db.QueryRow(ctx, query, a.UserID, a.Title, a.Description, a.Icon).
		Scan(&a.ID, &a.UnlockedAt)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &a, nil
}

// Files

func (s *PgStore) CreateFile(ctx context.Context, file *models.File) error {
	query := `
		INSERT INTO files (id, user_id, filename, mime_type, size, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := s.db.QueryRow(
		ctx, query,
		file.ID,
		file.UserID,
		file.Filename,
		file.MimeType,
		file.Size,
		file.StoragePath,
	).Scan(&file.CreatedAt)
	if err != nil {
		return mapPgErr(err)
	}
	return nil
}

func (s *PgStore) GetFile(ctx context.Context, id uuid.UUID) (*models.File, error) {
	f := &models.File{}
	query := `
		SELECT id, user_id, filename, mime_type, size, storage_path, created_at
		FROM files WHERE id = $1`

	err := s.db.QueryRow(ctx, query, id).Scan(
		&f.ID,
		&f.UserID,
		&f.Filename,
		&f.MimeType,
		&f.Size,
		&f.StoragePath,
		&f.CreatedAt,
	)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return f, nil
}
