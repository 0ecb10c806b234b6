package models

import (
	"time"
)

// Sentiment classifies a journal summary.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
	SentimentNegative Sentiment = "NEGATIVE"
)

// Journal is a free-text reflection, optionally tied to a challenge.
// WordCount is supplied by the client at creation time and is not
// recomputed here.
type Journal struct {
	ID          int       `json:"id"`
	UserID      *int      `json:"userId"`
	ChallengeID *int      `json:"challengeId"`
	Content     string    `json:"content"`
	Mood        *string   `json:"mood"`
	WordCount   int       `json:"wordCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InsertJournal is the creation schema for a journal entry.
type InsertJournal struct {
	UserID      *int    `json:"userId"`
	ChallengeID *int    `json:"challengeId"`
	Content     string  `json:"content" binding:"required"`
	Mood        *string `json:"mood"`
	WordCount   *int    `json:"wordCount" binding:"omitempty,min=0"`
}

// JournalUpdate is a partial update; nil fields are left untouched.
type JournalUpdate struct {
	UserID      *int    `json:"userId"`
	ChallengeID *int    `json:"challengeId"`
	Content     *string `json:"content"`
	Mood        *string `json:"mood"`
	WordCount   *int    `json:"wordCount"`
}

// NewJournal materializes an insert payload with defaults filled.
func (i InsertJournal) NewJournal() Journal {
	j := Journal{
		UserID:      i.UserID,
		ChallengeID: i.ChallengeID,
		Content:     i.Content,
		Mood:        i.Mood,
	}
	if i.WordCount != nil {
		j.WordCount = *i.WordCount
	}
	return j
}

// Apply merges the non-nil fields of the update into the journal.
func (j *Journal) Apply(upd JournalUpdate) {
	if upd.UserID != nil {
		j.UserID = upd.UserID
	}
	if upd.ChallengeID != nil {
		j.ChallengeID = upd.ChallengeID
	}
	if upd.Content != nil {
		j.Content = *upd.Content
	}
	if upd.Mood != nil {
		j.Mood = upd.Mood
	}
	if upd.WordCount != nil {
		j.WordCount = *upd.WordCount
	}
}

// JournalSummary is a derived sentiment/mood annotation of a journal. It is
// not cascaded with its journal; either side may outlive the other.
type JournalSummary struct {
	ID        int        `json:"id"`
	JournalID *int       `json:"journalId"`
	UserID    *int       `json:"userId"`
	Summary   string     `json:"summary"`
	Sentiment *Sentiment `json:"sentiment"`
	MoodTag   *string    `json:"moodTag"`
	CreatedAt time.Time  `json:"createdAt"`
}

// InsertJournalSummary is the creation schema for a journal summary.
type InsertJournalSummary struct {
	JournalID *int       `json:"journalId"`
	UserID    *int       `json:"userId"`
	Summary   string     `json:"summary" binding:"required"`
	Sentiment *Sentiment `json:"sentiment" binding:"omitempty,oneof=POSITIVE NEUTRAL NEGATIVE"`
	MoodTag   *string    `json:"moodTag"`
}

// JournalSummaryUpdate is a partial update; nil fields are left untouched.
type JournalSummaryUpdate struct {
	JournalID *int       `json:"journalId"`
	UserID    *int       `json:"userId"`
	Summary   *string    `json:"summary"`
	Sentiment *Sentiment `json:"sentiment"`
	MoodTag   *string    `json:"moodTag"`
}

// NewJournalSummary materializes an insert payload.
func (i InsertJournalSummary) NewJournalSummary() JournalSummary {
	return JournalSummary{
		JournalID: i.JournalID,
		UserID:    i.UserID,
		Summary:   i.Summary,
		Sentiment: i.Sentiment,
		MoodTag:   i.MoodTag,
	}
}

// Apply merges the non-nil fields of the update into the summary.
func (s *JournalSummary) Apply(upd JournalSummaryUpdate) {
	if upd.JournalID != nil {
		s.JournalID = upd.JournalID
	}
	if upd.UserID != nil {
		s.UserID = upd.UserID
	}
	if upd.Summary != nil {
		s.Summary = *upd.Summary
	}
	if upd.Sentiment != nil {
		s.Sentiment = upd.Sentiment
	}
	if upd.MoodTag != nil {
		s.MoodTag = upd.MoodTag
	}
}
