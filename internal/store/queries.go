package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/hacksnooze/snooze-client/models"
)

// Query builders for the local SQLite schema. SQLite uses ? placeholders,
// squirrel's default.

const sessionRowID = 1

var storyCacheColumns = []string{
	"story_id",
	"title",
	"author",
	"url",
	"username",
	"created_at",
	"position",
}

func buildUpsertSessionQuery(session models.Session) (string, []any, error) {
	return sq.Insert("session").
		Columns("id", "username", "token", "saved_at").
		Values(sessionRowID, session.Username, session.Token, session.SavedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET username = excluded.username, token = excluded.token, saved_at = excluded.saved_at").
		ToSql()
}

func buildSelectSessionQuery() (string, []any, error) {
	return sq.Select("username", "token", "saved_at").
		From("session").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return sq.Delete("session").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func buildInsertStoryQuery(story models.Story, position int) (string, []any, error) {
	return sq.Insert("story_cache").
		Columns(storyCacheColumns...).
		Values(story.StoryID, story.Title, story.Author, story.URL, story.Username, story.CreatedAt, position).
		ToSql()
}

func buildSelectStoriesQuery() (string, []any, error) {
	return sq.Select("story_id", "title", "author", "url", "username", "created_at").
		From("story_cache").
		OrderBy("position ASC").
		ToSql()
}

func buildClearStoriesQuery() (string, []any, error) {
	return sq.Delete("story_cache").ToSql()
}
