package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/courseforum/conversation-service/internal/model"
	"github.com/courseforum/conversation-service/internal/pkg/access"
)

const headlineOptions = "StartSel=<mark>, StopSel=</mark>, MaxWords=35, MinWords=15"

type conversationSearchRow struct {
	ID             int64    `db:"id"`
	Reference      int64    `db:"reference"`
	TitleRank      *float64 `db:"title_rank"`
	TitleHighlight *string  `db:"title_highlight"`
	AuthorRank     *float64 `db:"author_rank"`
	ContentRank    *float64 `db:"content_rank"`
}

// SearchConversations runs the filtered, ranked, paginated list query. The
// base set is every conversation in the course passing the visibility
// predicate; search mode left-joins three independent full-text sources
// (title, message author name, message content) and keeps conversations
// matching at least one, ordered pinned-first, then best rank across the
// three sources, then most recent activity.
func (r *Repository) SearchConversations(ctx context.Context, course *model.Course, enrollment *model.Enrollment, filter *model.ConversationFilter, page, pageSize int) (*model.ConversationPage, error) {
	query, args, err := buildSearchConversationsQuery(course, enrollment, filter, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []conversationSearchRow
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search conversations: %v", err)
	}

	moreExist := len(rows) > pageSize
	if moreExist {
		rows = rows[:pageSize]
	}

	searching := filter.Search != ""

	conversations := make([]model.ConversationRef, 0, len(rows))
	for _, row := range rows {
		ref := model.ConversationRef{Reference: strconv.FormatInt(row.Reference, 10)}
		if searching {
			searchResult, err := r.resolveSearchResult(ctx, enrollment, &row, filter.Search)
			if err != nil {
				return nil, err
			}
			ref.SearchResult = searchResult
		}
		conversations = append(conversations, ref)
	}

	return &model.ConversationPage{
		Conversations: conversations,
		MoreExist:     moreExist,
	}, nil
}

func buildSearchConversationsQuery(course *model.Course, enrollment *model.Enrollment, filter *model.ConversationFilter, page, pageSize int) (string, []interface{}, error) {
	if page < 1 {
		page = 1
	}

	searching := filter.Search != ""

	columns := []string{"conversations.id", "conversations.reference"}
	if searching {
		columns = append(columns,
			"title_matches.rank AS title_rank",
			"title_matches.highlight AS title_highlight",
			"author_matches.rank AS author_rank",
			"content_matches.rank AS content_rank",
		)
	} else {
		columns = append(columns,
			"NULL AS title_rank",
			"NULL AS title_highlight",
			"NULL AS author_rank",
			"NULL AS content_rank",
		)
	}

	queryBuilder := sq.Select(columns...).
		From("conversations").
		Where(sq.Eq{"conversations.course_id": course.ID}).
		Where(access.VisibleConversations(enrollment))

	if searching {
		queryBuilder = queryBuilder.
			LeftJoin(
				"(SELECT conversations.id AS conversation_id,"+
					" ts_rank(conversations.title_search, websearch_to_tsquery('simple', ?)) AS rank,"+
					" ts_headline('simple', conversations.title, websearch_to_tsquery('simple', ?), '"+headlineOptions+"') AS highlight"+
					" FROM conversations"+
					" WHERE conversations.course_id = ?"+
					" AND conversations.title_search @@ websearch_to_tsquery('simple', ?)"+
					") AS title_matches ON title_matches.conversation_id = conversations.id",
				filter.Search, filter.Search, course.ID, filter.Search,
			).
			LeftJoin(
				"(SELECT messages.conversation_id AS conversation_id,"+
					" MAX(ts_rank(users.name_search, websearch_to_tsquery('simple', ?))) AS rank"+
					" FROM messages"+
					" JOIN enrollments ON messages.author_enrollment_id = enrollments.id"+
					" JOIN users ON enrollments.user_id = users.id"+
					" WHERE users.name_search @@ websearch_to_tsquery('simple', ?)"+
					" AND (? OR messages.anonymous_at IS NULL OR messages.author_enrollment_id = ?)"+
					" GROUP BY messages.conversation_id"+
					") AS author_matches ON author_matches.conversation_id = conversations.id",
				filter.Search, filter.Search, enrollment.IsStaff(), enrollment.ID,
			).
			LeftJoin(
				"(SELECT messages.conversation_id AS conversation_id,"+
					" MAX(ts_rank(messages.content_search_index, websearch_to_tsquery('simple', ?))) AS rank"+
					" FROM messages"+
					" WHERE messages.content_search_index @@ websearch_to_tsquery('simple', ?)"+
					" GROUP BY messages.conversation_id"+
					") AS content_matches ON content_matches.conversation_id = conversations.id",
				filter.Search, filter.Search,
			).
			Where("(title_matches.conversation_id IS NOT NULL" +
				" OR author_matches.conversation_id IS NOT NULL" +
				" OR content_matches.conversation_id IS NOT NULL)")
	}

	if len(filter.TagsReferences) > 0 {
		// a single IN-list join: "any of the selected tags", not "all of"
		queryBuilder = queryBuilder.
			Join("taggings ON taggings.conversation_id = conversations.id").
			Join("tags ON taggings.tag_id = tags.id").
			Where(sq.Eq{"tags.reference": filter.TagsReferences})

		groupBy := []string{
			"conversations.id",
			"conversations.reference",
			"conversations.pinned_at",
			"conversations.updated_at",
			"conversations.created_at",
		}
		if searching {
			groupBy = append(groupBy,
				"title_matches.rank",
				"title_matches.highlight",
				"author_matches.rank",
				"content_matches.rank",
			)
		}
		queryBuilder = queryBuilder.GroupBy(groupBy...)
	}

	if filter.IsUnread != nil {
		unreadExists := "EXISTS (SELECT 1 FROM messages" +
			" WHERE messages.conversation_id = conversations.id" +
			" AND NOT EXISTS (SELECT 1 FROM readings" +
			" WHERE readings.message_id = messages.id AND readings.enrollment_id = ?))"
		if *filter.IsUnread {
			queryBuilder = queryBuilder.Where(unreadExists, enrollment.ID)
		} else {
			queryBuilder = queryBuilder.Where("NOT "+unreadExists, enrollment.ID)
		}
	}

	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, conversationType := range filter.Types {
			types[i] = string(conversationType)
		}
		queryBuilder = queryBuilder.Where(sq.Eq{"conversations.type": types})
	}

	// resolved/announcement filters constrain only their own type; rows of
	// other types pass untouched
	if filter.IsResolved != nil {
		if *filter.IsResolved {
			queryBuilder = queryBuilder.Where(
				sq.Or{
					sq.NotEq{"conversations.type": string(model.ConversationTypeQuestion)},
					sq.NotEq{"conversations.resolved_at": nil},
				})
		} else {
			queryBuilder = queryBuilder.Where(
				sq.Or{
					sq.NotEq{"conversations.type": string(model.ConversationTypeQuestion)},
					sq.Eq{"conversations.resolved_at": nil},
				})
		}
	}

	if filter.IsAnnouncement != nil {
		if *filter.IsAnnouncement {
			queryBuilder = queryBuilder.Where(
				sq.Or{
					sq.NotEq{"conversations.type": string(model.ConversationTypeNote)},
					sq.NotEq{"conversations.announcement_at": nil},
				})
		} else {
			queryBuilder = queryBuilder.Where(
				sq.Or{
					sq.NotEq{"conversations.type": string(model.ConversationTypeNote)},
					sq.Eq{"conversations.announcement_at": nil},
				})
		}
	}

	if len(filter.Participantses) > 0 {
		participantses := make([]string, len(filter.Participantses))
		for i, participants := range filter.Participantses {
			participantses[i] = string(participants)
		}
		queryBuilder = queryBuilder.Where(sq.Eq{"conversations.participants": participantses})
	}

	if filter.IsPinned != nil {
		if *filter.IsPinned {
			queryBuilder = queryBuilder.Where(sq.NotEq{"conversations.pinned_at": nil})
		} else {
			queryBuilder = queryBuilder.Where(sq.Eq{"conversations.pinned_at": nil})
		}
	}

	orderBy := []string{"conversations.pinned_at IS NOT NULL DESC"}
	if searching {
		orderBy = append(orderBy,
			"GREATEST(coalesce(title_matches.rank, 0), coalesce(author_matches.rank, 0), coalesce(content_matches.rank, 0)) DESC")
	}
	orderBy = append(orderBy, "coalesce(conversations.updated_at, conversations.created_at) DESC")

	return queryBuilder.
		OrderBy(orderBy...).
		Limit(uint64(pageSize + 1)).
		Offset(uint64((page - 1) * pageSize)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

func (r *Repository) resolveSearchResult(ctx context.Context, enrollment *model.Enrollment, row *conversationSearchRow, search string) (*model.SearchResult, error) {
	return pickSearchResult(row,
		func() (string, string, error) { return r.getAuthorNameMatch(ctx, enrollment, row.ID, search) },
		func() (string, string, error) { return r.getContentMatch(ctx, row.ID, search) },
	)
}

// pickSearchResult attaches exactly one search result per conversation,
// with the fixed priority title > author name > message content. A ranked
// source can still resolve no concrete message (the matching rows may be
// invisible to the viewer); the next source takes over then.
func pickSearchResult(row *conversationSearchRow, authorMatch, contentMatch func() (string, string, error)) (*model.SearchResult, error) {
	if row.TitleRank != nil {
		highlight := ""
		if row.TitleHighlight != nil {
			highlight = *row.TitleHighlight
		}
		return &model.SearchResult{
			Type:                       model.SearchResultConversationTitle,
			ConversationTitleHighlight: highlight,
		}, nil
	}

	if row.AuthorRank != nil {
		messageReference, highlight, err := authorMatch()
		if err != nil {
			return nil, err
		}
		if messageReference != "" {
			return &model.SearchResult{
				Type:                       model.SearchResultMessageAuthorName,
				MessageReference:           messageReference,
				MessageAuthorNameHighlight: highlight,
			}, nil
		}
	}

	if row.ContentRank != nil {
		messageReference, snippet, err := contentMatch()
		if err != nil {
			return nil, err
		}
		if messageReference != "" {
			return &model.SearchResult{
				Type:                  model.SearchResultMessageContent,
				MessageReference:      messageReference,
				MessageContentSnippet: snippet,
			}, nil
		}
	}

	return nil, nil
}

type messageMatchRow struct {
	Reference int64  `db:"reference"`
	Highlight string `db:"highlight"`
}

func buildAuthorNameMatchQuery(enrollment *model.Enrollment, conversationID int64, search string) (string, []interface{}, error) {
	return sq.Select("messages.reference").
		Column(sq.Expr(
			"ts_headline('simple', users.name, websearch_to_tsquery('simple', ?), '"+headlineOptions+"') AS highlight",
			search,
		)).
		From("messages").
		Join("enrollments ON messages.author_enrollment_id = enrollments.id").
		Join("users ON enrollments.user_id = users.id").
		Where(sq.Eq{"messages.conversation_id": conversationID}).
		Where("users.name_search @@ websearch_to_tsquery('simple', ?)", search).
		Where("(? OR messages.anonymous_at IS NULL OR messages.author_enrollment_id = ?)",
			enrollment.IsStaff(), enrollment.ID).
		OrderByClause("ts_rank(users.name_search, websearch_to_tsquery('simple', ?)) DESC", search).
		OrderBy("messages.reference ASC").
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

func (r *Repository) getAuthorNameMatch(ctx context.Context, enrollment *model.Enrollment, conversationID int64, search string) (string, string, error) {
	query, args, err := buildAuthorNameMatchQuery(enrollment, conversationID, search)
	if err != nil {
		return "", "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var row messageMatchRow
	err = r.Chk(ctx).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to get author name match: %v", err)
	}

	return strconv.FormatInt(row.Reference, 10), row.Highlight, nil
}

func buildContentMatchQuery(conversationID int64, search string) (string, []interface{}, error) {
	return sq.Select("messages.reference").
		Column(sq.Expr(
			"ts_headline('simple', messages.content_search, websearch_to_tsquery('simple', ?), '"+headlineOptions+"') AS highlight",
			search,
		)).
		From("messages").
		Where(sq.Eq{"messages.conversation_id": conversationID}).
		Where("messages.content_search_index @@ websearch_to_tsquery('simple', ?)", search).
		OrderByClause("ts_rank(messages.content_search_index, websearch_to_tsquery('simple', ?)) DESC", search).
		OrderBy("messages.reference ASC").
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

func (r *Repository) getContentMatch(ctx context.Context, conversationID int64, search string) (string, string, error) {
	query, args, err := buildContentMatchQuery(conversationID, search)
	if err != nil {
		return "", "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var row messageMatchRow
	err = r.Chk(ctx).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to get content match: %v", err)
	}

	return strconv.FormatInt(row.Reference, 10), row.Highlight, nil
}
