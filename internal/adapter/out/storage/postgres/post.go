package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newswire/internal/adapter/out/storage"
	"newswire/internal/model"
	"newswire/internal/service"
	"newswire/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

var (
	ErrBuildingQuery = errors.New("error building sql-query")
)

var postColumns = []string{
	tableinfo.PostIDColumn,
	tableinfo.PostTitleColumn,
	tableinfo.PostSummaryColumn,
	tableinfo.PostContentColumn,
	tableinfo.PostCategoryColumn,
	tableinfo.PostImageURLColumn,
	tableinfo.PostCreatedAtColumn,
}

type PostStorage struct {
	db     DB
	getter *trmpgx.CtxGetter
}

func NewPostStorage(db DB, getter *trmpgx.CtxGetter) *PostStorage {
	return &PostStorage{
		db:     db,
		getter: getter,
	}
}

// CreatePost inserts the writable fields in a single statement; id and
// created_at come back from the database, so the insert is all-or-nothing.
func (s *PostStorage) CreatePost(ctx context.Context, in model.Post) (model.Post, error) {
	var out model.Post

	query, args, err := sq.
		Insert(tableinfo.PostsTableName).
		Columns(
			tableinfo.PostTitleColumn,
			tableinfo.PostSummaryColumn,
			tableinfo.PostContentColumn,
			tableinfo.PostCategoryColumn,
			tableinfo.PostImageURLColumn,
		).
		Values(in.Title, in.Summary, in.Content, in.Category, in.ImageURL).
		Suffix("RETURNING " + strings.Join(postColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if err := tr.QueryRow(ctx, query, args...).Scan(
		&out.ID,
		&out.Title,
		&out.Summary,
		&out.Content,
		&out.Category,
		&out.ImageURL,
		&out.CreatedAt,
	); err != nil {
		return out, fmt.Errorf("exec error creating post: %w", err)
	}

	return out, nil
}

func (s *PostStorage) GetPostByID(ctx context.Context, postID int64) (model.Post, error) {
	var out model.Post

	query, args, err := sq.
		Select(postColumns...).
		From(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostIDColumn: postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if err := tr.QueryRow(ctx, query, args...).Scan(
		&out.ID,
		&out.Title,
		&out.Summary,
		&out.Content,
		&out.Category,
		&out.ImageURL,
		&out.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return out, service.ErrNotFound
		}
		return out, fmt.Errorf("exec select post by id: %w", err)
	}

	return out, nil
}

func (s *PostStorage) ListPosts(ctx context.Context, filter storage.ListPostsFilter) ([]model.Post, error) {
	query, args, err := listPostsQueryBuilder(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec error selecting posts: %w", err)
	}
	defer rows.Close()

	var out []model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Summary,
			&p.Content,
			&p.Category,
			&p.ImageURL,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return out, nil
}

// listPostsQueryBuilder orders oldest first with id as tiebreak so listing
// order always follows insertion order.
func listPostsQueryBuilder(filter storage.ListPostsFilter) sq.SelectBuilder {
	qb := sq.
		Select(postColumns...).
		From(tableinfo.PostsTableName).
		OrderBy(
			tableinfo.PostCreatedAtColumn+" ASC",
			tableinfo.PostIDColumn+" ASC",
		).
		PlaceholderFormat(sq.Dollar)

	if filter.Category != "" {
		qb = qb.Where(sq.Eq{tableinfo.PostCategoryColumn: filter.Category})
	}

	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		qb = qb.Where(sq.Or{
			sq.ILike{tableinfo.PostTitleColumn: pattern},
			sq.ILike{tableinfo.PostContentColumn: pattern},
		})
	}

	return qb
}

// escapeLike neutralizes LIKE metacharacters so the filter stays an exact
// substring test instead of a pattern match.
func escapeLike(s string) string {
	return strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	).Replace(s)
}
