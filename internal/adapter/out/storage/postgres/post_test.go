package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"newswire/internal/adapter/out/storage"
	"newswire/internal/adapter/out/storage/postgres/mocks"
	"newswire/internal/model"
	"newswire/internal/service"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error {
	return r.scan(dest...)
}

func Test_listPostsQueryBuilder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		filter       storage.ListPostsFilter
		wantContains []string
		wantMissing  []string
		wantArgs     []any
	}{
		{
			name:         "no filter",
			filter:       storage.ListPostsFilter{},
			wantContains: []string{"ORDER BY created_at ASC, id ASC"},
			wantMissing:  []string{"WHERE"},
		},
		{
			name:         "category filter",
			filter:       storage.ListPostsFilter{Category: "Weather"},
			wantContains: []string{"category = $1", "ORDER BY created_at ASC, id ASC"},
			wantArgs:     []any{"Weather"},
		},
		{
			name:         "search filter over title or content",
			filter:       storage.ListPostsFilter{Search: "storm"},
			wantContains: []string{"title ILIKE $1", "content ILIKE $2", " OR "},
			wantArgs:     []any{"%storm%", "%storm%"},
		},
		{
			name:   "combined filters",
			filter: storage.ListPostsFilter{Category: "Weather", Search: "storm"},
			wantContains: []string{
				"category = $1",
				"title ILIKE $2",
				"content ILIKE $3",
			},
			wantArgs: []any{"Weather", "%storm%", "%storm%"},
		},
		{
			name:         "search wildcards are escaped",
			filter:       storage.ListPostsFilter{Search: "100%_done"},
			wantContains: []string{"ILIKE"},
			wantArgs:     []any{`%100\%\_done%`, `%100\%\_done%`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sql, args, err := listPostsQueryBuilder(tt.filter).ToSql()
			require.NoError(t, err)

			for _, w := range tt.wantContains {
				require.Contains(t, sql, w)
			}
			for _, w := range tt.wantMissing {
				require.NotContains(t, sql, w)
			}
			if tt.wantArgs != nil {
				require.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestPostStorage_CreatePost_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mocks.NewMockDB(ctrl)

	now := time.Now()

	// ctx, sql, then the five writable columns
	mockDB.
		EXPECT().
		QueryRow(
			gomock.Any(),
			gomock.Any(),
			"Storm Warning", "Heavy rain expected", "Rain forecast for the coast.", "Weather", "https://x/y.jpg",
		).
		Return(fakeRow{
			// id, title, summary, content, category, image_url, created_at
			scan: func(dest ...any) error {
				*(dest[0].(*int64)) = 1
				*(dest[1].(*string)) = "Storm Warning"
				*(dest[2].(*string)) = "Heavy rain expected"
				*(dest[3].(*string)) = "Rain forecast for the coast."
				*(dest[4].(*string)) = "Weather"
				*(dest[5].(*string)) = "https://x/y.jpg"
				*(dest[6].(*time.Time)) = now
				return nil
			},
		})

	st := NewPostStorage(mockDB, trmpgx.DefaultCtxGetter)

	out, err := st.CreatePost(context.Background(), model.Post{
		Title:    "Storm Warning",
		Summary:  "Heavy rain expected",
		Content:  "Rain forecast for the coast.",
		Category: "Weather",
		ImageURL: "https://x/y.jpg",
	})
	require.NoError(t, err)

	require.Equal(t, int64(1), out.ID)
	require.Equal(t, "Storm Warning", out.Title)
	require.Equal(t, "Heavy rain expected", out.Summary)
	require.Equal(t, "Rain forecast for the coast.", out.Content)
	require.Equal(t, "Weather", out.Category)
	require.Equal(t, "https://x/y.jpg", out.ImageURL)
	require.False(t, out.CreatedAt.IsZero())
}

func TestPostStorage_GetPostByID_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mocks.NewMockDB(ctrl)
	mockDB.
		EXPECT().
		QueryRow(gomock.Any(), gomock.Any(), int64(9999)).
		Return(fakeRow{
			scan: func(_ ...any) error { return pgx.ErrNoRows },
		})

	st := NewPostStorage(mockDB, trmpgx.DefaultCtxGetter)

	_, err := st.GetPostByID(context.Background(), 9999)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestPostStorage_ListPosts(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name      string
		filter    storage.ListPostsFilter
		setupMock func(m *mocks.MockDB)
		check     func(t *testing.T, got []model.Post, err error)
	}{
		{
			name:   "success without filter",
			filter: storage.ListPostsFilter{},
			setupMock: func(m *mocks.MockDB) {
				rows := pgxmock.
					NewRows([]string{"id", "title", "summary", "content", "category", "image_url", "created_at"}).
					AddRow(int64(1), "t1", "s1", "b1", "Weather", "https://x/1.jpg", now.Add(-time.Minute)).
					AddRow(int64(2), "t2", "s2", "b2", "Business", "https://x/2.jpg", now).
					Kind()

				m.EXPECT().
					Query(gomock.Any(), gomock.Any()).
					Return(rows, nil)
			},
			check: func(t *testing.T, got []model.Post, err error) {
				require.NoError(t, err)
				require.Len(t, got, 2)
				require.Equal(t, int64(1), got[0].ID)
				require.Equal(t, "t1", got[0].Title)
				require.Equal(t, int64(2), got[1].ID)
			},
		},
		{
			name:   "success with search filter",
			filter: storage.ListPostsFilter{Search: "storm"},
			setupMock: func(m *mocks.MockDB) {
				rows := pgxmock.
					NewRows([]string{"id", "title", "summary", "content", "category", "image_url", "created_at"}).
					AddRow(int64(1), "Storm Warning", "s", "b", "Weather", "https://x/1.jpg", now).
					Kind()

				m.EXPECT().
					Query(gomock.Any(), gomock.Any(), "%storm%", "%storm%").
					Return(rows, nil)
			},
			check: func(t *testing.T, got []model.Post, err error) {
				require.NoError(t, err)
				require.Len(t, got, 1)
				require.Equal(t, "Storm Warning", got[0].Title)
			},
		},
		{
			name:   "query error",
			filter: storage.ListPostsFilter{},
			setupMock: func(m *mocks.MockDB) {
				m.EXPECT().
					Query(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db fail"))
			},
			check: func(t *testing.T, got []model.Post, err error) {
				require.Error(t, err)
				require.Nil(t, got)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := mocks.NewMockDB(ctrl)
			tt.setupMock(mockDB)

			st := NewPostStorage(mockDB, trmpgx.DefaultCtxGetter)

			got, err := st.ListPosts(context.Background(), tt.filter)
			tt.check(t, got, err)
		})
	}
}

func Test_escapeLike(t *testing.T) {
	t.Parallel()

	require.Equal(t, `100\%`, escapeLike("100%"))
	require.Equal(t, `a\_b`, escapeLike("a_b"))
	require.Equal(t, `c:\\temp`, escapeLike(`c:\temp`))
	require.Equal(t, "plain", escapeLike("plain"))
}
