//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"news_api/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
	dataset   *Dataset
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	ds, err := LoadDataset(filepath.Join("..", "..", "..", "testdata", "seed.yaml"))
	s.Require().NoError(err)
	s.dataset = ds

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("nc_news_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	s.Require().NoError(NewSeeder(s.db).Seed(s.ctx, s.dataset))
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) countComments(articleID int64) int {
	var count int
	err := s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM comments WHERE article_id = $1", articleID)
	s.Require().NoError(err)
	return count
}

func (s *PostgresIntegrationSuite) TestArticleStore_List_DefaultOrder() {
	store := NewArticleStore(s.db)

	articles, err := store.List(s.ctx, domain.ArticleQuery{SortBy: domain.SortByCreatedAt, Order: domain.OrderDesc})
	s.NoError(err)
	s.Len(articles, len(s.dataset.Articles))

	s.True(sort.SliceIsSorted(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	}))
}

func (s *PostgresIntegrationSuite) TestArticleStore_List_EverySortColumn() {
	store := NewArticleStore(s.db)

	for col := range sortExpressions {
		for _, order := range []domain.SortOrder{domain.OrderAsc, domain.OrderDesc} {
			articles, err := store.List(s.ctx, domain.ArticleQuery{SortBy: col, Order: order})
			s.Require().NoError(err, "sort_by=%s order=%s", col, order)
			s.Len(articles, len(s.dataset.Articles))

			less := func(i, j int) bool {
				a, b := articles[i], articles[j]
				if order == domain.OrderDesc {
					a, b = b, a
				}
				switch col {
				case domain.SortByAuthor:
					return a.Author <= b.Author
				case domain.SortByTitle:
					return a.Title <= b.Title
				case domain.SortByTopic:
					return a.Topic <= b.Topic
				case domain.SortByVotes:
					return a.Votes <= b.Votes
				case domain.SortByCommentCount:
					return a.CommentCount <= b.CommentCount
				case domain.SortByCreatedAt:
					return !a.CreatedAt.After(b.CreatedAt)
				default:
					return a.ArticleID <= b.ArticleID
				}
			}
			for i := 1; i < len(articles); i++ {
				s.True(less(i-1, i), "sort_by=%s order=%s index=%d", col, order, i)
			}
		}
	}
}

func (s *PostgresIntegrationSuite) TestArticleStore_List_CommentCounts() {
	store := NewArticleStore(s.db)

	articles, err := store.List(s.ctx, domain.ArticleQuery{SortBy: domain.SortByArticleID, Order: domain.OrderAsc})
	s.NoError(err)

	for _, a := range articles {
		s.Equal(s.countComments(a.ArticleID), a.CommentCount, "article %d", a.ArticleID)
	}
	s.Equal(11, articles[0].CommentCount)
	s.Equal(0, articles[1].CommentCount)
}

func (s *PostgresIntegrationSuite) TestArticleStore_List_TopicFilter() {
	store := NewArticleStore(s.db)

	articles, err := store.List(s.ctx, domain.ArticleQuery{SortBy: domain.SortByCreatedAt, Order: domain.OrderDesc, Topic: "cats"})
	s.NoError(err)
	s.Len(articles, 1)
	s.Equal("cats", articles[0].Topic)

	articles, err = store.List(s.ctx, domain.ArticleQuery{SortBy: domain.SortByCreatedAt, Order: domain.OrderDesc, Topic: "paper"})
	s.NoError(err)
	s.NotNil(articles)
	s.Empty(articles)
}

func (s *PostgresIntegrationSuite) TestArticleStore_Get() {
	store := NewArticleStore(s.db)

	article, err := store.Get(s.ctx, 1)
	s.NoError(err)
	s.Equal(int64(1), article.ArticleID)
	s.Equal("Living in the shadow of a great man", article.Title)
	s.Equal("mitch", article.Topic)
	s.Equal("butter_bridge", article.Author)
	s.Equal("I find this existence challenging", article.Body)
	s.Equal(100, article.Votes)
	s.Equal(11, article.CommentCount)
	s.True(time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC).Equal(article.CreatedAt))
}

func (s *PostgresIntegrationSuite) TestArticleStore_Get_ZeroComments() {
	store := NewArticleStore(s.db)

	article, err := store.Get(s.ctx, 2)
	s.NoError(err)
	s.Equal(0, article.CommentCount)
}

func (s *PostgresIntegrationSuite) TestArticleStore_Get_NotFound() {
	store := NewArticleStore(s.db)

	_, err := store.Get(s.ctx, 4242)
	s.Equal(domain.KindArticleNotFound, domain.KindOf(err))
}

func (s *PostgresIntegrationSuite) TestArticleStore_AddVotes_RoundTrip() {
	store := NewArticleStore(s.db)

	article, err := store.AddVotes(s.ctx, 1, 10)
	s.NoError(err)
	s.Equal(110, article.Votes)
	s.Equal(11, article.CommentCount)

	article, err = store.AddVotes(s.ctx, 1, -10)
	s.NoError(err)
	s.Equal(100, article.Votes)

	article, err = store.AddVotes(s.ctx, 2, -5)
	s.NoError(err)
	s.Equal(-5, article.Votes)
}

func (s *PostgresIntegrationSuite) TestArticleStore_AddVotes_NotFound() {
	store := NewArticleStore(s.db)

	_, err := store.AddVotes(s.ctx, 4242, 1)
	s.Equal(domain.KindArticleNotFound, domain.KindOf(err))
}

func (s *PostgresIntegrationSuite) TestArticleStore_AddVotes_Concurrent() {
	store := NewArticleStore(s.db)
	tm := NewTransactionManager(s.db)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
				if err := store.LockForUpdate(ctx, 1); err != nil {
					return err
				}
				_, err := store.AddVotes(ctx, 1, 1)
				return err
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	article, err := store.Get(s.ctx, 1)
	s.NoError(err)
	s.Equal(110, article.Votes)
}

func (s *PostgresIntegrationSuite) TestArticleStore_Lock_NotFound() {
	store := NewArticleStore(s.db)
	tm := NewTransactionManager(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		return store.LockForShare(ctx, 4242)
	})
	s.Equal(domain.KindArticleNotFound, domain.KindOf(err))
}

func (s *PostgresIntegrationSuite) TestCommentStore_ListByArticle() {
	store := NewCommentStore(s.db)

	comments, err := store.ListByArticle(s.ctx, 1)
	s.NoError(err)
	s.Len(comments, 11)
	for _, c := range comments {
		s.NotZero(c.CommentID)
		s.NotEmpty(c.Author)
		s.NotEmpty(c.Body)
	}

	comments, err = store.ListByArticle(s.ctx, 2)
	s.NoError(err)
	s.NotNil(comments)
	s.Empty(comments)
}

func (s *PostgresIntegrationSuite) TestCommentStore_Create() {
	store := NewCommentStore(s.db)

	comment, err := store.Create(s.ctx, 1, domain.NewComment{Username: "butter_bridge", Body: "hi"})
	s.NoError(err)
	s.Equal(int64(1), comment.ArticleID)
	s.Equal("butter_bridge", comment.Author)
	s.Equal("hi", comment.Body)
	s.Equal(0, comment.Votes)
	s.WithinDuration(time.Now(), comment.CreatedAt, time.Minute)
	s.Equal(12, s.countComments(1))
}

func (s *PostgresIntegrationSuite) TestCommentStore_Create_ForeignKeys() {
	store := NewCommentStore(s.db)

	_, err := store.Create(s.ctx, 1, domain.NewComment{Username: "nobody", Body: "hi"})
	s.Equal(domain.KindUserNotFound, domain.KindOf(err))

	_, err = store.Create(s.ctx, 4242, domain.NewComment{Username: "butter_bridge", Body: "hi"})
	s.Equal(domain.KindArticleNotFound, domain.KindOf(err))
}

func (s *PostgresIntegrationSuite) TestCommentStore_Delete() {
	store := NewCommentStore(s.db)

	n, err := store.Delete(s.ctx, 2)
	s.NoError(err)
	s.Equal(int64(1), n)
	s.Equal(10, s.countComments(1))

	n, err = store.Delete(s.ctx, 2)
	s.NoError(err)
	s.Equal(int64(0), n)

	var total int
	s.NoError(s.db.GetContext(s.ctx, &total, "SELECT COUNT(*) FROM comments"))
	s.Equal(len(s.dataset.Comments)-1, total)
}

func (s *PostgresIntegrationSuite) TestCatalogStores() {
	topics, err := NewTopicStore(s.db).List(s.ctx)
	s.NoError(err)
	s.Len(topics, 3)

	users, err := NewUserStore(s.db).List(s.ctx)
	s.NoError(err)
	s.Len(users, 4)

	ok, err := NewTopicStore(s.db).Exists(s.ctx, "paper")
	s.NoError(err)
	s.True(ok)

	ok, err = NewTopicStore(s.db).Exists(s.ctx, "bananas")
	s.NoError(err)
	s.False(ok)

	ok, err = NewUserStore(s.db).Exists(s.ctx, "lurker")
	s.NoError(err)
	s.True(ok)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	comments := NewCommentStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if _, err := comments.Create(ctx, 2, domain.NewComment{Username: "lurker", Body: "gone"}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.ErrorIs(err, context.Canceled)
	s.Equal(0, s.countComments(2))
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	comments := NewCommentStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		_, err := comments.Create(ctx, 2, domain.NewComment{Username: "lurker", Body: "kept"})
		return err
	})
	s.NoError(err)
	s.Equal(1, s.countComments(2))
}
