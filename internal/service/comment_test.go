package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"news_api/internal/domain"
	"news_api/internal/service/mocks"
)

type CommentServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	articles  *mocks.MockArticleStore
	comments  *mocks.MockCommentStore
	users     *mocks.MockUserStore
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher

	service *CommentService
}

func (s *CommentServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.comments = mocks.NewMockCommentStore(s.ctrl)
	s.users = mocks.NewMockUserStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewCommentService(
		s.articles,
		s.comments,
		s.users,
		s.txManager,
		s.publisher,
		logger,
	)
}

func (s *CommentServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCommentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}

func (s *CommentServiceTestSuite) expectTransaction(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *CommentServiceTestSuite) TestCreate() {
	ctx := context.Background()
	nc := domain.NewComment{Username: "butter_bridge", Body: "hi"}
	created := &domain.Comment{
		CommentID: 19,
		ArticleID: 1,
		Author:    "butter_bridge",
		Body:      "hi",
		Votes:     0,
		CreatedAt: time.Now(),
	}

	s.expectTransaction(ctx)
	gomock.InOrder(
		s.articles.EXPECT().LockForShare(ctx, int64(1)).Return(nil),
		s.users.EXPECT().Exists(ctx, "butter_bridge").Return(true, nil),
		s.comments.EXPECT().Create(ctx, int64(1), nc).Return(created, nil),
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.Event) error {
			s.Equal(domain.EventCommentCreated, event.Type)
			s.Equal(int64(19), event.CommentID)
			s.Equal(int64(1), event.ArticleID)
			s.Equal("butter_bridge", event.Author)
			return nil
		},
	)

	got, err := s.service.Create(ctx, 1, nc)

	s.NoError(err)
	s.Equal(created, got)
}

func (s *CommentServiceTestSuite) TestCreate_MissingFieldsTouchNothing() {
	ctx := context.Background()

	for _, nc := range []domain.NewComment{
		{},
		{Username: "butter_bridge"},
		{Body: "hi"},
	} {
		_, err := s.service.Create(ctx, 1, nc)
		s.Equal(domain.KindBadRequest, domain.KindOf(err))
	}
}

func (s *CommentServiceTestSuite) TestCreate_ArticleNotFound() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.articles.EXPECT().LockForShare(ctx, int64(42)).Return(domain.E(domain.KindArticleNotFound, nil))

	_, err := s.service.Create(ctx, 42, domain.NewComment{Username: "nobody", Body: "hi"})

	s.Equal(domain.KindArticleNotFound, domain.KindOf(err))
}

func (s *CommentServiceTestSuite) TestCreate_UserNotFoundDoesNotInsert() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.articles.EXPECT().LockForShare(ctx, int64(1)).Return(nil)
	s.users.EXPECT().Exists(ctx, "nobody").Return(false, nil)

	_, err := s.service.Create(ctx, 1, domain.NewComment{Username: "nobody", Body: "hi"})

	s.Equal(domain.KindUserNotFound, domain.KindOf(err))
}

func (s *CommentServiceTestSuite) TestCreate_InsertError() {
	ctx := context.Background()
	nc := domain.NewComment{Username: "lurker", Body: "hi"}

	s.expectTransaction(ctx)
	s.articles.EXPECT().LockForShare(ctx, int64(1)).Return(nil)
	s.users.EXPECT().Exists(ctx, "lurker").Return(true, nil)
	s.comments.EXPECT().Create(ctx, int64(1), nc).Return(nil, errors.New("disk full"))

	_, err := s.service.Create(ctx, 1, nc)

	s.Error(err)
	s.Contains(err.Error(), "create comment on article 1")
	s.Equal(domain.KindUnknown, domain.KindOf(err))
}

func (s *CommentServiceTestSuite) TestDelete() {
	ctx := context.Background()

	s.comments.EXPECT().Delete(ctx, int64(1)).Return(int64(1), nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.Event) error {
			s.Equal(domain.EventCommentDeleted, event.Type)
			s.Equal(int64(1), event.CommentID)
			return nil
		},
	)

	s.NoError(s.service.Delete(ctx, 1))
}

func (s *CommentServiceTestSuite) TestDelete_NotFoundPublishesNothing() {
	ctx := context.Background()

	s.comments.EXPECT().Delete(ctx, int64(4242)).Return(int64(0), nil)

	err := s.service.Delete(ctx, 4242)

	s.Equal(domain.KindCommentNotFound, domain.KindOf(err))
}

func (s *CommentServiceTestSuite) TestDelete_StoreError() {
	ctx := context.Background()

	s.comments.EXPECT().Delete(ctx, int64(1)).Return(int64(0), errors.New("timeout"))

	err := s.service.Delete(ctx, 1)

	s.Error(err)
	s.Equal(domain.KindUnknown, domain.KindOf(err))
}
