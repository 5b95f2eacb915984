package postgres

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"gopkg.in/yaml.v3"

	"news_api/internal/domain"
	"news_api/migrations"
)

// Dataset is the seed file layout. Articles receive ids 1..n in list order,
// which is what SeedComment.ArticleID refers to.
type Dataset struct {
	Topics   []domain.Topic `yaml:"topics"`
	Users    []domain.User  `yaml:"users"`
	Articles []SeedArticle  `yaml:"articles"`
	Comments []SeedComment  `yaml:"comments"`
}

type SeedArticle struct {
	Title         string    `yaml:"title" db:"title"`
	Topic         string    `yaml:"topic" db:"topic"`
	Author        string    `yaml:"author" db:"author"`
	Body          string    `yaml:"body" db:"body"`
	CreatedAt     time.Time `yaml:"created_at" db:"created_at"`
	Votes         int       `yaml:"votes" db:"votes"`
	ArticleImgURL *string   `yaml:"article_img_url" db:"article_img_url"`
}

type SeedComment struct {
	ArticleID int64     `yaml:"article_id" db:"article_id"`
	Author    string    `yaml:"author" db:"author"`
	Body      string    `yaml:"body" db:"body"`
	Votes     int       `yaml:"votes" db:"votes"`
	CreatedAt time.Time `yaml:"created_at" db:"created_at"`
}

func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return &ds, nil
}

type Seeder struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewSeeder(db *sqlx.DB) *Seeder {
	return &Seeder{db: db, tm: NewTransactionManager(db)}
}

// Seed drops and recreates the schema, then loads ds, all in one transaction.
func (s *Seeder) Seed(ctx context.Context, ds *Dataset) error {
	return s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, s.db)

		for _, file := range []string{migrations.SchemaDown, migrations.SchemaUp} {
			if err := execScript(ctx, exec, file); err != nil {
				return err
			}
		}

		if len(ds.Topics) > 0 {
			if _, err := sqlx.NamedExecContext(ctx, exec,
				"INSERT INTO topics (slug, description) VALUES (:slug, :description)", ds.Topics); err != nil {
				return fmt.Errorf("insert topics: %w", err)
			}
		}

		if len(ds.Users) > 0 {
			if _, err := sqlx.NamedExecContext(ctx, exec,
				"INSERT INTO users (username, name, avatar_url) VALUES (:username, :name, :avatar_url)", ds.Users); err != nil {
				return fmt.Errorf("insert users: %w", err)
			}
		}

		for i, a := range ds.Articles {
			if _, err := sqlx.NamedExecContext(ctx, exec, `
				INSERT INTO articles (title, topic, author, body, created_at, votes, article_img_url)
				VALUES (:title, :topic, :author, :body, :created_at, :votes, :article_img_url)`, a); err != nil {
				return fmt.Errorf("insert article %d: %w", i+1, err)
			}
		}

		if len(ds.Comments) > 0 {
			if _, err := sqlx.NamedExecContext(ctx, exec, `
				INSERT INTO comments (article_id, author, body, votes, created_at)
				VALUES (:article_id, :author, :body, :votes, :created_at)`, ds.Comments); err != nil {
				return fmt.Errorf("insert comments: %w", err)
			}
		}

		return nil
	})
}

func execScript(ctx context.Context, exec sqlx.ExtContext, name string) error {
	script, err := migrations.FS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	for _, stmt := range strings.Split(string(script), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := exec.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}
	return nil
}
