package domain

type SortColumn string

const (
	SortByAuthor       SortColumn = "author"
	SortByTitle        SortColumn = "title"
	SortByArticleID    SortColumn = "article_id"
	SortByTopic        SortColumn = "topic"
	SortByCreatedAt    SortColumn = "created_at"
	SortByVotes        SortColumn = "votes"
	SortByCommentCount SortColumn = "comment_count"
)

var sortColumns = map[SortColumn]struct{}{
	SortByAuthor:       {},
	SortByTitle:        {},
	SortByArticleID:    {},
	SortByTopic:        {},
	SortByCreatedAt:    {},
	SortByVotes:        {},
	SortByCommentCount: {},
}

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

const (
	DefaultSortColumn = SortByCreatedAt
	DefaultSortOrder  = OrderDesc
)

// ArticleQuery is a validated article listing request. Topic is empty when unfiltered.
type ArticleQuery struct {
	SortBy SortColumn
	Order  SortOrder
	Topic  string
}

// ParseArticleQuery validates raw listing parameters. Empty sortBy and order
// fall back to the defaults.
func ParseArticleQuery(sortBy, order, topic string) (ArticleQuery, error) {
	q := ArticleQuery{
		SortBy: DefaultSortColumn,
		Order:  DefaultSortOrder,
		Topic:  topic,
	}

	if sortBy != "" {
		col := SortColumn(sortBy)
		if _, ok := sortColumns[col]; !ok {
			return ArticleQuery{}, E(KindInvalidQuery, nil)
		}
		q.SortBy = col
	}

	switch SortOrder(order) {
	case "":
	case OrderAsc, OrderDesc:
		q.Order = SortOrder(order)
	default:
		return ArticleQuery{}, E(KindInvalidQuery, nil)
	}

	return q, nil
}
