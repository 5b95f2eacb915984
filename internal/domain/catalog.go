package domain

type Topic struct {
	Slug        string `db:"slug" json:"slug" yaml:"slug"`
	Description string `db:"description" json:"description" yaml:"description"`
}

type User struct {
	Username  string `db:"username" json:"username" yaml:"username"`
	Name      string `db:"name" json:"name" yaml:"name"`
	AvatarURL string `db:"avatar_url" json:"avatar_url" yaml:"avatar_url"`
}
