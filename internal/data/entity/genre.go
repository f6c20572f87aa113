package entity

type Genre struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
