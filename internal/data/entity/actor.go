package entity

type Actor struct {
	ID        int64  `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}

func (a *Actor) FullName() string {
	return a.FirstName + " " + a.LastName
}
