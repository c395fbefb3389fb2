package entity

type Enrollment struct {
	Base
	UserID int    `db:"user_id"`
	Name   string `db:"name"`
}
