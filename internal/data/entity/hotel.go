package entity

type Hotel struct {
	Base
	Name        string `db:"name"`
	City        string `db:"city"`
	Address     string `db:"address"`
	Description string `db:"description"`
	OwnerID     *int64 `db:"owner_id"`
}
