package repositories

// TaraDbRepository groups all queries against the governance database.
type TaraDbRepository struct{}

func NewTaraDbRepository() *TaraDbRepository {
	return &TaraDbRepository{}
}
