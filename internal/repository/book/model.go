package book

type BookDB struct {
	Nr     int64
	ISBN   string
	Title  string
	Author string
	Price  string
}
