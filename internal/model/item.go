package model

// Item represents a sellable catalog entry in the database.
type Item struct {
	ID     int64
	Title  string
	Price  int64
	Active bool
}

// ItemForm carries the raw item-creation form fields as submitted.
type ItemForm struct {
	Title string
	Price string
}
