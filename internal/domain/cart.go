package domain

// CartLine is a product snapshot plus the chosen size and quantity. The JSON
// shape is flat ({id, name, price, ..., size, quantity}) because that is how
// the cart blob has always been stored.
type CartLine struct {
	ProductID   int    `json:"id"`
	Name        string `json:"name"`
	Price       Money  `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
}

// MaxQuantity is the largest quantity a single cart line may hold.
const MaxQuantity = 9999

// ValidQuantity reports whether qty fits a cart line.
func ValidQuantity(qty int) bool {
	return qty >= 1 && qty <= MaxQuantity
}

// LineKey identifies a cart line.
type LineKey struct {
	ProductID int
	Size      string
}

// NewCartLine snapshots p for the given size and quantity.
func NewCartLine(p Product, size string, quantity int) CartLine {
	return CartLine{
		ProductID:   p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		Description: p.Description,
		Size:        size,
		Quantity:    quantity,
	}
}

func (l CartLine) Key() LineKey {
	return LineKey{ProductID: l.ProductID, Size: l.Size}
}

// Total is price times quantity.
func (l CartLine) Total() Money {
	return l.Price.Times(l.Quantity)
}
