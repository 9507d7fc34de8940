package seed

import "weardistrict/internal/domain"

type productSeed struct {
	ID          int
	Name        string
	PriceCents  int64
	Category    string
	Sizes       []string
	Image       string
	Description string
}

var (
	tops    = []string{"XS", "S", "M", "L", "XL"}
	waists  = []string{"28", "30", "32", "34", "36"}
	noXS    = []string{"S", "M", "L", "XL"}
	noXL    = []string{"XS", "S", "M", "L"}
	sneaker = []string{"6", "7", "8", "9", "10", "11"}
)

// The storefront has always shipped id 11 twice; the product service
// renumbers the second occurrence when it loads the catalog.
var catalog = []productSeed{
	{1, "Classic White T-Shirt", 2999, "Tops", tops, "/images/white-tshirt.jpg", "Comfortable and versatile white t-shirt"},
	{2, "Denim Blue Jeans", 5999, "Bottoms", waists, "/images/jeans.jpg", "Classic fit denim jeans"},
	{3, "Black Hoodie", 4999, "Tops", tops, "/images/hoodie.jpg", "Cozy and warm black hoodie"},
	{4, "Striped Summer Dress", 3999, "Dresses", tops, "/images/summer-dress.jpg", "Lightweight and breathable summer dress"},
	{5, "Khaki Chinos", 4499, "Bottoms", waists, "/images/chinos.jpg", "Versatile khaki chinos for casual wear"},
	{6, "Red Polo Shirt", 3499, "Tops", tops, "/images/red-polo.jpg", "Classic polo shirt in vibrant red"},
	{7, "Floral Maxi Skirt", 5499, "Bottoms", tops, "/images/floral-skirt.jpg", "Beautiful floral maxi skirt"},
	{8, "Blue Denim Jacket", 7499, "Outerwear", tops, "/images/denim-jacket.jpg", "Casual blue denim jacket for all seasons"},
	{9, "Athletic Jogger Pants", 4299, "Bottoms", noXS, "/images/joggers.jpg", "Comfortable joggers perfect for exercise or casual wear"},
	{11, "Beige Cardigan", 3999, "Tops", tops, "/images/cardigan.jpg", "Soft knit cardigan ideal for layering"},
	{10, "Plaid Button-Up Shirt", 3399, "Tops", noXS, "/images/plaid-shirt.jpg", "Classic plaid long-sleeve button-up shirt"},
	{11, "Black Skinny Jeans", 4999, "Bottoms", waists, "/images/skinny-jeans.jpg", "Stretch-fit black skinny jeans"},
	{12, "Green V-Neck Sweater", 4599, "Tops", tops, "/images/vneck-sweater.jpg", "Warm and stylish green v-neck sweater"},
	{13, "Casual Sneakers", 6999, "Footwear", sneaker, "/images/sneakers.jpg", "Lightweight and comfortable casual sneakers"},
	{14, "Black Mini Skirt", 3899, "Bottoms", noXL, "/images/mini-skirt.jpg", "Chic black mini skirt for everyday wear"},
	{15, "Winter Puffer Coat", 10999, "Outerwear", noXS, "/images/puffer-coat.jpg", "Extra warm puffer coat for cold seasons"},
	{16, "Graphic Print Tee", 2799, "Tops", tops, "/images/graphic-tee.jpg", "Trendy graphic tee with a modern design"},
	{17, "Striped Sweatshirt", 4899, "Tops", tops, "/images/striped-sweatshirt.jpg", "Flowy wide-leg trousers for comfort and style"},
	{18, "Lightweight Windbreaker", 5299, "Outerwear", noXS, "/images/windbreaker.jpg", "Water-resistant windbreaker jacket"},
}

// Products returns a fresh copy of the demo catalog.
func Products() []domain.Product {
	out := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, domain.Product{
			ID:          p.ID,
			Name:        p.Name,
			Price:       domain.Money(p.PriceCents),
			Category:    p.Category,
			Sizes:       append([]string(nil), p.Sizes...),
			Image:       p.Image,
			Description: p.Description,
		})
	}
	return out
}

// Users returns the two demo accounts.
func Users() []domain.User {
	return []domain.User{
		{ID: 1, Email: "admin@example.com", Password: "admin123", Name: "Admin User", IsAdmin: true},
		{ID: 2, Email: "user@example.com", Password: "user123", Name: "Test User", IsAdmin: false},
	}
}
