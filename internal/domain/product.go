package domain

// Product is a catalog entry. Sizes serialize under "size" to match the
// storefront's stored product shape.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       Money    `json:"price"`
	Category    string   `json:"category"`
	Sizes       []string `json:"size"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	out := p
	if p.Sizes != nil {
		out.Sizes = append([]string(nil), p.Sizes...)
	}
	return out
}

// ProductPatch names the mutable product fields. Nil fields are left unchanged.
type ProductPatch struct {
	Name        *string  `json:"name,omitempty"`
	Price       *Money   `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Sizes       []string `json:"size,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// Apply merges the patch into p.
func (pp ProductPatch) Apply(p *Product) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
	if pp.Sizes != nil {
		p.Sizes = append([]string(nil), pp.Sizes...)
	}
	if pp.Image != nil {
		p.Image = *pp.Image
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
}
