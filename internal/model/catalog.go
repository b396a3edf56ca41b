package model

import "github.com/shopspring/decimal"

// HubID is the pseudo-outlet id under which the central hub is exposed to clients.
const HubID = "hub_pusat"

type Product struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

type Outlet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductStock is a catalog product together with the quantity held at one location.
type ProductStock struct {
	Product
	Stock int `json:"stock"`
}

// DefaultProducts is the static menu sold at every outlet
var DefaultProducts = []Product{
	{ID: 1, Name: "Ayam Dada", Price: decimal.NewFromInt(10000), Image: "https://images.unsplash.com/photo-1626645738196-c2a7c87a8f58?q=80&w=300&auto=format&fit=crop"},
	{ID: 2, Name: "Paha Atas", Price: decimal.NewFromInt(10000), Image: "https://images.unsplash.com/photo-1569058242253-92a9c755a0ec?q=80&w=300&auto=format&fit=crop"},
	{ID: 3, Name: "Sayap", Price: decimal.NewFromInt(8000), Image: "https://i.huffpost.com/gen/1350227/images/o-MIGHTY-WINGS-facebook.jpg"},
	{ID: 4, Name: "Paha Bawah", Price: decimal.NewFromInt(8000), Image: "https://images.unsplash.com/photo-1626082927389-6cd097cdc6ec?q=80&w=300&auto=format&fit=crop"},
	{ID: 5, Name: "Nasi Putih", Price: decimal.NewFromInt(4000), Image: "https://images.unsplash.com/photo-1516684732162-798a0062be99?q=80&w=300&auto=format&fit=crop"},
	{ID: 6, Name: "Es Teh", Price: decimal.NewFromInt(3000), Image: "https://images.unsplash.com/photo-1556679343-c7306c1976bc?q=80&w=300&auto=format&fit=crop"},
}

var DefaultOutlets = []Outlet{
	{ID: "outlet_1", Name: "Cabang UNNES Sekaran"},
	{ID: "outlet_2", Name: "Cabang Banaran"},
	{ID: "outlet_3", Name: "Cabang Patemon"},
	{ID: "outlet_4", Name: "Cabang Sampangan"},
}

// Catalog is the read-only product and outlet registry. It keeps the
// declaration order for listings and indexes both by id for lookups.
type Catalog struct {
	products    []Product
	outlets     []Outlet
	productByID map[int]Product
	outletByID  map[string]Outlet
}

func NewCatalog(products []Product, outlets []Outlet) *Catalog {
	c := &Catalog{
		products:    append([]Product(nil), products...),
		outlets:     append([]Outlet(nil), outlets...),
		productByID: make(map[int]Product, len(products)),
		outletByID:  make(map[string]Outlet, len(outlets)),
	}
	for _, p := range products {
		c.productByID[p.ID] = p
	}
	for _, o := range outlets {
		c.outletByID[o.ID] = o
	}
	return c
}

func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultProducts, DefaultOutlets)
}

func (c *Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}

func (c *Catalog) Outlets() []Outlet {
	return append([]Outlet(nil), c.outlets...)
}

func (c *Catalog) Product(id int) (Product, bool) {
	p, ok := c.productByID[id]
	return p, ok
}

func (c *Catalog) Outlet(id string) (Outlet, bool) {
	o, ok := c.outletByID[id]
	return o, ok
}

// OutletName falls back to "Unknown Outlet" so log rows for retired ids still render.
func (c *Catalog) OutletName(id string) string {
	if o, ok := c.outletByID[id]; ok {
		return o.Name
	}
	return "Unknown Outlet"
}
