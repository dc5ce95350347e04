package woo

// Wire types for the WooCommerce REST API (wc/v3) and the WordPress media
// API (wp/v2). Price and dimension fields are strings because that is what
// the remote API expects and returns.

type Product struct {
	ID               int                `json:"id,omitempty"`
	Name             string             `json:"name,omitempty"`
	Type             string             `json:"type,omitempty"`
	Status           string             `json:"status,omitempty"`
	Description      string             `json:"description,omitempty"`
	ShortDescription string             `json:"short_description,omitempty"`
	SKU              string             `json:"sku,omitempty"`
	RegularPrice     string             `json:"regular_price,omitempty"`
	SalePrice        string             `json:"sale_price,omitempty"`
	DateOnSaleTo     string             `json:"date_on_sale_to,omitempty"`
	ManageStock      bool               `json:"manage_stock,omitempty"`
	StockQuantity    *int               `json:"stock_quantity,omitempty"`
	StockStatus      string             `json:"stock_status,omitempty"`
	Weight           string             `json:"weight,omitempty"`
	Dimensions       *Dimensions        `json:"dimensions,omitempty"`
	Categories       []CategoryRef      `json:"categories,omitempty"`
	Images           []Image            `json:"images,omitempty"`
	Attributes       []ProductAttribute `json:"attributes,omitempty"`
}

type Variation struct {
	ID            int                  `json:"id,omitempty"`
	SKU           string               `json:"sku,omitempty"`
	RegularPrice  string               `json:"regular_price,omitempty"`
	SalePrice     string               `json:"sale_price,omitempty"`
	DateOnSaleTo  string               `json:"date_on_sale_to,omitempty"`
	ManageStock   bool                 `json:"manage_stock,omitempty"`
	StockQuantity *int                 `json:"stock_quantity,omitempty"`
	Weight        string               `json:"weight,omitempty"`
	Dimensions    *Dimensions          `json:"dimensions,omitempty"`
	Image         *Image               `json:"image,omitempty"`
	Attributes    []VariationAttribute `json:"attributes,omitempty"`
}

type Dimensions struct {
	Length string `json:"length,omitempty"`
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
}

type CategoryRef struct {
	ID int `json:"id"`
}

type Image struct {
	ID   int    `json:"id,omitempty"`
	Src  string `json:"src,omitempty"`
	Name string `json:"name,omitempty"`
	Alt  string `json:"alt,omitempty"`
}

// ProductAttribute is an attribute entry on a product. Visible and Variation
// are serialized unconditionally: the remote defaults both to false, while
// attributes built here are visible by default.
type ProductAttribute struct {
	ID        int      `json:"id,omitempty"`
	Name      string   `json:"name,omitempty"`
	Position  int      `json:"position"`
	Visible   bool     `json:"visible"`
	Variation bool     `json:"variation"`
	Options   []string `json:"options,omitempty"`
}

// VariationAttribute assigns one option to one attribute of a variation.
// Global attributes carry the remote id; local ones are matched by name.
type VariationAttribute struct {
	ID     int    `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Option string `json:"option"`
}

type Category struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Parent      int    `json:"parent,omitempty"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count,omitempty"`
}

type Attribute struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Slug    string `json:"slug,omitempty"`
	Type    string `json:"type,omitempty"`
	OrderBy string `json:"order_by,omitempty"`
}

type AttributeTerm struct {
	ID    int    `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Slug  string `json:"slug,omitempty"`
	Count int    `json:"count,omitempty"`
}

// Media is a WordPress media item. SourceURL carries the public URL of the
// uploaded file.
type Media struct {
	ID        int    `json:"id,omitempty"`
	SourceURL string `json:"source_url,omitempty"`
	AltText   string `json:"alt_text,omitempty"`
}

type Order struct {
	ID          int    `json:"id,omitempty"`
	Status      string `json:"status,omitempty"`
	Currency    string `json:"currency,omitempty"`
	Total       string `json:"total,omitempty"`
	CustomerID  int    `json:"customer_id,omitempty"`
	DateCreated string `json:"date_created,omitempty"`
}
