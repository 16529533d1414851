package catalog

// Product is a catalog entry stored in the "product" collection. The slug
// is the unique, immutable business key; the generated _id stays internal
// and is never serialized back to clients.
type Product struct {
	Slug        string   `bson:"slug" json:"slug"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	BasePrice   float64  `bson:"base_price" json:"base_price"`
	Colors      []string `bson:"colors" json:"colors"`
	Textures    []string `bson:"textures" json:"textures"`
	Features    []string `bson:"features" json:"features"`
	Images      []string `bson:"images" json:"images"`
	InStock     bool     `bson:"in_stock" json:"in_stock"`
	Inventory   int      `bson:"inventory" json:"inventory"`
}

// Catalog defaults applied to products created without explicit values.
var (
	DefaultColors   = []string{"Graphite", "Neon Blue", "Aurora Green", "Solar Orange"}
	DefaultTextures = []string{"matte", "gloss", "carbon"}
	DefaultFeatures = []string{"digital-sync", "tilt-sense", "haptic-feedback"}
)

// DefaultInventory is the stock count assigned when none is provided.
const DefaultInventory = 100

// ApplyDefaults fills unset list fields with the catalog defaults.
func (p *Product) ApplyDefaults() {
	if p.Colors == nil {
		p.Colors = append([]string(nil), DefaultColors...)
	}
	if p.Textures == nil {
		p.Textures = append([]string(nil), DefaultTextures...)
	}
	if p.Features == nil {
		p.Features = append([]string(nil), DefaultFeatures...)
	}
	if p.Images == nil {
		p.Images = []string{}
	}
}

// InventoryStatus is the read-only stock view returned by the inventory
// endpoint. The count may be stale under concurrent writers.
type InventoryStatus struct {
	Inventory int  `json:"inventory"`
	InStock   bool `json:"in_stock"`
}
