package domain

// UnitPrice returns the sale price of an artwork. The rule is inherited from
// the storefront: the catalog id divided by 200. There is no real price source
// upstream; keep replacements confined to this function.
func UnitPrice(artworkID int) float64 {
	return float64(artworkID) / 200
}
