package models

// Counter document ids in the recipeCounts collection.
const (
	CounterAll       = "all"
	CounterPublished = "published"
)

// RecipeCount is a cached cardinality value for the recipe collection. It is
// maintained by event reactions after the fact and is eventually consistent
// with the true collection state; it must never be read as an authoritative
// count.
type RecipeCount struct {
	ID    string `bson:"_id" json:"id"`
	Count int64  `bson:"count" json:"count"`
}
