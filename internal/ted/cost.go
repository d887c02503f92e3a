package ted

import (
	"github.com/ludo-technologies/treedist/internal/tree"
)

// CostModel defines the costs of the three edit operations. Models
// must be pure and return non-negative costs; for the distance to be a
// metric, Rename(a,b) <= Insert(b)+Delete(a) should hold. The engine
// does not verify either property.
type CostModel interface {
	// Rename returns the cost of renaming n1 to n2.
	Rename(n1, n2 *tree.Node) float64

	// Insert returns the cost of inserting a node.
	Insert(n *tree.Node) float64

	// Delete returns the cost of deleting a node.
	Delete(n *tree.Node) float64
}

// UnitCostModel is the default model: rename costs 0 when labels are
// equal and 1 otherwise, insert and delete always cost 1.
type UnitCostModel struct{}

// NewUnitCostModel creates the default unit cost model.
func NewUnitCostModel() *UnitCostModel {
	return &UnitCostModel{}
}

// Rename returns 0 for equal labels, 1 otherwise.
func (c *UnitCostModel) Rename(n1, n2 *tree.Node) float64 {
	if n1.Label() == n2.Label() {
		return 0.0
	}
	return 1.0
}

// Insert returns the cost of inserting a node (always 1.0).
func (c *UnitCostModel) Insert(n *tree.Node) float64 {
	return 1.0
}

// Delete returns the cost of deleting a node (always 1.0).
func (c *UnitCostModel) Delete(n *tree.Node) float64 {
	return 1.0
}

// WeightedCostModel scales the three operations of a base model with
// per-operation weights. It is the configuration surface for the
// rename/insert/delete unit costs.
type WeightedCostModel struct {
	RenameWeight float64
	InsertWeight float64
	DeleteWeight float64
	Base         CostModel
}

// NewWeightedCostModel creates a weighted model over the given base.
// A nil base defaults to the unit cost model.
func NewWeightedCostModel(renameWeight, insertWeight, deleteWeight float64, base CostModel) *WeightedCostModel {
	if base == nil {
		base = NewUnitCostModel()
	}
	return &WeightedCostModel{
		RenameWeight: renameWeight,
		InsertWeight: insertWeight,
		DeleteWeight: deleteWeight,
		Base:         base,
	}
}

// Rename returns the weighted rename cost.
func (c *WeightedCostModel) Rename(n1, n2 *tree.Node) float64 {
	return c.RenameWeight * c.Base.Rename(n1, n2)
}

// Insert returns the weighted insert cost.
func (c *WeightedCostModel) Insert(n *tree.Node) float64 {
	return c.InsertWeight * c.Base.Insert(n)
}

// Delete returns the weighted delete cost.
func (c *WeightedCostModel) Delete(n *tree.Node) float64 {
	return c.DeleteWeight * c.Base.Delete(n)
}
