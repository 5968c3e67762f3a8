package spinball

import "github.com/vovakirdan/spinball/internal/config"

// Generator produces the new top row at the start of each round.
type Generator struct {
	board  config.SpinballBoard
	blocks config.SpinballBlocks
	rng    Random
}

// NewGenerator creates a row generator drawing from rng.
func NewGenerator(board config.SpinballBoard, blocks config.SpinballBlocks, rng Random) *Generator {
	return &Generator{board: board, blocks: blocks, rng: rng}
}

// Pitch is the distance between neighbouring columns and between rows.
func (g *Generator) Pitch() float64 {
	return g.board.BlockSize + g.board.BlockMargin
}

// columnInset is the gap between the left wall and column 0.
const columnInset = 1.0

// ColumnX returns the left edge of a column.
func (g *Generator) ColumnX(col int) float64 {
	return columnInset + float64(col)*g.Pitch()
}

// GenerateRow places blocks with health equal to round, then at most one
// bonus in a column left free. A column never holds both.
//
// Draw order per column: placement, then type. The bonus draws come
// after all columns.
func (g *Generator) GenerateRow(round int) ([]*Block, *BonusItem) {
	blocks := make([]*Block, 0, g.board.Columns)
	free := make([]int, 0, g.board.Columns)

	for col := range g.board.Columns {
		if g.rng.Float64() < g.board.BlockChance {
			t := g.pickType()
			blocks = append(blocks, NewBlock(g.ColumnX(col), g.board.SpawnY, g.board.BlockSize, round, t))
		} else {
			free = append(free, col)
		}
	}

	var bonus *BonusItem
	if g.rng.Float64() < g.board.BonusChance && len(free) > 0 {
		col := free[g.rng.Intn(len(free))]
		half := g.board.BlockSize / 2
		bonus = NewBonus(g.ColumnX(col)+half, g.board.SpawnY+half, g.board.BonusRadius)
	}

	return blocks, bonus
}

// pickType draws a block type against cumulative thresholds.
func (g *Generator) pickType() BlockType {
	r := g.rng.Float64()
	threshold := g.blocks.BombChance
	if r < threshold {
		return BlockBomb
	}
	threshold += g.blocks.ShieldChance
	if r < threshold {
		return BlockShield
	}
	threshold += g.blocks.GhostChance
	if r < threshold {
		return BlockGhost
	}
	return BlockNormal
}
