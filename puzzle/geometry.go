package puzzle

/*

Grid geometry

Cells are indexed 0 through 80 in reading order: left-to-right,
top-to-bottom.  Row, column, and box of a cell follow from its
index alone, and each cell has exactly 20 peers: the other eight
cells of its row, the other eight of its column, and the four
cells of its box that share neither its row nor its column.  The
peer table is fixed data, computed once at package load.

*/

// Geometry constants for the one supported grid shape.
const (
	Side    = 9           // cells on a side
	Cells   = Side * Side // cells in a grid
	boxSide = 3           // cells on a box side

	peerCount = 3*(Side-1) - 2*(boxSide-1) // 20
)

func rowOf(i int) int { return i / Side }
func colOf(i int) int { return i % Side }
func boxOf(i int) int { return (i/Side/boxSide)*boxSide + (i%Side)/boxSide }

// peers[i] lists, in ascending order, the cells that share a
// row, column, or box with cell i.
var peers [Cells][peerCount]int

func init() {
	for i := 0; i < Cells; i++ {
		n := 0
		for j := 0; j < Cells; j++ {
			if j == i {
				continue
			}
			if rowOf(j) == rowOf(i) || colOf(j) == colOf(i) || boxOf(j) == boxOf(i) {
				peers[i][n] = j
				n++
			}
		}
	}
}
