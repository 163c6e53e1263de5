package sim

import (
	"errors"
	"fmt"
)

// ErrUnknownStage is returned when a stage id is not in the catalog.
var ErrUnknownStage = errors.New("unknown stage")

// Template is a named stage shape.
//
// Shape rows use '#' for solid wall, 'X' for a field cell that the
// generator randomizes and '.' for a clearing that is always empty.
// Missing rows or columns read as solid wall.
type Template struct {
	ID         string   `yaml:"id" json:"id"`
	Name       string   `yaml:"name" json:"name"`
	Difficulty int      `yaml:"difficulty" json:"difficulty"`
	Shape      []string `yaml:"shape" json:"-"`
}

// Catalog is an ordered list of stage templates.
type Catalog []Template

// Index returns the position of the stage with the given id.
func (c Catalog) Index(id string) (int, error) {
	for i, t := range c {
		if t.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("stage %q: %w", id, ErrUnknownStage)
}

// IDs returns the stage ids in order.
func (c Catalog) IDs() []string {
	ids := make([]string, len(c))
	for i, t := range c {
		ids[i] = t.ID
	}
	return ids
}

// DefaultCatalog returns the built-in campaign, in play order.
func DefaultCatalog() Catalog {
	return Catalog{
		{ID: "heart", Name: "Heart", Difficulty: 1, Shape: heartShape},
		{ID: "lung", Name: "Lung", Difficulty: 2, Shape: lungShape},
		{ID: "stomach", Name: "Stomach", Difficulty: 3, Shape: stomachShape},
		{ID: "kidney", Name: "Kidney", Difficulty: 4, Shape: kidneyShape},
		{ID: "brain", Name: "Brain", Difficulty: 5, Shape: brainShape},
		{ID: "gourd", Name: "Gourd", Difficulty: 2, Shape: gourdShape},
		{ID: "star", Name: "Star", Difficulty: 3, Shape: starShape},
		{ID: "yinyang", Name: "Yin-Yang", Difficulty: 4, Shape: yinyangShape},
		{ID: "hexagon", Name: "Hexagon", Difficulty: 3, Shape: hexagonShape},
		{ID: "spiral", Name: "Spiral", Difficulty: 5, Shape: spiralShape},
	}
}

var heartShape = []string{
	"################################",
	"################################",
	"################################",
	"######....########....##########",
	"#####..XXXX......XXXX..#########",
	"####..XXXXXXXX..XXXXXXXX..######",
	"###..XXXXXXXXXXXXXXXXXX..#######",
	"###.XXXXXXXXXXXXXXXXXXXX..######",
	"##..XXXXXXXXXXXXXXXXXXXX..######",
	"##..XXXXXXXXXXXXXXXXXXXX..######",
	"##..XXXXXXXXXXXXXXXXXXXX...#####",
	"##..XXXXXXXXXXXXXXXXXXXX...#####",
	"##...XXXXXXXXXXXXXXXXXXXXXX.####",
	"###..XXXXXXXXXXXXXXXXXXXXXX.####",
	"###..XXXXXXXXXXXXXXXXXXXXX..####",
	"####..XXXXXXXXXXXXXXXXXXXX..####",
	"####..XXXXXXXXXXXXXXXXXXX...####",
	"#####..XXXXXXXXXXXXXXXXXX...####",
	"#####...XXXXXXXXXXXXXXXXX..#####",
	"######..XXXXXXXXXXXXXXXX...#####",
	"######...XXXXXXXXXXXXXX...######",
	"#######..XXXXXXXXXXXXX....######",
	"########..XXXXXXXXXXX....#######",
	"#########..XXXXXXXXX....########",
	"##########..XXXXXXX....#########",
	"###########..XXXXX....##########",
	"############..XXX....###########",
	"#############..X....############",
	"##############.....#############",
	"################################",
	"################################",
	"################################",
}

var lungShape = []string{
	"################################",
	"################################",
	"#########........###############",
	"########..XXXXXX..##############",
	"#######..XXXXXXXX..#############",
	"######..XXXXXXXXXX..############",
	"######.XXXXXXXXXXXX.############",
	"#####..XXXXXXXXXXXX..###########",
	"#####.XXXXXXXXXXXXXX.###########",
	"####..XXXXXXXXXXXXXX..##########",
	"####.XXXXXXXXXXXXXXXX.##########",
	"####.XXXXXXXXXXXXXXXX.##########",
	"###..XXXXXXXXXXXXXXXX..#########",
	"###.XXXXXXXXXXXXXXXXXX.#########",
	"###.XXXXXXXXXXXXXXXXXX.#########",
	"###.XXXXXXXXXXXXXXXXXX.#########",
	"###.XXXXXXXXXXXXXXXXXX.#########",
	"###.XXXXXXXXXXXXXXXXXX.#########",
	"###..XXXXXXXXXXXXXXXX..#########",
	"####.XXXXXXXXXXXXXXXX.##########",
	"####.XXXXXXXXXXXXXXXX.##########",
	"####..XXXXXXXXXXXXXX..##########",
	"#####.XXXXXXXXXXXXXX.###########",
	"#####..XXXXXXXXXXXX..###########",
	"######.XXXXXXXXXXXX.############",
	"######..XXXXXXXXXX..############",
	"#######.XXXXXXXXXX.#############",
	"#######..XXXXXXXX..#############",
	"########..XXXXXX..##############",
	"#########........###############",
	"################################",
	"################################",
}

var stomachShape = []string{
	"################################",
	"################################",
	"###########..........###########",
	"##########..XXXXXXXX..##########",
	"#########..XXXXXXXXXX..#########",
	"########..XXXXXXXXXXXX..########",
	"########.XXXXXXXXXXXXXX.########",
	"#######..XXXXXXXXXXXXXX..#######",
	"#######.XXXXXXXXXXXXXXXX.#######",
	"######..XXXXXXXXXXXXXXXX..######",
	"######.XXXXXXXXXXXXXXXXXX.######",
	"######.XXXXXXXXXXXXXXXXXX.######",
	"######.XXXXXXXXXXXXXXXXXX.######",
	"######.XXXXXXXXXXXXXXXXXX.######",
	"######.XXXXXXXXXXXXXXXXXX.######",
	"######.XXXXXXXXXXXXXXXXXX.######",
	"######..XXXXXXXXXXXXXXXX..######",
	"#######.XXXXXXXXXXXXXXXX.#######",
	"#######..XXXXXXXXXXXXXX..#######",
	"########.XXXXXXXXXXXXXX.########",
	"########..XXXXXXXXXXXX..########",
	"#########.XXXXXXXXXXXX.#########",
	"#########..XXXXXXXXXX..#########",
	"##########.XXXXXXXXXX.##########",
	"##########..XXXXXXXX..##########",
	"###########.XXXXXXXX.###########",
	"###########..XXXXXX..###########",
	"############.XXXXXX.############",
	"#############......#############",
	"################################",
	"################################",
	"################################",
}

var kidneyShape = []string{
	"################################",
	"################################",
	"################################",
	"########........####........####",
	"#######..XXXXXX..##..XXXXXX..###",
	"######..XXXXXXXX....XXXXXXXX..##",
	"#####..XXXXXXXXXX..XXXXXXXXXX..#",
	"#####.XXXXXXXXXXXXXXXXXXXX..####",
	"####..XXXXXXXXXXXXXXXXXXX..#####",
	"####.XXXXXXXXXXXXXXXXXXXX..#####",
	"####.XXXXXXXXXXX.....XXXX..#####",
	"###..XXXXXXXXXX.......XXX..#####",
	"###.XXXXXXXXXXX.......XXX..#####",
	"###.XXXXXXXXXXX.......XXX.######",
	"###.XXXXXXXXXXX.......XXX.######",
	"###.XXXXXXXXXXX.......XXX.######",
	"###.XXXXXXXXXXX.......XXX.######",
	"###.XXXXXXXXXXX.......XXX.######",
	"###..XXXXXXXXXX.......XXX..#####",
	"####.XXXXXXXXXX.......XXX..#####",
	"####.XXXXXXXXXXX.....XXXX..#####",
	"####..XXXXXXXXXXXXXXXXXXXX..####",
	"#####.XXXXXXXXXXXXXXXXXXXX..####",
	"#####..XXXXXXXXXX..XXXXXXXXX..##",
	"######.XXXXXXXXX....XXXXXXXX..##",
	"#######..XXXXXX..##..XXXXXX..###",
	"########........####........####",
	"################################",
	"################################",
	"################################",
	"################################",
	"################################",
}

var brainShape = []string{
	"################################",
	"################################",
	"########..............##########",
	"#######..XXXXXXXXXXXX..#########",
	"######..XXXXXXXXXXXXXX..########",
	"#####..XXXXXXXXXXXXXXXX..#######",
	"####..XXXXXXXXXX..XXXXXX..######",
	"####.XXXXXXXXXXX..XXXXXXX.######",
	"###..XXXXXXXXXXX..XXXXXXXX..####",
	"###.XXXXXXXXXXXXXXXXXXXX.XX.####",
	"###.XXXXXXXXXXXXXXXXXXXX.XX.####",
	"##..XXXXXXXXXXXXXXXXXXXXXXX..###",
	"##.XXXXXXXXXXXXXXXXXXXXXXXXX.###",
	"##.XXXXXXXXXXXXXXXXXXXXXXXXX.###",
	"##.XXXXXXXXXXXXXXXXXXXXXXXXX.###",
	"##.XXXXXXXXXXXXXXXXXXXXXXXXX.###",
	"##.XXXXXXXXXXXXXXXXXXXXXXXXX.###",
	"##.XXXXXXXXXXXXXXXXXXXXXXXXX.###",
	"##..XXXXXXXXXXXXXXXXXXXXXXX..###",
	"###.XXXXXXXXXXXXXXXXXXXXXXX.####",
	"###.XXXXXXXXXXXXXXXXXXXXXXX.####",
	"###..XXXXXXXXXXXXXXXXXXXXX..####",
	"####.XXXXXXXXXXXXXXXXXXXXX.#####",
	"####..XXXXXXXXXXXXXXXXXXX..#####",
	"#####.XXXXXXXXXXXXXXXXXXX.######",
	"#####..XXXXXXXXXXXXXXXXX..######",
	"######.XXXXXXXXXXXXXXXXX.#######",
	"######..XXXXXXXXXXXXXXX..#######",
	"#######..XXXXXXXXXXXXX..########",
	"########..............##########",
	"################################",
	"################################",
}

var gourdShape = []string{
	"################################",
	"################################",
	"###########........#############",
	"##########..XXXXXX..############",
	"#########..XXXXXXXX..###########",
	"########..XXXXXXXXXX..##########",
	"########.XXXXXXXXXXXX.##########",
	"########.XXXXXXXXXXXX.##########",
	"########..XXXXXXXXXX..##########",
	"#########..XXXXXXXX..###########",
	"##########..XXXXXX..############",
	"###########........#############",
	"###########........#############",
	"##########..XXXXXX..############",
	"#########..XXXXXXXX..###########",
	"########..XXXXXXXXXX..##########",
	"#######..XXXXXXXXXXXX..#########",
	"######..XXXXXXXXXXXXXX..########",
	"######.XXXXXXXXXXXXXXXX.########",
	"######.XXXXXXXXXXXXXXXX.########",
	"######.XXXXXXXXXXXXXXXX.########",
	"######..XXXXXXXXXXXXXX..########",
	"#######..XXXXXXXXXXXX..#########",
	"########..XXXXXXXXXX..##########",
	"#########..XXXXXXXX..###########",
	"##########..XXXXXX..############",
	"###########........#############",
	"################################",
	"################################",
	"################################",
	"################################",
	"################################",
}

var starShape = []string{
	"################################",
	"################################",
	"##############XX################",
	"#############XXXX###############",
	"############XXXXXX##############",
	"###########XXXXXXXX#############",
	"##########XXXXXXXXXX############",
	"#########XXXXXXXXXXXX###########",
	"########.XXXXXXXXXXXX.##########",
	"#######..XXXXXXXXXXXX..#########",
	"######...XXXXXXXXXXXX...########",
	"#####....XXXXXXXXXXXX....#######",
	"####.....XXXXXXXXXXXX.....######",
	"###......XXXXXXXXXXXX......#####",
	"###XXXXXXXXXXXXXXXXXXXXXX...####",
	"###.XXXXXXXXXXXXXXXXXXXX....####",
	"####..XXXXXXXXXXXXXXXXX.....####",
	"####...XXXXXXXXXXXXXXX......####",
	"#####...XXXXXXXXXXXXX.......####",
	"######...XXXXXXXXXXX........####",
	"#######..XXXXXXXXXX.........####",
	"########.XXXXXXXXX..........####",
	"########..XXXXXXXX..........####",
	"#########.XXXXXXX...........####",
	"#########..XXXXX............####",
	"##########..XXX.............####",
	"###########.X...............####",
	"################################",
	"################################",
	"################################",
	"################################",
	"################################",
}

var yinyangShape = []string{
	"################################",
	"################################",
	"###########........#############",
	"#########..XXXXXXXX..###########",
	"########..XXXXXXXXXX..##########",
	"#######..XXXXXXXXXXXX..#########",
	"######..XXXXXXXXXXXXXX..########",
	"#####..XXXXXXXXXXXXXXXX..#######",
	"#####.XXXXXXXXXXXXXXXXXX.#######",
	"####..XXXXXXXXX##XXXXXXXX.######",
	"####.XXXXXXXXX####XXXXXXX.######",
	"###..XXXXXXXX######XXXXXXX.#####",
	"###.XXXXXXXX########XXXXXX..####",
	"###.XXXXXXX##########XXXXX..####",
	"###.XXXXXX############XXXX..####",
	"###.XXXXX..XXXX########XXX..####",
	"###.XXXX..XXXXXX########XX..####",
	"###.XXXX.XXXXXXXX########X..####",
	"###..XXX.XXXXXXXXX########..####",
	"####.XXX.XXXXXXXXXX######...####",
	"####..XXXXXXXXXXXXXXXXX.....####",
	"#####..XXXXXXXXXXXXXXX......####",
	"######..XXXXXXXXXXXXX.......####",
	"#######..XXXXXXXXXXX........####",
	"########..XXXXXXXXX.........####",
	"#########..XXXXXXX..........####",
	"###########......###############",
	"################################",
	"################################",
	"################################",
	"################################",
	"################################",
}

var hexagonShape = []string{
	"################################",
	"################################",
	"################################",
	"############XXXXXXXX############",
	"###########XXXXXXXXXX###########",
	"##########XXXXXXXXXXXX##########",
	"#########XXXXXXXXXXXXXX#########",
	"########XXXXXXXXXXXXXXXX########",
	"#######XXXXXXXXXXXXXXXXXX#######",
	"######XXXXXXXXXXXXXXXXXXXX######",
	"#####XXXXXXXXXXXXXXXXXXXXXX#####",
	"####XXXXXXXXXXXXXXXXXXXXXXXX####",
	"####XXXXXXXXXXXXXXXXXXXXXXXX####",
	"###XXXXXXXXXXXXXXXXXXXXXXXXXX###",
	"###XXXXXXXXXXXXXXXXXXXXXXXXXX###",
	"###XXXXXXXXXXXXXXXXXXXXXXXXXX###",
	"###XXXXXXXXXXXXXXXXXXXXXXXXXX###",
	"###XXXXXXXXXXXXXXXXXXXXXXXXXX###",
	"###XXXXXXXXXXXXXXXXXXXXXXXXXX###",
	"####XXXXXXXXXXXXXXXXXXXXXXXX####",
	"####XXXXXXXXXXXXXXXXXXXXXXXX####",
	"#####XXXXXXXXXXXXXXXXXXXXXX#####",
	"######XXXXXXXXXXXXXXXXXXXX######",
	"#######XXXXXXXXXXXXXXXXXX#######",
	"########XXXXXXXXXXXXXXXX########",
	"#########XXXXXXXXXXXXXX#########",
	"##########XXXXXXXXXXXX##########",
	"###########XXXXXXXXXX###########",
	"############XXXXXXXX############",
	"################################",
	"################################",
	"################################",
}

var spiralShape = []string{
	"################################",
	"################################",
	"####XXXXXXXXXXXXXXXXXXXXXXXX####",
	"####XXXXXXXXXXXXXXXXXXXXXXXX####",
	"####XXXXXXXXXXXXXXXXXXXXXXXX####",
	"####XXXX################XXXX####",
	"####XXXX################XXXX####",
	"####XXXX################XXXX####",
	"####XXXX################XXXX####",
	"####XXXX####XXXXXXXX####XXXX####",
	"####XXXX####XXXXXXXX####XXXX####",
	"####XXXX####XXXXXXXX####XXXX####",
	"####XXXX####XXXX##XX####XXXX####",
	"####XXXX####XXXX##XX####XXXX####",
	"####XXXX####XXXX##XX####XXXX####",
	"####XXXX####XXXX##XXXXXXXXXX####",
	"####XXXX####XXXX##XXXXXXXXXX####",
	"####XXXX####XXXX################",
	"####XXXX####XXXX################",
	"####XXXX####XXXXXXXXXXXX########",
	"####XXXX####XXXXXXXXXXXX########",
	"####XXXX########################",
	"####XXXX########################",
	"####XXXXXXXXXXXXXXXXXXXX########",
	"####XXXXXXXXXXXXXXXXXXXX########",
	"####XXXXXXXXXXXXXXXXXXXX########",
	"####XXXXXXXXXXXXXXXXXXXX########",
	"################################",
	"################################",
	"################################",
	"################################",
	"################################",
}
