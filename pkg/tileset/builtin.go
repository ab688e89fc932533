package tileset

// edgeKind labels one side of a Wang-style edge-matching tile.
type edgeKind int

const (
	blank edgeKind = iota
	wire
)

// edgeRuleset builds a Ruleset from a per-tile, per-direction edge label:
// two tiles are compatible across a direction iff the facing tile's edge
// label on that side equals the neighbor's label on the opposite side.
func edgeRuleset(tiles []Tile, edges map[int]map[Direction]edgeKind) Ruleset {
	allowed := make(map[Direction]map[int]map[int]bool, len(Directions))
	for _, dir := range Directions {
		allowed[dir] = make(map[int]map[int]bool, len(tiles))
		for _, a := range tiles {
			set := make(map[int]bool, len(tiles))
			for _, b := range tiles {
				if edges[a.ID][dir] == edges[b.ID][dir.Opposite()] {
					set[b.ID] = true
				}
			}
			allowed[dir][a.ID] = set
		}
	}
	return Ruleset{Tiles: tiles, Allowed: allowed}
}

// symmetricRuleset builds a Ruleset where compatibility does not depend on
// direction: two tiles are either compatible as neighbors or they never
// are, regardless of which side they meet on.
func symmetricRuleset(tiles []Tile, compatible func(a, b int) bool) Ruleset {
	allowed := make(map[Direction]map[int]map[int]bool, len(Directions))
	for _, dir := range Directions {
		allowed[dir] = make(map[int]map[int]bool, len(tiles))
		for _, a := range tiles {
			set := make(map[int]bool, len(tiles))
			for _, b := range tiles {
				if compatible(a.ID, b.ID) {
					set[b.ID] = true
				}
			}
			allowed[dir][a.ID] = set
		}
	}
	return Ruleset{Tiles: tiles, Allowed: allowed}
}

func stripesRuleset() Ruleset {
	tiles := []Tile{
		{ID: 0, Glyph: '0', ColorCode: "cyan"},
		{ID: 1, Glyph: '1', ColorCode: "magenta"},
	}
	allowed := make(map[Direction]map[int]map[int]bool, len(Directions))
	for _, dir := range Directions {
		allowed[dir] = make(map[int]map[int]bool, 2)
		for _, t := range tiles {
			set := make(map[int]bool, 2)
			if dir == East || dir == West {
				// stripes run vertically: east/west neighbors alternate
				other := 1 - t.ID
				set[other] = true
			} else {
				// north/south continues the same stripe
				set[t.ID] = true
			}
			allowed[dir][t.ID] = set
		}
	}
	return Ruleset{Tiles: tiles, Allowed: allowed}
}

func checkerboardRuleset() Ruleset {
	tiles := []Tile{
		{ID: 0, Glyph: 'X', ColorCode: "white"},
		{ID: 1, Glyph: 'O', ColorCode: "black"},
	}
	return symmetricRuleset(tiles, func(a, b int) bool { return a != b })
}

func circuitRuleset() Ruleset {
	tiles := []Tile{
		{ID: 0, Glyph: ' ', ColorCode: "white"},   // blank
		{ID: 1, Glyph: '-', ColorCode: "yellow"},  // straight east-west wire
		{ID: 2, Glyph: 'L', ColorCode: "yellow"},  // corner north-east
		{ID: 3, Glyph: 'T', ColorCode: "green"},   // T: east-south-west
		{ID: 4, Glyph: '+', ColorCode: "red"},     // cross: all four sides wired
	}
	edges := map[int]map[Direction]edgeKind{
		0: {North: blank, South: blank, East: blank, West: blank},
		1: {North: blank, South: blank, East: wire, West: wire},
		2: {North: wire, South: blank, East: wire, West: blank},
		3: {North: blank, South: wire, East: wire, West: wire},
		4: {North: wire, South: wire, East: wire, West: wire},
	}
	return edgeRuleset(tiles, edges)
}

// blob terrain IDs, used by blobRuleset and by the predicate built from it.
const (
	blobLand = 0
	blobCoast = 1
	blobSea   = 2
)

func blobRuleset() Ruleset {
	tiles := []Tile{
		{ID: blobLand, Glyph: '#', ColorCode: "green"},
		{ID: blobCoast, Glyph: '~', ColorCode: "yellow"},
		{ID: blobSea, Glyph: '.', ColorCode: "blue"},
	}
	compatible := func(a, b int) bool {
		if a == b {
			return true
		}
		// land and sea may only meet through a coast cell
		if a == blobCoast || b == blobCoast {
			return true
		}
		return false
	}
	return symmetricRuleset(tiles, compatible)
}

func init() {
	Register(Info{
		Name: "stripes", Description: "alternating vertical stripes, 2 tiles",
		TileCount: 2, RecommendedKW: 3, RecommendedKH: 1, RecommendedSize: 8,
	}, stripesRuleset)

	Register(Info{
		Name: "checkerboard", Description: "strict alternation on all 4 sides, 2 tiles",
		TileCount: 2, RecommendedKW: 3, RecommendedKH: 3, RecommendedSize: 8,
	}, checkerboardRuleset)

	Register(Info{
		Name: "circuit", Description: "Wang-style wire tiles: blank/straight/corner/T/cross",
		TileCount: 5, RecommendedKW: 3, RecommendedKH: 3, RecommendedSize: 16,
	}, circuitRuleset)

	Register(Info{
		Name: "blob", Description: "land/coast/sea terrain, like prefers like",
		TileCount: 3, RecommendedKW: 3, RecommendedKH: 3, RecommendedSize: 16,
	}, blobRuleset)
}
