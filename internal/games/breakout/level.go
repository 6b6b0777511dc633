package breakout

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-breakout/internal/render"
	"github.com/vovakirdan/tui-breakout/internal/resource"
)

// Tile codes used in level files.
const (
	TileEmpty = 0
	TileSolid = 1
)

// LevelExt is the extension of level files.
const LevelExt = ".lvl"

//go:embed levels/*.lvl
var builtinLevels embed.FS

// BuiltinLevels returns the levels shipped with the game, rooted at the
// directory holding the .lvl files.
func BuiltinLevels() fs.FS {
	sub, err := fs.Sub(builtinLevels, "levels")
	if err != nil {
		panic(err) // embed pattern guarantees the directory
	}
	return sub
}

var (
	solidColor   = mgl32.Vec3{0.8, 0.8, 0.7}
	defaultColor = mgl32.Vec3{1, 1, 1}
	tileColors   = map[uint]mgl32.Vec3{
		2: {0.2, 0.6, 1.0},
		3: {0.0, 0.7, 0.0},
		4: {0.8, 0.8, 0.4},
		5: {1.0, 0.5, 0.0},
	}
)

// TileColor returns the tint for a breakable tile code.
// Codes without an assigned color are white.
func TileColor(code uint) mgl32.Vec3 {
	if c, ok := tileColors[code]; ok {
		return c
	}
	return defaultColor
}

// ErrRaggedGrid is wrapped by LoadError when rows differ in length.
var ErrRaggedGrid = errors.New("row length differs from the first row")

// LoadError reports a level that could not be read or parsed.
type LoadError struct {
	Level string // Level name
	Line  int    // 1-based line in the file, 0 if not line specific
	Err   error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("breakout: level %q line %d: %v", e.Level, e.Line, e.Err)
	}
	return fmt.Sprintf("breakout: level %q: %v", e.Level, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Level is a grid of bricks scaled to a target area.
type Level struct {
	Name   string
	Bricks []Entity

	tiles  [][]uint
	width  float32
	height float32
	block  resource.Texture
	solid  resource.Texture
}

// NewLevel creates an empty level whose bricks use the given textures.
func NewLevel(name string, block, solid resource.Texture) *Level {
	return &Level{Name: name, block: block, solid: solid}
}

// Load reads the named file from fsys and rebuilds the bricks to fill
// width by height. On error the level is left without bricks.
func (l *Level) Load(fsys fs.FS, name string, width, height float32) error {
	f, err := fsys.Open(name)
	if err != nil {
		l.clear()
		return &LoadError{Level: l.Name, Err: err}
	}
	defer func() { _ = f.Close() }()

	return l.Parse(f, width, height)
}

// Parse reads whitespace separated tile codes, one row per line.
// Blank lines are skipped. An empty grid yields no bricks and no error.
func (l *Level) Parse(r io.Reader, width, height float32) error {
	l.clear()

	var tiles [][]uint
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		row := make([]uint, len(fields))
		for i, field := range fields {
			code, err := strconv.ParseUint(field, 10, 32)
			if err != nil {
				return &LoadError{Level: l.Name, Line: lineNo, Err: fmt.Errorf("tile %q: %w", field, err)}
			}
			row[i] = uint(code)
		}
		if len(tiles) > 0 && len(row) != len(tiles[0]) {
			return &LoadError{
				Level: l.Name,
				Line:  lineNo,
				Err:   fmt.Errorf("%w: got %d, want %d", ErrRaggedGrid, len(row), len(tiles[0])),
			}
		}
		tiles = append(tiles, row)
	}
	if err := scanner.Err(); err != nil {
		return &LoadError{Level: l.Name, Err: err}
	}

	l.tiles = tiles
	l.width = width
	l.height = height
	l.build()
	return nil
}

// Reset restores every brick from the last successfully parsed grid.
func (l *Level) Reset() {
	l.build()
}

// Draw renders every brick still standing.
func (l *Level) Draw(r render.SpriteRenderer) {
	for i := range l.Bricks {
		if !l.Bricks[i].Destroyed {
			l.Bricks[i].Draw(r)
		}
	}
}

// IsCompleted reports whether every breakable brick is destroyed.
func (l *Level) IsCompleted() bool {
	for i := range l.Bricks {
		if !l.Bricks[i].Solid && !l.Bricks[i].Destroyed {
			return false
		}
	}
	return true
}

// Remaining counts breakable bricks still standing.
func (l *Level) Remaining() int {
	n := 0
	for i := range l.Bricks {
		if !l.Bricks[i].Solid && !l.Bricks[i].Destroyed {
			n++
		}
	}
	return n
}

// Dimensions returns the grid size in tiles.
func (l *Level) Dimensions() (rows, cols int) {
	if len(l.tiles) == 0 {
		return 0, 0
	}
	return len(l.tiles), len(l.tiles[0])
}

func (l *Level) clear() {
	l.Bricks = nil
	l.tiles = nil
}

func (l *Level) build() {
	l.Bricks = l.Bricks[:0]
	rows, cols := l.Dimensions()
	if rows == 0 || cols == 0 {
		return
	}

	size := mgl32.Vec2{l.width / float32(cols), l.height / float32(rows)}
	for y, row := range l.tiles {
		for x, code := range row {
			if code == TileEmpty {
				continue
			}
			pos := mgl32.Vec2{size.X() * float32(x), size.Y() * float32(y)}
			var brick Entity
			if code == TileSolid {
				brick = NewEntity(KindBrick, pos, size, l.solid)
				brick.Color = solidColor
				brick.Solid = true
			} else {
				brick = NewEntity(KindBrick, pos, size, l.block)
				brick.Color = TileColor(code)
			}
			l.Bricks = append(l.Bricks, brick)
		}
	}
}

// ListLevels returns the level files in fsys, sorted by path.
func ListLevels(fsys fs.FS) ([]string, error) {
	var names []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(path.Ext(p), LevelExt) {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("breakout: listing levels: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// LevelName derives a display name from a level file name.
func LevelName(file string) string {
	return strings.TrimSuffix(path.Base(file), path.Ext(file))
}
