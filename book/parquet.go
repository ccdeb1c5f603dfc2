package book

import (
	"cmp"
	"fmt"
	"isolation/game"
	"os"
	"path/filepath"
	"slices"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

const schema = "opening_book_v1"

// Row is a single book entry: an Isolation state and its recommended move.
type Row struct {
	BoardLo uint64 `parquet:"board_lo"`
	BoardHi uint64 `parquet:"board_hi"`
	Ply     int32  `parquet:"ply"`
	Loc0    int32  `parquet:"loc0"`
	Loc1    int32  `parquet:"loc1"`
	Kind    int32  `parquet:"kind"`
	Value   int32  `parquet:"value"`
}

// ParquetStore persists a book of Isolation states as a zstd-compressed
// parquet file.
type ParquetStore struct {
	path string
}

func NewParquetStore(path string) *ParquetStore {
	return &ParquetStore{path: path}
}

func (p *ParquetStore) Save(b *Book) error {
	rows := make([]Row, 0, b.Len())
	var err error
	b.Each(func(state game.State, action game.Action) {
		if err != nil {
			return
		}
		var row Row
		row, err = toRow(state, action)
		rows = append(rows, row)
	})
	if err != nil {
		return err
	}
	slices.SortFunc(rows, compareRows)

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("create book dir: %w", err)
	}

	// Write to a temp file and rename atomically.
	tmpPath := p.path + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", schema),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, p.path); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

func (p *ParquetStore) Load() (*Book, error) {
	rows, err := parquet.ReadFile[Row](p.path)
	if err != nil {
		return nil, fmt.Errorf("read parquet %s: %w", p.path, err)
	}

	b := New()
	for _, row := range rows {
		state := game.Restore([2]uint64{row.BoardLo, row.BoardHi}, int(row.Ply), [2]int{int(row.Loc0), int(row.Loc1)})
		b.Set(state, game.Move{Kind: game.MoveKind(row.Kind), Value: int(row.Value)})
	}
	return b, nil
}

func toRow(state game.State, action game.Action) (Row, error) {
	s, ok := state.(game.Isolation)
	if !ok {
		return Row{}, fmt.Errorf("unsupported state type %T", state)
	}
	move, ok := action.(game.Move)
	if !ok {
		return Row{}, fmt.Errorf("unsupported action type %T", action)
	}
	board := s.Board()
	return Row{
		BoardLo: board[0],
		BoardHi: board[1],
		Ply:     int32(s.PlyCount()),
		Loc0:    int32(s.Loc(0)),
		Loc1:    int32(s.Loc(1)),
		Kind:    int32(move.Kind),
		Value:   int32(move.Value),
	}, nil
}

// Rows are ordered by ply first so files read as a walk down the opening
func compareRows(a, b Row) int {
	return cmp.Or(
		cmp.Compare(a.Ply, b.Ply),
		cmp.Compare(a.Loc0, b.Loc0),
		cmp.Compare(a.Loc1, b.Loc1),
		cmp.Compare(a.BoardLo, b.BoardLo),
		cmp.Compare(a.BoardHi, b.BoardHi),
	)
}
